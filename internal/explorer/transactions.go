package explorer

import (
	"encoding/json"
	"fmt"

	"github.com/thanhnp/eth-explorer-api/internal/etherscan"
	"github.com/thanhnp/eth-explorer-api/internal/models"
)

const unknownError = "unknown error"

// TransactionsResult is either TransactionsSuccess or TransactionsFailure
type TransactionsResult interface {
	transactionsResult()
}

// TransactionsSuccess carries the explorer's transaction list untouched
type TransactionsSuccess struct {
	Address      string
	Transactions json.RawMessage
}

// TransactionsFailure carries the reason the list is unavailable. Address is
// empty when the explorer could not be reached.
type TransactionsFailure struct {
	Address string
	Message string
}

func (TransactionsSuccess) transactionsResult() {}
func (TransactionsFailure) transactionsResult() {}

// Response returns the wire shape of the success
func (s TransactionsSuccess) Response() models.Transactions {
	return models.Transactions{
		Address:      s.Address,
		Transactions: s.Transactions,
		Status:       models.StatusSuccess,
	}
}

// Response returns the wire shape of the failure
func (f TransactionsFailure) Response() models.Error {
	return models.Error{
		Address: f.Address,
		Error:   f.Message,
		Status:  models.StatusError,
	}
}

// TranslateTransactions classifies the outcome of a transaction list query
func TranslateTransactions(address string, resp *etherscan.Response, err error) TransactionsResult {
	if err != nil {
		return TransactionsFailure{Message: fmt.Sprintf("Failed to fetch transactions: %v", err)}
	}
	if !resp.OK() {
		return TransactionsFailure{Address: address, Message: failureMessage(resp)}
	}
	return TransactionsSuccess{Address: address, Transactions: resp.Result}
}

// failureMessage prefers the explorer's message, then a string result such as
// "Invalid API Key"
func failureMessage(resp *etherscan.Response) string {
	if resp.Message != "" {
		return resp.Message
	}
	var s string
	if err := json.Unmarshal(resp.Result, &s); err == nil && s != "" {
		return s
	}
	return unknownError
}
