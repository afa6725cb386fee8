// Package explorer turns explorer replies into the service's own responses.
// Nothing here performs I/O.
package explorer

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"

	"github.com/thanhnp/eth-explorer-api/internal/etherscan"
	"github.com/thanhnp/eth-explorer-api/internal/models"
)

const (
	// balances above this many bits are not treated as a wei amount
	maxWeiBits = 128

	ethDecimals = 6
)

var weiPerEther = big.NewRat(params.Ether, 1)

// BalanceResult is one of BalanceSuccess, BalancePassThrough or BalanceFailure
type BalanceResult interface {
	balanceResult()
}

// BalanceSuccess carries a parsed balance
type BalanceSuccess struct {
	Address string
	Wei     *big.Int
	ETH     string
}

// BalancePassThrough carries an explorer document that is returned unchanged
type BalancePassThrough struct {
	Raw json.RawMessage
}

// BalanceFailure means the explorer could not be reached or read
type BalanceFailure struct {
	Message string
}

func (BalanceSuccess) balanceResult()     {}
func (BalancePassThrough) balanceResult() {}
func (BalanceFailure) balanceResult()     {}

// Response returns the wire shape of the success
func (s BalanceSuccess) Response() models.Balance {
	return models.Balance{
		Address:    s.Address,
		BalanceWei: s.Wei.String(),
		BalanceETH: s.ETH,
		Status:     models.StatusSuccess,
	}
}

// Response returns the wire shape of the failure
func (f BalanceFailure) Response() models.Error {
	return models.Error{
		Error:  f.Message,
		Status: models.StatusError,
	}
}

// TranslateBalance classifies the outcome of a balance query
func TranslateBalance(address string, resp *etherscan.Response, err error) BalanceResult {
	if err != nil {
		return BalanceFailure{Message: fmt.Sprintf("Failed to fetch data from Etherscan: %v", err)}
	}
	if !resp.OK() {
		return BalancePassThrough{Raw: resp.Raw}
	}

	wei, ok := parseWei(resp.Result)
	if !ok {
		return BalancePassThrough{Raw: resp.Raw}
	}

	return BalanceSuccess{
		Address: address,
		Wei:     wei,
		ETH:     FormatEther(wei),
	}
}

// parseWei accepts a JSON string holding an unsigned decimal of at most 128 bits
func parseWei(result json.RawMessage) (*big.Int, bool) {
	if len(result) == 0 {
		return nil, false
	}
	var s string
	if err := json.Unmarshal(result, &s); err != nil || s == "" {
		return nil, false
	}
	n, err := uint256.FromDecimal(s)
	if err != nil || n.BitLen() > maxWeiBits {
		return nil, false
	}
	return n.ToBig(), true
}

// FormatEther renders wei as ether with six decimals, rounding half away from zero
func FormatEther(wei *big.Int) string {
	eth := new(big.Rat).SetInt(wei)
	eth.Quo(eth, weiPerEther)
	return eth.FloatString(ethDecimals)
}
