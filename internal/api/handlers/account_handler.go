package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/thanhnp/eth-explorer-api/internal/config"
	"github.com/thanhnp/eth-explorer-api/internal/etherscan"
	"github.com/thanhnp/eth-explorer-api/internal/explorer"
)

const jsonContentType = "application/json; charset=utf-8"

// Explorer is the upstream the account handler queries
type Explorer interface {
	FetchBalance(ctx context.Context, address, apiKey string) (*etherscan.Response, error)
	FetchTransactions(ctx context.Context, address, apiKey string) (*etherscan.Response, error)
}

// AccountHandler serves the configured account's balance and transactions.
// Every answer is HTTP 200; the body's status field carries the outcome.
type AccountHandler struct {
	cfg      config.EtherscanConfig
	explorer Explorer
	log      logrus.FieldLogger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(cfg config.EtherscanConfig, explorer Explorer, log logrus.FieldLogger) *AccountHandler {
	return &AccountHandler{
		cfg:      cfg,
		explorer: explorer,
		log:      log,
	}
}

// GetBalance returns the account balance in wei and ether
// GET /eth/balance
func (h *AccountHandler) GetBalance(c *gin.Context) {
	resp, err := h.explorer.FetchBalance(c.Request.Context(), h.cfg.Address, h.cfg.APIKey)
	if err != nil {
		h.log.WithError(err).Warn("balance fetch failed")
	}

	switch res := explorer.TranslateBalance(h.cfg.Address, resp, err).(type) {
	case explorer.BalanceSuccess:
		c.JSON(http.StatusOK, res.Response())
	case explorer.BalancePassThrough:
		c.Data(http.StatusOK, jsonContentType, res.Raw)
	case explorer.BalanceFailure:
		c.JSON(http.StatusOK, res.Response())
	default:
		panic(fmt.Sprintf("unhandled balance result %T", res))
	}
}

// GetTransactions returns the latest transactions of the account
// GET /eth/transactions
func (h *AccountHandler) GetTransactions(c *gin.Context) {
	resp, err := h.explorer.FetchTransactions(c.Request.Context(), h.cfg.Address, h.cfg.APIKey)
	if err != nil {
		h.log.WithError(err).Warn("transactions fetch failed")
	}

	switch res := explorer.TranslateTransactions(h.cfg.Address, resp, err).(type) {
	case explorer.TransactionsSuccess:
		c.JSON(http.StatusOK, res.Response())
	case explorer.TransactionsFailure:
		c.JSON(http.StatusOK, res.Response())
	default:
		panic(fmt.Sprintf("unhandled transactions result %T", res))
	}
}
