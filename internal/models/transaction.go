package models

import (
	"encoding/json"
)

// Transactions represents the transaction list of the served account.
// Transactions is copied verbatim from the explorer.
type Transactions struct {
	Address      string          `json:"address"`
	Transactions json.RawMessage `json:"transactions"`
	Status       string          `json:"status"`
}
