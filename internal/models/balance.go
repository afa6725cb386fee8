package models

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Balance represents the balance of the served account
type Balance struct {
	Address    string `json:"address"`
	BalanceWei string `json:"balance_wei"`
	BalanceETH string `json:"balance_eth"` // six decimal places
	Status     string `json:"status"`
}

// Error is the envelope returned when a query could not be answered.
// Address is omitted when the upstream call itself failed.
type Error struct {
	Address string `json:"address,omitempty"`
	Error   string `json:"error"`
	Status  string `json:"status"`
}

// Health is returned by the liveness endpoint
type Health struct {
	Status string `json:"status"`
}
