package models

import "github.com/shopspring/decimal"

// AccountRollup is the per-account summary row. Identity is resolved against
// the full ledger and totals are computed over the full ledger, not the
// filtered subset; a rollup reflects the account's global activity.
type AccountRollup struct {
	Account       string          `json:"account"`
	Name          string          `json:"name"`
	AccountType   string          `json:"accountType"`
	TotalSent     decimal.Decimal `json:"totalSent"`
	TotalReceived decimal.Decimal `json:"totalReceived"`
	SentCount     int             `json:"sentCount"`
	ReceivedCount int             `json:"receivedCount"`
	// Counterparty branch -> summed amount, per direction. Nil when the
	// account has no rows in that direction; renderers show "-".
	SentBranches     map[string]decimal.Decimal `json:"sentBranches,omitempty"`
	ReceivedBranches map[string]decimal.Decimal `json:"receivedBranches,omitempty"`
}

// LabelCount is one bucket of a categorical distribution.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary holds the KPI tile scalars.
type Summary struct {
	TransactionCount int             `json:"transactionCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	AccountCount     int             `json:"accountCount"`
}
