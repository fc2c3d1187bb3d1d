package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party is one leg of a transfer. Balance is the account balance recorded
// after this transfer was applied to that leg (debited for the sender,
// credited for the receiver).
type Party struct {
	Account     string          `json:"account"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	AccountType string          `json:"accountType"`
	Branch      string          `json:"branch"`
	Balance     decimal.Decimal `json:"balance"`
}

// Transaction is one row of the loaded ledger. Rows are immutable once
// loaded; aggregators never modify them.
type Transaction struct {
	ID        string          `json:"id"`
	Sender    Party           `json:"sender"`
	Receiver  Party           `json:"receiver"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Type      string          `json:"type"`
	Purpose   string          `json:"purpose"`
}

// TransactionRow is the flattened projection served to the detail table.
// Type and Purpose carry display decoration and must not be fed back into
// any aggregation.
type TransactionRow struct {
	ID              string          `json:"id"`
	SenderAccount   string          `json:"senderAccount"`
	SenderName      string          `json:"senderName"`
	ReceiverAccount string          `json:"receiverAccount"`
	ReceiverName    string          `json:"receiverName"`
	Amount          decimal.Decimal `json:"amount"`
	Timestamp       time.Time       `json:"timestamp"`
	Type            string          `json:"type"`
	Purpose         string          `json:"purpose"`
}
