package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceBar is one candlestick: the reconstructed balance movement of one
// account on one calendar day, for one leg and transaction type. The
// outgoing and incoming passes are concatenated, never reconciled, so an
// account can contribute one bar per day from each leg.
type BalanceBar struct {
	Date    time.Time       `json:"date"`
	Account string          `json:"account"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Leg     string          `json:"leg"`
	Open    decimal.Decimal `json:"open"`
	High    decimal.Decimal `json:"high"`
	Low     decimal.Decimal `json:"low"`
	Close   decimal.Decimal `json:"close"`
}
