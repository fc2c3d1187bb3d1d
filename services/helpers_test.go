package services

import (
	"time"

	"github.com/shopspring/decimal"

	"bankflow/backend/models"
)

// testParty builds a leg with predictable metadata derived from the name.
func testParty(account, name string, balance float64) models.Party {
	return models.Party{
		Account:     account,
		Name:        name,
		Phone:       "555-" + account,
		AccountType: "Savings",
		Branch:      "40.7128, -74.0060",
		Balance:     decimal.NewFromFloat(balance),
	}
}

func testRow(id string, sender, receiver models.Party, amount float64, ts string, txType string) models.Transaction {
	when, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		ID:        id,
		Sender:    sender,
		Receiver:  receiver,
		Amount:    decimal.NewFromFloat(amount),
		Timestamp: when.UTC(),
		Type:      txType,
		Purpose:   "Transfer",
	}
}

// twoPartyLedger is the end-to-end example table: A sends B 100 (Credit),
// B sends A 50 (Debit).
func twoPartyLedger() []models.Transaction {
	a := testParty("ACC-A", "A", 900)
	b := testParty("ACC-B", "B", 1100)
	return []models.Transaction{
		testRow("tx1", a, b, 100, "2024-03-01 09:00:00", models.TypeCredit),
		testRow("tx2", b, a, 50, "2024-03-02 10:30:00", models.TypeDebit),
	}
}

func mustEqual(d decimal.Decimal, want float64) bool {
	return d.Equal(decimal.NewFromFloat(want))
}
