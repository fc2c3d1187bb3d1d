package handlers

import (
	"os"
	"testing"

	"bankflow/backend/database"
)

// SetupTestLedger initializes an in-memory database, seeds it with the
// given raw rows and refreshes the in-memory ledger snapshot.
func SetupTestLedger(t *testing.T, rows [][]interface{}) {
	t.Helper()

	os.Setenv("TEST_DB", "1")
	if err := database.InitDB(); err != nil {
		t.Fatalf("Failed to init test database: %v", err)
	}

	for _, row := range rows {
		_, err := database.DB.Exec(`
			INSERT INTO transactions (
				id,
				senderAccount, senderName, senderPhone, senderType, senderBranch, senderBalance,
				receiverAccount, receiverName, receiverPhone, receiverType, receiverBranch, receiverBalance,
				amount, timestamp, type, purpose
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, row...)
		if err != nil {
			t.Fatalf("Failed to seed transaction: %v", err)
		}
	}

	if _, err := database.RefreshLedger(); err != nil {
		t.Fatalf("Failed to refresh ledger: %v", err)
	}
}

// CleanupTestLedger closes the test database connection.
func CleanupTestLedger() {
	if database.DB != nil {
		database.DB.Close()
	}
}

// twoPartySeed is the end-to-end example ledger: A sends B 100 (Credit),
// B sends A 50 (Debit).
func twoPartySeed() [][]interface{} {
	return [][]interface{}{
		{
			"tx1",
			"ACC-A", "A", "555-0001", "Savings", "40.7128, -74.0060", "900",
			"ACC-B", "B", "555-0002", "Current", "51.5072, -0.1276", "1100",
			"100", "2024-03-01 09:00:00", "Credit", "Salary Payment",
		},
		{
			"tx2",
			"ACC-B", "B", "555-0002", "Current", "51.5072, -0.1276", "1000",
			"ACC-A", "A", "555-0001", "Savings", "40.7128, -74.0060", "950",
			"50", "2024-03-02 10:30:00", "Debit", "Refund",
		},
	}
}
