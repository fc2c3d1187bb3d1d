package database

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankflow/backend/models"
)

var (
	ledgerMu sync.RWMutex
	ledger   = &models.Ledger{Version: "empty"}
)

// RefreshLedger reads every persisted transaction into a fresh in-memory
// snapshot with a new version and swaps it in. Aggregators only ever see
// these snapshots, never the database.
func RefreshLedger() (*models.Ledger, error) {
	rows, err := AllTransactions()
	if err != nil {
		return nil, err
	}

	next := &models.Ledger{
		Version: uuid.New().String(),
		Rows:    rows,
	}

	ledgerMu.Lock()
	ledger = next
	ledgerMu.Unlock()
	return next, nil
}

// GetLedger returns the current in-memory snapshot.
func GetLedger() *models.Ledger {
	ledgerMu.RLock()
	defer ledgerMu.RUnlock()
	return ledger
}

// AllTransactions loads the persisted ledger rows in insertion order.
func AllTransactions() ([]models.Transaction, error) {
	rows, err := DB.Query(`
		SELECT id,
			senderAccount, senderName, senderPhone, senderType, senderBranch, senderBalance,
			receiverAccount, receiverName, receiverPhone, receiverType, receiverBranch, receiverBalance,
			amount, timestamp, type, purpose
		FROM transactions
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var senderBalance, receiverBalance, amount string

		err := rows.Scan(
			&t.ID,
			&t.Sender.Account, &t.Sender.Name, &t.Sender.Phone, &t.Sender.AccountType, &t.Sender.Branch, &senderBalance,
			&t.Receiver.Account, &t.Receiver.Name, &t.Receiver.Phone, &t.Receiver.AccountType, &t.Receiver.Branch, &receiverBalance,
			&amount, &t.Timestamp, &t.Type, &t.Purpose,
		)
		if err != nil {
			return nil, err
		}

		if t.Sender.Balance, err = decimal.NewFromString(senderBalance); err != nil {
			return nil, err
		}
		if t.Receiver.Balance, err = decimal.NewFromString(receiverBalance); err != nil {
			return nil, err
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		t.Timestamp = t.Timestamp.UTC()

		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}
