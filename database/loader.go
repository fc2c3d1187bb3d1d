package database

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankflow/backend/models"
)

// Column headers of the exported ledger file, as the upstream dashboard
// export names them.
var requiredColumns = []string{
	"ID",
	"Sender Account",
	"Sender Name",
	"Sender Phone Number",
	"Sender Account Type",
	"Sender Account Branch",
	"Sender Current Account Balance",
	"Receiver Account",
	"Receiver Name",
	"Receiver Phone Number",
	"Receiver Account Type",
	"Receiver Account Branch",
	"Receiver Current Account Balance",
	"Amount",
	"Date and Time",
	"Transaction Type",
	"Purpose of Transaction",
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// LoadResult reports what a CSV ingest did.
type LoadResult struct {
	Inserted int
	Skipped  int
}

// LoadCSV ingests a ledger CSV into the transactions table. The header is
// validated once; each data row is parsed into a typed record so the
// aggregators never re-validate columns. Malformed rows are skipped and
// counted rather than aborting the load; only a broken header is fatal.
func LoadCSV(path string) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to open ledger file: %w", err)
	}
	defer f.Close()

	return loadCSV(f)
}

func loadCSV(r io.Reader) (LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to read ledger header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return LoadResult{}, fmt.Errorf("ledger file missing required column %q", name)
		}
	}

	tx, err := DB.Begin()
	if err != nil {
		return LoadResult{}, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO transactions (
			id,
			senderAccount, senderName, senderPhone, senderType, senderBranch, senderBalance,
			receiverAccount, receiverName, receiverPhone, receiverType, receiverBranch, receiverBalance,
			amount, timestamp, type, purpose
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return LoadResult{}, err
	}
	defer stmt.Close()

	var result LoadResult
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			continue
		}

		row, err := parseRecord(record, columns)
		if err != nil {
			result.Skipped++
			continue
		}

		_, err = stmt.Exec(
			row.ID,
			row.Sender.Account, row.Sender.Name, row.Sender.Phone, row.Sender.AccountType, row.Sender.Branch, row.Sender.Balance.String(),
			row.Receiver.Account, row.Receiver.Name, row.Receiver.Phone, row.Receiver.AccountType, row.Receiver.Branch, row.Receiver.Balance.String(),
			row.Amount.String(), row.Timestamp, row.Type, row.Purpose,
		)
		if err != nil {
			result.Skipped++
			continue
		}
		result.Inserted++
	}

	if err := tx.Commit(); err != nil {
		return LoadResult{}, err
	}
	return result, nil
}

func parseRecord(record []string, columns map[string]int) (models.Transaction, error) {
	field := func(name string) string {
		i := columns[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	sender, err := parseParty(field, "Sender")
	if err != nil {
		return models.Transaction{}, err
	}
	receiver, err := parseParty(field, "Receiver")
	if err != nil {
		return models.Transaction{}, err
	}

	amount, err := decimal.NewFromString(field("Amount"))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("bad amount %q: %w", field("Amount"), err)
	}
	if amount.IsNegative() {
		return models.Transaction{}, fmt.Errorf("negative amount %s", amount)
	}

	ts, err := parseTimestamp(field("Date and Time"))
	if err != nil {
		return models.Transaction{}, err
	}

	txType := field("Transaction Type")
	if txType != models.TypeCredit && txType != models.TypeDebit {
		return models.Transaction{}, fmt.Errorf("unknown transaction type %q", txType)
	}

	id := field("ID")
	if id == "" {
		id = uuid.New().String()
	}

	return models.Transaction{
		ID:        id,
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
		Timestamp: ts,
		Type:      txType,
		Purpose:   field("Purpose of Transaction"),
	}, nil
}

func parseParty(field func(string) string, prefix string) (models.Party, error) {
	balance, err := decimal.NewFromString(field(prefix + " Current Account Balance"))
	if err != nil {
		return models.Party{}, fmt.Errorf("bad %s balance: %w", strings.ToLower(prefix), err)
	}

	account := field(prefix + " Account")
	if account == "" {
		return models.Party{}, fmt.Errorf("missing %s account", strings.ToLower(prefix))
	}

	return models.Party{
		Account:     account,
		Name:        field(prefix + " Name"),
		Phone:       field(prefix + " Phone Number"),
		AccountType: field(prefix + " Account Type"),
		Branch:      field(prefix + " Account Branch"),
		Balance:     balance,
	}, nil
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}
