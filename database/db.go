package database

import (
	"database/sql"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// InitDB opens the ledger database and creates the schema. The path comes
// from LEDGER_DB; tests run against an in-memory database (TEST_DB=1).
func InitDB() error {
	var dbPath string
	if os.Getenv("TEST_DB") == "1" {
		dbPath = ":memory:"
	} else if path := os.Getenv("LEDGER_DB"); path != "" {
		dbPath = path
	} else {
		dbPath = "./ledger.db"
	}

	var err error
	dsn := dbPath + "?_journal=WAL&_timeout=10000&_busy_timeout=10000"
	DB, err = sql.Open("sqlite3", dsn)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(5)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(time.Minute * 5)

	_, err = DB.Exec("PRAGMA journal_mode=WAL;")
	if err != nil {
		return err
	}

	_, err = DB.Exec("PRAGMA busy_timeout=5000;")
	if err != nil {
		return err
	}

	err = DB.Ping()
	if err != nil {
		return err
	}

	return createSchema(DB)
}

func createSchema(db *sql.DB) error {
	// Amounts and balances are stored as text so decimal values round-trip
	// exactly.
	createTransactionsTable := `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		senderAccount TEXT NOT NULL,
		senderName TEXT NOT NULL,
		senderPhone TEXT,
		senderType TEXT,
		senderBranch TEXT,
		senderBalance TEXT NOT NULL,
		receiverAccount TEXT NOT NULL,
		receiverName TEXT NOT NULL,
		receiverPhone TEXT,
		receiverType TEXT,
		receiverBranch TEXT,
		receiverBalance TEXT NOT NULL,
		amount TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		type TEXT NOT NULL,
		purpose TEXT
	);
	`
	if _, err := db.Exec(createTransactionsTable); err != nil {
		return err
	}

	// Criteria are stored comma-joined, matching the query-parameter format.
	createPresetsTable := `
	CREATE TABLE IF NOT EXISTS filter_presets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		names TEXT NOT NULL DEFAULT '',
		phones TEXT NOT NULL DEFAULT '',
		accounts TEXT NOT NULL DEFAULT '',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(createPresetsTable)
	return err
}

// ResetTransactions drops all persisted ledger rows.
func ResetTransactions() error {
	_, err := DB.Exec("DELETE FROM transactions")
	return err
}

// CountTransactions reports the number of persisted ledger rows.
func CountTransactions() (int, error) {
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}
