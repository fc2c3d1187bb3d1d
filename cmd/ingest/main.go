package main

import (
	"flag"
	"os"

	"bankflow/backend/database"
	"bankflow/backend/logger"
)

// Offline CSV ingestion. Loads a ledger export into the sqlite store
// without starting the HTTP server.
func main() {
	csvPath := flag.String("csv", "", "Ledger CSV file to ingest (required)")
	resetDB := flag.Bool("reset-db", false, "Drop all stored transactions first")
	flag.Parse()

	log := logger.New()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := database.InitDB(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	if *resetDB {
		if err := database.ResetTransactions(); err != nil {
			log.Fatal().Err(err).Msg("Failed to reset transactions")
		}
	}

	result, err := database.LoadCSV(*csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *csvPath).Msg("Failed to ingest ledger CSV")
	}

	total, err := database.CountTransactions()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count transactions")
	}

	log.Info().
		Str("path", *csvPath).
		Int("inserted", result.Inserted).
		Int("skipped", result.Skipped).
		Int("total", total).
		Msg("Ingest completed")
}
