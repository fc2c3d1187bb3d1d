package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"bankflow/backend/database"
	"bankflow/backend/handlers"
	"bankflow/backend/logger"
	"bankflow/backend/middleware"
	"bankflow/backend/services"

	"github.com/gorilla/mux"
)

func main() {
	csvPath := flag.String("csv", "", "Ledger CSV file to ingest on startup")
	resetDB := flag.Bool("reset-db", false, "Drop all stored transactions before ingesting")
	noExit := flag.Bool("no-exit", false, "Keep serving after a database reset")
	flag.Parse()

	log := logger.New()

	isResetDB := os.Getenv("RESET_DB") == "true" || *resetDB

	if err := database.InitDB(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	if isResetDB {
		log.Info().Msg("Resetting stored transactions")
		if err := database.ResetTransactions(); err != nil {
			log.Fatal().Err(err).Msg("Failed to reset transactions")
		}
	}

	// CSV ingest: explicit flag wins, then the environment
	ingest := *csvPath
	if ingest == "" {
		ingest = os.Getenv("LEDGER_CSV")
	}
	if ingest != "" {
		result, err := database.LoadCSV(ingest)
		if err != nil {
			log.Fatal().Err(err).Str("path", ingest).Msg("Failed to ingest ledger CSV")
		}
		log.Info().
			Str("path", ingest).
			Int("inserted", result.Inserted).
			Int("skipped", result.Skipped).
			Msg("Ledger CSV ingested")
	}

	// If running in reset mode without a CSV to serve, exit after cleanup
	// unless --no-exit is provided.
	if isResetDB && ingest == "" && !*noExit {
		log.Info().Msg("Database reset completed. Exiting.")
		return
	}

	ledger, err := database.RefreshLedger()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load ledger into memory")
	}
	log.Info().
		Str("version", ledger.Version).
		Int("rows", len(ledger.Rows)).
		Msg("Ledger loaded")

	cache := services.NewViewCache()
	h := handlers.NewDashboardHandler(cache, log)

	// Optional background refresh, e.g. LEDGER_REFRESH_INTERVAL=5m.
	if raw := os.Getenv("LEDGER_REFRESH_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatal().Err(err).Str("value", raw).Msg("Invalid LEDGER_REFRESH_INTERVAL")
		}
		services.StartRefreshScheduler(log, interval, func() error {
			if _, err := database.RefreshLedger(); err != nil {
				return err
			}
			cache.Invalidate()
			return nil
		})
	}

	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.EnableCORS)

	// Register routes with both direct paths and /api prefix so the
	// frontend dev server and reverse-proxied deployments both work.
	registerRoutes(r, h)
	apiRouter := r.PathPrefix("/api").Subrouter()
	registerRoutes(apiRouter, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Info().Str("port", port).Msg("Starting server")
	log.Fatal().Err(srv.ListenAndServe()).Msg("Server stopped")
}

// registerRoutes sets up all API routes.
func registerRoutes(r *mux.Router, h *handlers.DashboardHandler) {
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET", "OPTIONS")

	r.HandleFunc("/transactions", handlers.GetTransactions).Methods("GET")
	r.HandleFunc("/transactions/options", handlers.GetTransactionOptions).Methods("GET")

	r.HandleFunc("/dashboard/summary", h.GetSummary).Methods("GET")
	r.HandleFunc("/dashboard/rollups", h.GetRollups).Methods("GET")
	r.HandleFunc("/dashboard/network", h.GetNetwork).Methods("GET")
	r.HandleFunc("/dashboard/map", h.GetMap).Methods("GET")
	r.HandleFunc("/dashboard/sankey", h.GetSankey).Methods("GET")
	r.HandleFunc("/dashboard/timeline", h.GetTimeline).Methods("GET")
	r.HandleFunc("/dashboard/distribution/{column}", h.GetDistribution).Methods("GET")

	r.HandleFunc("/filters", handlers.GetFilterPresets).Methods("GET")
	r.HandleFunc("/filters", handlers.CreateFilterPreset).Methods("POST")
	r.HandleFunc("/filters/{id}", handlers.GetFilterPreset).Methods("GET")
	r.HandleFunc("/filters/{id}", handlers.UpdateFilterPreset).Methods("PUT")
	r.HandleFunc("/filters/{id}", handlers.DeleteFilterPreset).Methods("DELETE")

	r.HandleFunc("/admin/reload", h.ReloadLedger).Methods("POST")
}
