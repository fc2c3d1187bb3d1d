package handlers

import (
	"net/http"

	"bankflow/backend/database"
)

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	ledger := database.GetLedger()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"ledgerVersion": ledger.Version,
		"rows":          len(ledger.Rows),
	})
}
