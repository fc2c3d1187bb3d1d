package handlers

import (
	"net/http"

	"bankflow/backend/database"
	"bankflow/backend/models"
	"bankflow/backend/services"
)

type transactionsResponse struct {
	Selected     bool                    `json:"selected"`
	Count        int                     `json:"count"`
	Transactions []models.TransactionRow `json:"transactions"`
}

// GetTransactions handles GET /transactions: the filtered detail-table
// projection. With no criteria it returns the placeholder state, never the
// full ledger.
func GetTransactions(w http.ResponseWriter, r *http.Request) {
	ledger := database.GetLedger()
	result := services.ApplyFilters(ledger.Rows, parseCriteria(r))

	if !result.Selected {
		writeJSON(w, http.StatusOK, transactionsResponse{Transactions: []models.TransactionRow{}})
		return
	}

	rows := services.DetailRows(result.Rows)
	writeJSON(w, http.StatusOK, transactionsResponse{
		Selected:     true,
		Count:        len(rows),
		Transactions: rows,
	})
}

// GetTransactionOptions handles GET /transactions/options: the distinct
// names, phone numbers and account ids offered by the filter widgets.
func GetTransactionOptions(w http.ResponseWriter, r *http.Request) {
	ledger := database.GetLedger()
	writeJSON(w, http.StatusOK, services.CollectFilterOptions(ledger.Rows))
}
