package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"bankflow/backend/models"
)

// parseCriteria reads the three filter selections from the query string.
// Each parameter holds comma-separated exact-match values, e.g.
// ?names=Alice,Bob&accounts=ACC-1.
func parseCriteria(r *http.Request) models.FilterCriteria {
	return models.FilterCriteria{
		Names:    splitParam(r.URL.Query().Get("names")),
		Phones:   splitParam(r.URL.Query().Get("phones")),
		Accounts: splitParam(r.URL.Query().Get("accounts")),
	}
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
