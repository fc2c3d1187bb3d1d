package services

import (
	"sort"
	"strings"

	"bankflow/backend/models"
)

// DetailRows projects the filtered rows for the detail table, decorating the
// transaction type and purpose for display. Canonical rows are untouched.
func DetailRows(rows []models.Transaction) []models.TransactionRow {
	out := make([]models.TransactionRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.TransactionRow{
			ID:              row.ID,
			SenderAccount:   row.Sender.Account,
			SenderName:      row.Sender.Name,
			ReceiverAccount: row.Receiver.Account,
			ReceiverName:    row.Receiver.Name,
			Amount:          row.Amount,
			Timestamp:       row.Timestamp,
			Type:            decorateType(row.Type),
			Purpose:         decoratePurpose(row.Purpose),
		})
	}
	return out
}

func decorateType(txType string) string {
	switch txType {
	case models.TypeDebit:
		return "🔴 " + txType
	case models.TypeCredit:
		return "🟢 " + txType
	default:
		return txType
	}
}

func decoratePurpose(purpose string) string {
	icons := []struct {
		substr string
		icon   string
	}{
		{"Salary", "💼"},
		{"Refund", "💸"},
		{"Purchase", "🛒"},
		{"Payment", "💳"},
		{"Transfer", "💰"},
		{"Gift", "🎁"},
	}
	for _, m := range icons {
		if strings.Contains(purpose, m.substr) {
			return m.icon + " " + purpose
		}
	}
	return purpose
}

// FilterOptions holds the sorted distinct values the filter widgets offer.
type FilterOptions struct {
	Names    []string `json:"names"`
	Phones   []string `json:"phones"`
	Accounts []string `json:"accounts"`
}

// CollectFilterOptions gathers the distinct sender and receiver names,
// phone numbers and account ids of the full ledger, sorted.
func CollectFilterOptions(rows []models.Transaction) FilterOptions {
	names := make(map[string]struct{})
	phones := make(map[string]struct{})
	accounts := make(map[string]struct{})
	for _, row := range rows {
		for _, p := range []models.Party{row.Sender, row.Receiver} {
			names[p.Name] = struct{}{}
			phones[p.Phone] = struct{}{}
			accounts[p.Account] = struct{}{}
		}
	}
	return FilterOptions{
		Names:    sortedKeys(names),
		Phones:   sortedKeys(phones),
		Accounts: sortedKeys(accounts),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
