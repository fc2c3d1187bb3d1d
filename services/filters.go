package services

import (
	"bankflow/backend/models"
)

// FilterResult is the outcome of applying filter criteria to the ledger.
// Selected is false when no criteria were supplied at all; callers must
// render the placeholder state, never fall back to the full table.
type FilterResult struct {
	Selected bool
	Rows     []models.Transaction
}

// ApplyFilters selects the rows matching the criteria. A row is retained
// when its sender or receiver matches ANY non-empty criterion set: the sets
// combine with OR, not AND. Input order is preserved and each row appears at
// most once. The source slice is never modified; the result is a fresh copy.
func ApplyFilters(rows []models.Transaction, criteria models.FilterCriteria) FilterResult {
	if criteria.Empty() {
		return FilterResult{Selected: false}
	}

	names := toSet(criteria.Names)
	phones := toSet(criteria.Phones)
	accounts := toSet(criteria.Accounts)

	matched := make([]models.Transaction, 0)
	for _, row := range rows {
		if matchesAny(row, names, phones, accounts) {
			matched = append(matched, row)
		}
	}

	return FilterResult{Selected: true, Rows: matched}
}

func matchesAny(row models.Transaction, names, phones, accounts map[string]struct{}) bool {
	if inSet(names, row.Sender.Name) || inSet(names, row.Receiver.Name) {
		return true
	}
	if inSet(phones, row.Sender.Phone) || inSet(phones, row.Receiver.Phone) {
		return true
	}
	if inSet(accounts, row.Sender.Account) || inSet(accounts, row.Receiver.Account) {
		return true
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func inSet(set map[string]struct{}, v string) bool {
	_, ok := set[v]
	return ok
}
