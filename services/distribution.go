package services

import (
	"fmt"
	"sort"

	"bankflow/backend/models"
)

// Distribution counts the filtered rows grouped by one categorical column.
// Buckets are ordered by count descending, then label, so pie renderers get
// a stable slice order.
func Distribution(rows []models.Transaction, column string) ([]models.LabelCount, error) {
	var pick func(models.Transaction) string
	switch column {
	case models.ColumnPurpose:
		pick = func(t models.Transaction) string { return t.Purpose }
	case models.ColumnType:
		pick = func(t models.Transaction) string { return t.Type }
	case models.ColumnSender:
		pick = func(t models.Transaction) string { return t.Sender.Name }
	case models.ColumnReceiver:
		pick = func(t models.Transaction) string { return t.Receiver.Name }
	default:
		return nil, fmt.Errorf("unknown distribution column %q", column)
	}

	counts := make(map[string]int)
	for _, row := range rows {
		counts[pick(row)]++
	}

	buckets := make([]models.LabelCount, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, models.LabelCount{Label: label, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})

	return buckets, nil
}

// Summarize computes the KPI tile scalars over the filtered rows.
func Summarize(rows []models.Transaction) models.Summary {
	summary := models.Summary{TransactionCount: len(rows)}

	accounts := make(map[string]struct{})
	for _, row := range rows {
		summary.TotalAmount = summary.TotalAmount.Add(row.Amount)
		accounts[row.Sender.Account] = struct{}{}
		accounts[row.Receiver.Account] = struct{}{}
	}
	summary.AccountCount = len(accounts)

	return summary
}
