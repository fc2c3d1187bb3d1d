package services

import (
	"bankflow/backend/models"
)

// SankeyFlows collapses the filtered rows into the bipartite flow fed to the
// cash-flow diagram. Labels are the deduplicated sender and receiver
// identities (party name by default, account id when byAccount is set) in
// first-appearance order; one link is emitted per row, so repeated pairs
// draw as parallel links whose widths add up.
func SankeyFlows(rows []models.Transaction, byAccount bool) models.SankeyData {
	data := models.SankeyData{
		Labels: []string{},
		Links:  []models.SankeyLink{},
	}

	index := make(map[string]int)
	labelFor := func(p models.Party) int {
		label := p.Name
		if byAccount {
			label = p.Account
		}
		if i, ok := index[label]; ok {
			return i
		}
		i := len(data.Labels)
		index[label] = i
		data.Labels = append(data.Labels, label)
		return i
	}

	for _, row := range rows {
		data.Links = append(data.Links, models.SankeyLink{
			Source: labelFor(row.Sender),
			Target: labelFor(row.Receiver),
			Value:  row.Amount,
		})
	}

	return data
}
