package services

import (
	"github.com/shopspring/decimal"

	"bankflow/backend/models"
)

// SummarizeAccounts builds the per-account rollup table for every account
// touched by the filtered rows.
//
// The account universe comes from the filtered rows (sender then receiver,
// first-appearance order), but identity resolution and all totals run over
// the FULL ledger: a filtered subset may only show an account in one role,
// while the rollup must report its true global activity. This is deliberate;
// restricting totals to the filtered rows silently changes the KPI
// semantics.
func SummarizeAccounts(full, filtered []models.Transaction) []models.AccountRollup {
	universe := accountUniverse(filtered)

	rollups := make([]models.AccountRollup, 0, len(universe))
	for _, account := range universe {
		rollups = append(rollups, rollupAccount(full, account))
	}
	return rollups
}

// accountUniverse lists distinct account ids in first-appearance order,
// visiting each row's sender before its receiver.
func accountUniverse(rows []models.Transaction) []string {
	seen := make(map[string]struct{}, len(rows)*2)
	universe := make([]string, 0, len(rows)*2)
	add := func(account string) {
		if _, dup := seen[account]; dup {
			return
		}
		seen[account] = struct{}{}
		universe = append(universe, account)
	}
	for _, row := range rows {
		add(row.Sender.Account)
		add(row.Receiver.Account)
	}
	return universe
}

func rollupAccount(full []models.Transaction, account string) models.AccountRollup {
	rollup := models.AccountRollup{
		Account:     account,
		Name:        models.Unknown,
		AccountType: models.Unknown,
	}

	// Resolve identity sender-first, then receiver, from the full ledger.
	resolved := false
	for _, row := range full {
		if row.Sender.Account == account {
			rollup.Name = row.Sender.Name
			rollup.AccountType = row.Sender.AccountType
			resolved = true
			break
		}
	}
	if !resolved {
		for _, row := range full {
			if row.Receiver.Account == account {
				rollup.Name = row.Receiver.Name
				rollup.AccountType = row.Receiver.AccountType
				break
			}
		}
	}

	for _, row := range full {
		if row.Sender.Account == account {
			rollup.TotalSent = rollup.TotalSent.Add(row.Amount)
			rollup.SentCount++
			if rollup.SentBranches == nil {
				rollup.SentBranches = make(map[string]decimal.Decimal)
			}
			branch := row.Receiver.Branch
			rollup.SentBranches[branch] = rollup.SentBranches[branch].Add(row.Amount)
		}
		if row.Receiver.Account == account {
			rollup.TotalReceived = rollup.TotalReceived.Add(row.Amount)
			rollup.ReceivedCount++
			if rollup.ReceivedBranches == nil {
				rollup.ReceivedBranches = make(map[string]decimal.Decimal)
			}
			branch := row.Sender.Branch
			rollup.ReceivedBranches[branch] = rollup.ReceivedBranches[branch].Add(row.Amount)
		}
	}

	return rollup
}
