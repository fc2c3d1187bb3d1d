package services

import (
	"time"

	"github.com/shopspring/decimal"

	"bankflow/backend/models"
)

// BalanceTimeline reconstructs per-account daily OHLC balance bars from the
// filtered rows, one pass per transaction leg.
//
// Both legs exploit the same invariant: the stored balance is the account's
// balance AFTER the transfer was applied. For the sender the pre-transfer
// balance is post + amount, so the day opens at the recorded post-balance
// and closes at post - amount; for the receiver it opens at the recorded
// post-balance and closes at post + amount. Buckets are keyed by (calendar
// day, account, name, transaction type); open takes the first row of the
// bucket in input order, close the last, high/low the extremes.
//
// The outgoing pass is concatenated before the incoming pass. The passes are
// never merged: an account active on both legs of the same day yields two
// bars, told apart by Leg.
func BalanceTimeline(rows []models.Transaction) []models.BalanceBar {
	outgoing := aggregateLeg(rows, models.LegOutgoing)
	return append(outgoing, aggregateLeg(rows, models.LegIncoming)...)
}

type bucketKey struct {
	day     int64
	account string
	name    string
	txType  string
}

func aggregateLeg(rows []models.Transaction, leg string) []models.BalanceBar {
	buckets := make(map[bucketKey]*models.BalanceBar)
	order := make([]bucketKey, 0)

	for _, row := range rows {
		var account, name string
		var high, low, close decimal.Decimal

		if leg == models.LegOutgoing {
			account, name = row.Sender.Account, row.Sender.Name
			high = row.Sender.Balance
			low = row.Sender.Balance.Sub(row.Amount)
			close = low
		} else {
			account, name = row.Receiver.Account, row.Receiver.Name
			low = row.Receiver.Balance
			high = row.Receiver.Balance.Add(row.Amount)
			close = high
		}

		day := truncateDay(row.Timestamp)
		key := bucketKey{day: day.Unix(), account: account, name: name, txType: row.Type}

		bar, ok := buckets[key]
		if !ok {
			bar = &models.BalanceBar{
				Date:    day,
				Account: account,
				Name:    name,
				Type:    row.Type,
				Leg:     leg,
				Open:    openValue(row, leg),
				High:    high,
				Low:     low,
			}
			buckets[key] = bar
			order = append(order, key)
		} else {
			if high.GreaterThan(bar.High) {
				bar.High = high
			}
			if low.LessThan(bar.Low) {
				bar.Low = low
			}
		}
		bar.Close = close
	}

	bars := make([]models.BalanceBar, 0, len(order))
	for _, key := range order {
		bars = append(bars, *buckets[key])
	}
	return bars
}

// openValue is the day-bucket opening balance: the leg's recorded
// post-transaction balance of the first row in the bucket.
func openValue(row models.Transaction, leg string) decimal.Decimal {
	if leg == models.LegOutgoing {
		return row.Sender.Balance
	}
	return row.Receiver.Balance
}

func truncateDay(ts time.Time) time.Time {
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}
