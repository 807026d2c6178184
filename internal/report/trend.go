package report

import (
	"fmt"
	"sort"

	"finote/internal/model"
)

// trendMonths caps how many months of history the trend reports.
const trendMonths = 6

// MonthTotal is one calendar month's spending sum.
type MonthTotal struct {
	// Month is the year-month key, e.g. "2026-08".
	Month  string
	Amount float64
}

// MonthlyTrend groups transactions by year-month and returns the most recent
// six distinct months in chronological order, fewer if history is shorter.
func MonthlyTrend(transactions []model.Transaction) []MonthTotal {
	byMonth := make(map[string]float64)
	for _, txn := range transactions {
		key := fmt.Sprintf("%04d-%02d", txn.Date.Year(), int(txn.Date.Month()))
		byMonth[key] += txn.Amount
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if len(keys) > trendMonths {
		keys = keys[len(keys)-trendMonths:]
	}

	trend := make([]MonthTotal, 0, len(keys))
	for _, key := range keys {
		trend = append(trend, MonthTotal{Month: key, Amount: model.RoundAmount(byMonth[key])})
	}
	return trend
}
