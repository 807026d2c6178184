package insight

import (
	"math"
	"sort"
	"strings"
	"time"

	"finote/internal/model"
	"finote/internal/report"
)

// minHistoryForPrediction is the transaction count below which the prediction
// falls back to a flat 5% increase over the all-time total.
const minHistoryForPrediction = 5

// PredictNextMonth estimates next month's spending. With little history it
// assumes a 5% increase over the total so far; otherwise it averages the last
// three months and adds a 10% buffer.
func PredictNextMonth(transactions []model.Transaction, now time.Time) float64 {
	if len(transactions) < minHistoryForPrediction {
		return report.Total(transactions) * 1.05
	}

	// Date-only cutoff so inclusion does not depend on now's time of day.
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, -3, 0)
	var recent float64
	for _, txn := range transactions {
		if !txn.Date.Before(cutoff) {
			recent += txn.Amount
		}
	}
	return recent / 3 * 1.1
}

// RecurringPattern is a description that repeats with a similar amount.
type RecurringPattern struct {
	Description string
	Dates       []time.Time
	Count       int
}

// DetectRecurring finds descriptions appearing at least twice with the same
// rounded amount, a cheap proxy for subscriptions and repeating bills.
func DetectRecurring(transactions []model.Transaction) []RecurringPattern {
	type key struct {
		description string
		amount      int
	}

	order := make([]key, 0, len(transactions))
	dates := make(map[key][]time.Time, len(transactions))
	for _, txn := range transactions {
		k := key{
			description: strings.ToLower(txn.Description),
			amount:      int(math.Round(txn.Amount)),
		}
		if _, ok := dates[k]; !ok {
			order = append(order, k)
		}
		dates[k] = append(dates[k], txn.Date)
	}

	var patterns []RecurringPattern
	for _, k := range order {
		if len(dates[k]) < 2 {
			continue
		}
		ds := dates[k]
		sort.Slice(ds, func(i, j int) bool { return ds[i].Before(ds[j]) })
		patterns = append(patterns, RecurringPattern{
			Description: k.description,
			Count:       len(ds),
			Dates:       ds,
		})
	}
	return patterns
}
