// Package report filters transactions by time window and aggregates them for
// display: category totals, breakdowns, chart data, and monthly trends.
package report

import (
	"time"

	"finote/internal/model"
)

// Window names a relative date range anchored at "now".
type Window string

// Supported windows.
const (
	Last30Days   Window = "30d"
	CurrentMonth Window = "month"
	CurrentYear  Window = "year"
	AllTime      Window = "all"
)

// Filter returns the transactions whose date falls within the window,
// preserving input order. Comparison is by calendar date only; time of day is
// ignored. AllTime returns the input unchanged.
func Filter(transactions []model.Transaction, window Window, now time.Time) []model.Transaction {
	if window == AllTime {
		return transactions
	}

	var cutoff time.Time
	switch window {
	case Last30Days:
		cutoff = dateOnly(now).AddDate(0, 0, -30)
	case CurrentMonth:
		cutoff = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case CurrentYear:
		cutoff = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return transactions
	}

	filtered := make([]model.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if !dateOnly(txn.Date).Before(cutoff) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// InMonth reports whether the transaction date falls in the same calendar
// month and year as ref.
func InMonth(txn model.Transaction, ref time.Time) bool {
	return txn.Date.Year() == ref.Year() && txn.Date.Month() == ref.Month()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
