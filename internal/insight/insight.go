// Package insight derives forward-looking spending analytics: month-over-month
// trends, projections, anomaly flags, and a canned conversational responder.
package insight

import (
	"time"

	"finote/internal/model"
	"finote/internal/report"
)

// AnomalyMultiplier flags transactions larger than this multiple of the
// all-time average amount.
const AnomalyMultiplier = 3

// projectionDays is the fixed month length used for the month-end projection
// regardless of the actual calendar month.
const projectionDays = 30

// Insights is the computed analytics snapshot for "now".
type Insights struct {
	// TopCategory is empty when the current month has no transactions.
	TopCategory       string
	Anomalies         []model.Transaction
	ThisMonthTotal    float64
	LastMonthTotal    float64
	PercentChange     float64
	TopCategoryAmount float64
	AvgDailySpend     float64
	ProjectedMonthEnd float64
	MaxAnomaly        float64
	TransactionCount  int
}

// Compute builds insights over all expense transactions as of now.
func Compute(transactions []model.Transaction, now time.Time) Insights {
	var thisMonth, lastMonth []model.Transaction
	priorRef := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	for _, txn := range transactions {
		switch {
		case report.InMonth(txn, now):
			thisMonth = append(thisMonth, txn)
		case report.InMonth(txn, priorRef):
			lastMonth = append(lastMonth, txn)
		}
	}

	in := Insights{
		ThisMonthTotal:   report.Total(thisMonth),
		LastMonthTotal:   report.Total(lastMonth),
		TransactionCount: len(thisMonth),
	}
	if in.LastMonthTotal > 0 {
		in.PercentChange = (in.ThisMonthTotal - in.LastMonthTotal) / in.LastMonthTotal * 100
	}

	for _, ct := range report.SortedDescending(report.TotalsByCategory(thisMonth)) {
		in.TopCategory = ct.Category
		in.TopCategoryAmount = ct.Amount
		break
	}

	// Day of month is always >= 1, so no divide-by-zero here.
	in.AvgDailySpend = in.ThisMonthTotal / float64(now.Day())
	in.ProjectedMonthEnd = in.AvgDailySpend * projectionDays

	avgAllTime := report.Average(transactions)
	for _, txn := range transactions {
		if txn.Amount > AnomalyMultiplier*avgAllTime {
			in.Anomalies = append(in.Anomalies, txn)
			if txn.Amount > in.MaxAnomaly {
				in.MaxAnomaly = txn.Amount
			}
		}
	}

	return in
}
