package report

import (
	"sort"

	"finote/internal/model"
)

// CategoryTotal is one category's aggregated amount, with a display color
// assigned from the chart palette.
type CategoryTotal struct {
	Category string
	Color    string
	Amount   float64
}

// chartPalette is cycled in the order categories are first encountered in an
// aggregation pass. Assignment is recomputed per pass and never persisted, so
// a category's color can shift between renders; cosmetic only.
var chartPalette = []string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF",
	"#FF9F40", "#E7E9ED", "#333333", "#C9CBCE",
}

// TotalsByCategory sums amounts per category label, keyed in the order
// categories are first encountered. Colors cycle through the chart palette
// using a locally scoped index so concurrent aggregation passes do not
// interfere.
func TotalsByCategory(transactions []model.Transaction) []CategoryTotal {
	index := make(map[string]int, len(transactions))
	totals := make([]CategoryTotal, 0, len(transactions))

	for _, txn := range transactions {
		i, ok := index[txn.Category]
		if !ok {
			i = len(totals)
			index[txn.Category] = i
			totals = append(totals, CategoryTotal{
				Category: txn.Category,
				Color:    chartPalette[i%len(chartPalette)],
			})
		}
		totals[i].Amount += txn.Amount
	}
	return totals
}

// Total sums all transaction amounts.
func Total(transactions []model.Transaction) float64 {
	var sum float64
	for _, txn := range transactions {
		sum += txn.Amount
	}
	return sum
}

// Average returns the mean transaction amount, or 0 for an empty set.
func Average(transactions []model.Transaction) float64 {
	if len(transactions) == 0 {
		return 0
	}
	return Total(transactions) / float64(len(transactions))
}

// SortedDescending orders totals by amount, largest first. The sort is stable
// so ties keep their first-encounter order.
func SortedDescending(totals []CategoryTotal) []CategoryTotal {
	sorted := make([]CategoryTotal, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	return sorted
}
