// Package budget evaluates current-month spending against per-category
// monthly limits, deriving status tiers and overspend alerts.
package budget

import (
	"sort"

	"finote/internal/model"
	"finote/internal/report"
)

// Tier is the per-category budget status.
type Tier string

// Per-category tiers. Budget = 0 is defined as not-over, not-warning.
const (
	TierOnTrack    Tier = "OnTrack"
	TierWarning    Tier = "Warning"
	TierOverBudget Tier = "OverBudget"
)

// TrackerTier is the whole-tracker status, evaluated only when a positive
// total budget exists.
type TrackerTier string

// Tracker-level tiers.
const (
	TrackerNoBudget      TrackerTier = "NoBudget"
	TrackerPerfectZero   TrackerTier = "PerfectZero"
	TrackerBudgetBreaker TrackerTier = "BudgetBreaker"
	TrackerSaver         TrackerTier = "Saver"
	TrackerWatcher       TrackerTier = "Watcher"
)

// warningPercent is the lower bound of the Warning tier and the upper bound
// of the tracker-level Saver tier.
const warningPercent = 80

// CategoryStatus is one category's budget-vs-spend evaluation.
type CategoryStatus struct {
	Category  string
	Tier      Tier
	Spent     float64
	Budget    float64
	Remaining float64
	Percent   float64
}

// Alert records a category whose explicitly set budget was exceeded.
type Alert struct {
	Category string
	Spent    float64
	Budget   float64
	OverBy   float64
}

// Summary is the aggregate budget-vs-spend view plus the tracker tier.
type Summary struct {
	Tracker        TrackerTier
	Categories     []CategoryStatus
	Alerts         []Alert
	TotalBudget    float64
	TotalSpent     float64
	TotalRemaining float64
}

// Evaluate computes per-category and aggregate budget status from
// current-month category totals. Alerts are recomputed on every call and
// never persisted or deduplicated; the caller decides display frequency.
func Evaluate(categoryTotals []report.CategoryTotal, budgets model.Budgets) Summary {
	spentByCategory := make(map[string]float64, len(categoryTotals))
	var totalSpent float64
	for _, ct := range categoryTotals {
		spentByCategory[ct.Category] = ct.Amount
		totalSpent += ct.Amount
	}

	// Evaluate every budgeted category plus any spent category without an
	// explicit budget: spent categories in first-encounter order, then
	// budgeted base categories, then remaining budget keys sorted by name.
	names := make([]string, 0, len(categoryTotals)+len(budgets))
	seen := make(map[string]bool, len(categoryTotals))
	for _, ct := range categoryTotals {
		names = append(names, ct.Category)
		seen[ct.Category] = true
	}
	for _, cat := range model.BaseCategories {
		if _, ok := budgets[cat.Name]; ok && !seen[cat.Name] {
			names = append(names, cat.Name)
			seen[cat.Name] = true
		}
	}
	extra := make([]string, 0, len(budgets))
	for name := range budgets {
		if !seen[name] {
			extra = append(extra, name)
			seen[name] = true
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	summary := Summary{
		Tracker:     TrackerNoBudget,
		TotalBudget: budgets.Total(),
		TotalSpent:  totalSpent,
	}
	summary.TotalRemaining = summary.TotalBudget - totalSpent

	for _, name := range names {
		status := evaluateCategory(name, spentByCategory[name], budgets[name])
		summary.Categories = append(summary.Categories, status)

		if limit, ok := budgets[name]; ok && limit > 0 && status.Spent > limit {
			summary.Alerts = append(summary.Alerts, Alert{
				Category: name,
				Spent:    status.Spent,
				Budget:   limit,
				OverBy:   model.RoundAmount(status.Spent - limit),
			})
		}
	}

	if summary.TotalBudget > 0 {
		summary.Tracker = trackerTier(totalSpent, summary.TotalBudget)
	}
	return summary
}

func evaluateCategory(name string, spent, limit float64) CategoryStatus {
	status := CategoryStatus{
		Category:  name,
		Tier:      TierOnTrack,
		Spent:     spent,
		Budget:    limit,
		Remaining: limit - spent,
	}
	if limit > 0 {
		status.Percent = spent / limit * 100
	}
	switch {
	case limit > 0 && spent > limit:
		status.Tier = TierOverBudget
	case status.Percent > warningPercent:
		status.Tier = TierWarning
	}
	return status
}

func trackerTier(totalSpent, totalBudget float64) TrackerTier {
	percent := totalSpent / totalBudget * 100
	switch {
	case totalSpent == 0:
		return TrackerPerfectZero
	case percent >= 100:
		return TrackerBudgetBreaker
	case percent < warningPercent:
		return TrackerSaver
	default:
		return TrackerWatcher
	}
}
