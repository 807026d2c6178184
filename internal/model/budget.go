package model

// Budgets maps expense category names to monthly spending limits. Budgets
// apply only to expense categories and are always evaluated against the
// current calendar month.
type Budgets map[string]float64

// DefaultCategoryBudget is seeded for every base category when no budgets
// have been saved yet.
const DefaultCategoryBudget = 500

// DefaultBudgets returns the budget map applied on first launch.
func DefaultBudgets() Budgets {
	budgets := make(Budgets, len(BaseCategories))
	for _, cat := range BaseCategories {
		budgets[cat.Name] = DefaultCategoryBudget
	}
	return budgets
}

// Total returns the sum of all configured limits.
func (b Budgets) Total() float64 {
	var total float64
	for _, limit := range b {
		total += limit
	}
	return total
}
