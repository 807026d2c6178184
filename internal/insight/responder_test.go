package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponderSummary(t *testing.T) {
	r := NewResponder(Insights{
		ThisMonthTotal:   456.78,
		LastMonthTotal:   400,
		PercentChange:    14.2,
		TransactionCount: 12,
	}, "$")

	got := r.Respond("How much have I spent?")
	assert.Equal(t, "This month, you've spent $456.78 across 12 transactions. Your spending is up 14.2% compared to last month.", got)

	t.Run("spending down", func(t *testing.T) {
		r := NewResponder(Insights{ThisMonthTotal: 100, PercentChange: -8.5, TransactionCount: 3}, "€")
		got := r.Respond("give me a summary")
		assert.Contains(t, got, "€100.00")
		assert.Contains(t, got, "down 8.5%")
	})
}

func TestResponderTopCategory(t *testing.T) {
	r := NewResponder(Insights{TopCategory: "Food & Dining", TopCategoryAmount: 230.50}, "$")

	got := r.Respond("what's my top category?")
	assert.Equal(t, "Your highest spending category is Food & Dining with $230.50 spent this month.", got)

	t.Run("no expenses yet", func(t *testing.T) {
		r := NewResponder(Insights{}, "$")
		assert.Equal(t, "You don't have any expenses recorded yet.", r.Respond("where do I spend the most?"))
	})
}

func TestResponderForecast(t *testing.T) {
	r := NewResponder(Insights{AvgDailySpend: 25.5, ProjectedMonthEnd: 765}, "$")

	got := r.Respond("predict my spending")
	assert.Contains(t, got, "$25.50/day")
	assert.Contains(t, got, "$765.00 by month end")
}

func TestResponderRecommend(t *testing.T) {
	t.Run("spending up sharply", func(t *testing.T) {
		r := NewResponder(Insights{PercentChange: 35, TopCategory: "Shopping"}, "$")
		got := r.Respond("any advice?")
		assert.Contains(t, got, "up 35.0%")
		assert.Contains(t, got, "Shopping")
	})

	t.Run("spending under control", func(t *testing.T) {
		r := NewResponder(Insights{PercentChange: 5}, "$")
		got := r.Respond("what should I do?")
		assert.Contains(t, got, "doing great")
	})
}

func TestResponderSavings(t *testing.T) {
	r := NewResponder(Insights{ThisMonthTotal: 800}, "$")

	got := r.Respond("how can I save money?")
	assert.Contains(t, got, "50/30/20")
	assert.Contains(t, got, "$80.00")
}

func TestResponderAnomalies(t *testing.T) {
	t.Run("none found", func(t *testing.T) {
		r := NewResponder(Insights{}, "$")
		got := r.Respond("anything weird?")
		assert.Contains(t, got, "Everything looks normal")
	})
}

func TestResponderDispatch(t *testing.T) {
	r := NewResponder(Insights{TransactionCount: 1, ThisMonthTotal: 10}, "$")

	t.Run("matching is case-insensitive", func(t *testing.T) {
		assert.Contains(t, r.Respond("SUMMARY please"), "you've spent")
	})

	t.Run("first matching group wins", func(t *testing.T) {
		// "spent" (summary group) appears before "category" in the query,
		// but dispatch order decides: summary rules come first.
		got := r.Respond("how much have I spent per category?")
		assert.Contains(t, got, "you've spent")
	})

	t.Run("unknown query gets help text", func(t *testing.T) {
		got := r.Respond("what's the weather like?")
		assert.Contains(t, got, "I can help you with")
		assert.Contains(t, got, "How much have I spent?")
	})
}
