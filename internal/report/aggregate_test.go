package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finote/internal/model"
)

func expense(category string, amount float64) model.Transaction {
	return model.Transaction{
		Type:     model.TypeExpense,
		Amount:   amount,
		Category: category,
		Date:     time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTotalsByCategory(t *testing.T) {
	t.Run("sums per category in first-encounter order", func(t *testing.T) {
		totals := TotalsByCategory([]model.Transaction{
			expense("Food & Dining", 12.50),
			expense("Transportation", 8),
			expense("Food & Dining", 7.50),
			expense("Shopping", 40),
		})

		require.Len(t, totals, 3)
		assert.Equal(t, "Food & Dining", totals[0].Category)
		assert.Equal(t, 20.0, totals[0].Amount)
		assert.Equal(t, "Transportation", totals[1].Category)
		assert.Equal(t, 8.0, totals[1].Amount)
		assert.Equal(t, "Shopping", totals[2].Category)
		assert.Equal(t, 40.0, totals[2].Amount)
	})

	t.Run("colors cycle through the palette", func(t *testing.T) {
		transactions := make([]model.Transaction, 0, len(chartPalette)+1)
		for i := 0; i <= len(chartPalette); i++ {
			transactions = append(transactions, expense(string(rune('A'+i)), 1))
		}

		totals := TotalsByCategory(transactions)
		require.Len(t, totals, len(chartPalette)+1)
		assert.Equal(t, chartPalette[0], totals[0].Color)
		assert.Equal(t, chartPalette[len(chartPalette)-1], totals[len(chartPalette)-1].Color)
		// Wraps back to the start once the palette is exhausted.
		assert.Equal(t, chartPalette[0], totals[len(chartPalette)].Color)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, TotalsByCategory(nil))
	})
}

func TestTotalAndAverage(t *testing.T) {
	transactions := []model.Transaction{
		expense("Food & Dining", 10),
		expense("Shopping", 20),
		expense("Others", 30),
	}

	assert.Equal(t, 60.0, Total(transactions))
	assert.Equal(t, 20.0, Average(transactions))

	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, 0.0, Total(nil))
		assert.Equal(t, 0.0, Average(nil))
	})
}

func TestSortedDescending(t *testing.T) {
	totals := []CategoryTotal{
		{Category: "Transportation", Amount: 8},
		{Category: "Food & Dining", Amount: 20},
		{Category: "Shopping", Amount: 40},
		{Category: "Entertainment", Amount: 8},
	}

	sorted := SortedDescending(totals)

	t.Run("amounts are non-increasing", func(t *testing.T) {
		for i := 1; i < len(sorted); i++ {
			assert.GreaterOrEqual(t, sorted[i-1].Amount, sorted[i].Amount)
		}
	})

	t.Run("ties keep first-encounter order", func(t *testing.T) {
		require.Len(t, sorted, 4)
		assert.Equal(t, "Shopping", sorted[0].Category)
		assert.Equal(t, "Food & Dining", sorted[1].Category)
		assert.Equal(t, "Transportation", sorted[2].Category)
		assert.Equal(t, "Entertainment", sorted[3].Category)
	})

	t.Run("input slice is untouched", func(t *testing.T) {
		assert.Equal(t, "Transportation", totals[0].Category)
	})
}
