package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finote/internal/model"
)

func TestMonthlyTrend(t *testing.T) {
	t.Run("groups by calendar month in chronological order", func(t *testing.T) {
		trend := MonthlyTrend([]model.Transaction{
			txnOn("a", time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC), 10),
			txnOn("b", time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC), 5),
			txnOn("c", time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC), 15.25),
			txnOn("d", time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), 7),
		})

		require.Len(t, trend, 3)
		assert.Equal(t, MonthTotal{Month: "2026-06", Amount: 7}, trend[0])
		assert.Equal(t, MonthTotal{Month: "2026-07", Amount: 5}, trend[1])
		assert.Equal(t, "2026-08", trend[2].Month)
		assert.InDelta(t, 25.25, trend[2].Amount, 0.001)
	})

	t.Run("caps at the six most recent months", func(t *testing.T) {
		var transactions []model.Transaction
		for month := 1; month <= 9; month++ {
			transactions = append(transactions, txnOn(
				fmt.Sprintf("m%d", month),
				time.Date(2026, time.Month(month), 10, 0, 0, 0, 0, time.UTC),
				float64(month),
			))
		}

		trend := MonthlyTrend(transactions)
		require.Len(t, trend, 6)
		assert.Equal(t, "2026-04", trend[0].Month)
		assert.Equal(t, "2026-09", trend[5].Month)
	})

	t.Run("spans year boundaries", func(t *testing.T) {
		trend := MonthlyTrend([]model.Transaction{
			txnOn("a", time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC), 1),
			txnOn("b", time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), 2),
		})

		require.Len(t, trend, 2)
		assert.Equal(t, "2025-12", trend[0].Month)
		assert.Equal(t, "2026-01", trend[1].Month)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, MonthlyTrend(nil))
	})
}
