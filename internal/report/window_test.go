package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finote/internal/model"
)

func txnOn(id string, date time.Time, amount float64) model.Transaction {
	return model.Transaction{
		ID:       id,
		Type:     model.TypeExpense,
		Amount:   amount,
		Category: "Others",
		Date:     date,
	}
}

func TestFilter(t *testing.T) {
	now := time.Date(2026, time.August, 15, 13, 45, 0, 0, time.UTC)

	transactions := []model.Transaction{
		txnOn("a", time.Date(2026, time.August, 14, 9, 0, 0, 0, time.UTC), 10),
		txnOn("b", time.Date(2026, time.August, 1, 23, 59, 0, 0, time.UTC), 20),
		txnOn("c", time.Date(2026, time.July, 31, 8, 0, 0, 0, time.UTC), 30),
		txnOn("d", time.Date(2026, time.July, 16, 12, 0, 0, 0, time.UTC), 40),
		txnOn("e", time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC), 50),
		txnOn("f", time.Date(2025, time.December, 31, 12, 0, 0, 0, time.UTC), 60),
	}

	ids := func(txns []model.Transaction) []string {
		out := make([]string, 0, len(txns))
		for _, txn := range txns {
			out = append(out, txn.ID)
		}
		return out
	}

	t.Run("last 30 days", func(t *testing.T) {
		got := Filter(transactions, Last30Days, now)
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(got))
	})

	t.Run("30 day boundary is inclusive", func(t *testing.T) {
		boundary := []model.Transaction{
			txnOn("edge", time.Date(2026, time.July, 16, 0, 0, 0, 0, time.UTC), 1),
			txnOn("out", time.Date(2026, time.July, 15, 23, 59, 59, 0, time.UTC), 1),
		}
		got := Filter(boundary, Last30Days, now)
		assert.Equal(t, []string{"edge"}, ids(got))
	})

	t.Run("current month", func(t *testing.T) {
		got := Filter(transactions, CurrentMonth, now)
		assert.Equal(t, []string{"a", "b"}, ids(got))
	})

	t.Run("current year", func(t *testing.T) {
		got := Filter(transactions, CurrentYear, now)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(got))
	})

	t.Run("all time returns input unchanged", func(t *testing.T) {
		got := Filter(transactions, AllTime, now)
		assert.Equal(t, transactions, got)
	})

	t.Run("unknown window returns input unchanged", func(t *testing.T) {
		got := Filter(transactions, Window("fortnight"), now)
		assert.Equal(t, transactions, got)
	})

	t.Run("empty input", func(t *testing.T) {
		got := Filter(nil, Last30Days, now)
		require.Empty(t, got)
	})
}

func TestInMonth(t *testing.T) {
	ref := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, InMonth(txnOn("a", time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), 1), ref))
	assert.True(t, InMonth(txnOn("b", time.Date(2026, time.August, 31, 23, 0, 0, 0, time.UTC), 1), ref))
	assert.False(t, InMonth(txnOn("c", time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC), 1), ref))
	assert.False(t, InMonth(txnOn("d", time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC), 1), ref))
}
