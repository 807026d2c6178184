package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	now := time.Date(2026, time.August, 15, 10, 30, 0, 0, time.UTC)
	date := time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC)

	t.Run("valid expense", func(t *testing.T) {
		txn, err := NewTransaction(TypeExpense, 45.50, "Lunch at cafe", date, now)
		require.NoError(t, err)
		assert.Equal(t, TypeExpense, txn.Type)
		assert.Equal(t, 45.50, txn.Amount)
		assert.Equal(t, "Lunch at cafe", txn.Description)
		assert.Equal(t, date, txn.Date)
		assert.NotEmpty(t, txn.ID)
	})

	t.Run("amount rounds to cents", func(t *testing.T) {
		txn, err := NewTransaction(TypeExpense, 10.996, "coffee", date, now)
		require.NoError(t, err)
		assert.Equal(t, 11.0, txn.Amount)
	})

	t.Run("description is trimmed", func(t *testing.T) {
		txn, err := NewTransaction(TypeIncome, 1000, "  August salary  ", date, now)
		require.NoError(t, err)
		assert.Equal(t, "August salary", txn.Description)
	})

	t.Run("ids order by creation time", func(t *testing.T) {
		first, err := NewTransaction(TypeExpense, 1, "a", date, now)
		require.NoError(t, err)
		second, err := NewTransaction(TypeExpense, 1, "b", date, now.Add(time.Millisecond))
		require.NoError(t, err)
		assert.Less(t, first.ID, second.ID)
	})

	t.Run("invalid amounts rejected", func(t *testing.T) {
		for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := NewTransaction(TypeExpense, amount, "x", date, now)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		}
	})

	t.Run("blank description rejected", func(t *testing.T) {
		_, err := NewTransaction(TypeExpense, 10, "   ", date, now)
		assert.ErrorIs(t, err, ErrEmptyDescription)
	})
}

func TestCleanDescription(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got, err := CleanDescription("  morning coffee  ")
		require.NoError(t, err)
		assert.Equal(t, "morning coffee", got)
	})

	t.Run("whitespace-only rejected", func(t *testing.T) {
		_, err := CleanDescription("   ")
		assert.ErrorIs(t, err, ErrEmptyDescription)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := CleanDescription("")
		assert.ErrorIs(t, err, ErrEmptyDescription)
	})
}

func TestIsExpense(t *testing.T) {
	assert.True(t, Transaction{Type: TypeExpense}.IsExpense())
	assert.False(t, Transaction{Type: TypeIncome}.IsExpense())

	t.Run("untyped legacy records are expenses", func(t *testing.T) {
		assert.True(t, Transaction{}.IsExpense())
	})
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, 10.57, RoundAmount(10.567))
	assert.Equal(t, 10.56, RoundAmount(10.564))
	assert.Equal(t, 0.0, RoundAmount(0))
	assert.Equal(t, -3.33, RoundAmount(-3.334))
}
