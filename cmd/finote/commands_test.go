package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finote/internal/model"
	"finote/internal/storage"
)

// useTempStore points the data.path config at a throwaway database.
func useTempStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "finote.db")
	viper.Set("data.path", path)
	t.Cleanup(viper.Reset)
	return path
}

func seedTransactions(t *testing.T, path string, transactions []model.Transaction) {
	t.Helper()
	store, err := storage.NewStore(path)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.SaveTransactions(context.Background(), transactions))
}

func storedTransactions(t *testing.T, path string) []model.Transaction {
	t.Helper()
	store, err := storage.NewStore(path)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Migrate(context.Background()))
	transactions, err := store.Transactions(context.Background())
	require.NoError(t, err)
	return transactions
}

func TestAddCategoryValidation(t *testing.T) {
	t.Run("unknown category rejected", func(t *testing.T) {
		useTempStore(t)

		cmd := addCmd()
		cmd.SilenceUsage = true
		cmd.SetArgs([]string{"12.50", "lunch", "--category", "Fod"})

		err := cmd.ExecuteContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown category "Fod"`)
	})

	t.Run("unknown income source rejected", func(t *testing.T) {
		useTempStore(t)

		cmd := addCmd()
		cmd.SilenceUsage = true
		cmd.SetArgs([]string{"2500", "August pay", "--income", "--category", "Slary"})

		err := cmd.ExecuteContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown income source "Slary"`)
	})

	t.Run("known category stored verbatim", func(t *testing.T) {
		path := useTempStore(t)

		cmd := addCmd()
		cmd.SilenceUsage = true
		cmd.SetArgs([]string{"12.50", "lunch", "--category", "Shopping"})

		require.NoError(t, cmd.ExecuteContext(context.Background()))

		stored := storedTransactions(t, path)
		require.Len(t, stored, 1)
		assert.Equal(t, "Shopping", stored[0].Category)
	})
}

func TestEditValidation(t *testing.T) {
	day := time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC)
	seed := []model.Transaction{{
		ID:          "t1",
		Type:        model.TypeExpense,
		Amount:      10,
		Description: "coffee",
		Category:    "Food & Dining",
		Date:        day,
	}}

	t.Run("whitespace-only description rejected", func(t *testing.T) {
		path := useTempStore(t)
		seedTransactions(t, path, seed)

		cmd := editCmd()
		cmd.SilenceUsage = true
		cmd.SetArgs([]string{"t1", "--description", "   "})

		err := cmd.ExecuteContext(context.Background())
		assert.ErrorIs(t, err, model.ErrEmptyDescription)

		stored := storedTransactions(t, path)
		require.Len(t, stored, 1)
		assert.Equal(t, "coffee", stored[0].Description)
	})

	t.Run("description stored trimmed", func(t *testing.T) {
		path := useTempStore(t)
		seedTransactions(t, path, seed)

		cmd := editCmd()
		cmd.SilenceUsage = true
		cmd.SetArgs([]string{"t1", "--description", "  morning coffee  "})

		require.NoError(t, cmd.ExecuteContext(context.Background()))

		stored := storedTransactions(t, path)
		require.Len(t, stored, 1)
		assert.Equal(t, "morning coffee", stored[0].Description)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		path := useTempStore(t)
		seedTransactions(t, path, seed)

		cmd := editCmd()
		cmd.SilenceUsage = true
		cmd.SetArgs([]string{"t1", "--category", "Fod"})

		err := cmd.ExecuteContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown category "Fod"`)

		stored := storedTransactions(t, path)
		require.Len(t, stored, 1)
		assert.Equal(t, "Food & Dining", stored[0].Category)
	})
}

func TestBudgetSetValidation(t *testing.T) {
	useTempStore(t)

	cmd := budgetCmd()
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"set", "Fod", "100"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "Fod"`)
}
