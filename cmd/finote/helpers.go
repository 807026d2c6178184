package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"finote/internal/config"
	"finote/internal/currency"
	"finote/internal/model"
	"finote/internal/storage"
)

// openStore opens the configured data file and runs migrations.
func openStore(ctx context.Context) (*storage.Store, error) {
	path := viper.GetString("data.path")
	if path == "" {
		path = config.DefaultDataPath()
	}
	path = config.ExpandPath(path)

	store, err := storage.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to migrate data file: %w", err)
	}

	return store, nil
}

// currencySymbol resolves the display symbol from settings. Load failures
// fall back to defaults per the persistence contract.
func currencySymbol(ctx context.Context, store *storage.Store) string {
	settings, err := store.Settings(ctx)
	if err != nil {
		slog.Error("failed to load settings, using defaults", "error", err)
	}
	return currency.Symbol(settings.Currency)
}

// saveOrLog runs a persistence write fire-and-forget: failures are logged and
// the operation proceeds with in-memory state. The worst case is losing the
// write on the next restart, which is accepted for a local-only tracker.
func saveOrLog(what string, save func() error) {
	if err := save(); err != nil {
		slog.Error("failed to save "+what, "error", err)
	}
}

// loadTransactions loads the stored ledger, falling back to an empty one on
// read failure.
func loadTransactions(ctx context.Context, store *storage.Store) []model.Transaction {
	transactions, err := store.Transactions(ctx)
	if err != nil {
		slog.Error("failed to load transactions, starting empty", "error", err)
		return nil
	}
	return transactions
}

// knownLabels returns the label list a transaction's category must belong to
// (expense categories for the expense ledger, income sources otherwise) and
// the noun to use in error messages.
func knownLabels(ctx context.Context, store *storage.Store, txn model.Transaction) ([]string, string, error) {
	if txn.IsExpense() {
		labels, err := store.Categories(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load categories: %w", err)
		}
		return labels, "category", nil
	}
	labels, err := store.IncomeSources(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load income sources: %w", err)
	}
	return labels, "income source", nil
}

// splitLedger partitions transactions into expenses and income.
func splitLedger(transactions []model.Transaction) (expenses, income []model.Transaction) {
	for _, txn := range transactions {
		if txn.IsExpense() {
			expenses = append(expenses, txn)
		} else {
			income = append(income, txn)
		}
	}
	return expenses, income
}

// parseDate parses a YYYY-MM-DD flag value, defaulting to now when empty.
func parseDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	date, err := time.ParseInLocation("2006-01-02", value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return date, nil
}
