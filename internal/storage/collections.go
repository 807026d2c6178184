package storage

import (
	"context"

	"finote/internal/model"
)

// Transactions returns the stored transaction list, newest first as saved.
// A missing key yields an empty list.
func (s *Store) Transactions(ctx context.Context) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if _, err := s.load(ctx, keyTransactions, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// SaveTransactions replaces the stored transaction list.
func (s *Store) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	return s.save(ctx, keyTransactions, transactions)
}

// Budgets returns the stored budget map, or the seeded defaults when none
// have been saved yet.
func (s *Store) Budgets(ctx context.Context) (model.Budgets, error) {
	var budgets model.Budgets
	found, err := s.load(ctx, keyBudgets, &budgets)
	if err != nil {
		return nil, err
	}
	if !found {
		return model.DefaultBudgets(), nil
	}
	return budgets, nil
}

// SaveBudgets replaces the stored budget map.
func (s *Store) SaveBudgets(ctx context.Context, budgets model.Budgets) error {
	return s.save(ctx, keyBudgets, budgets)
}

// Categories returns the base expense category labels unioned with any
// user-added ones, duplicates collapsed. Only the custom labels are stored.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	var custom []string
	if _, err := s.load(ctx, keyCategories, &custom); err != nil {
		return nil, err
	}
	return model.MergeLabels(model.CategoryNames(model.BaseCategories), custom), nil
}

// AddCategory persists a user-added category label. Labels already in the
// merged list are ignored; categories are never deleted once added.
func (s *Store) AddCategory(ctx context.Context, name string) error {
	return s.addCustomLabel(ctx, keyCategories, model.CategoryNames(model.BaseCategories), name)
}

// IncomeSources returns the base income source labels unioned with any
// user-added ones.
func (s *Store) IncomeSources(ctx context.Context) ([]string, error) {
	var custom []string
	if _, err := s.load(ctx, keyIncomeSources, &custom); err != nil {
		return nil, err
	}
	return model.MergeLabels(model.BaseIncomeSources, custom), nil
}

// AddIncomeSource persists a user-added income source label.
func (s *Store) AddIncomeSource(ctx context.Context, name string) error {
	return s.addCustomLabel(ctx, keyIncomeSources, model.BaseIncomeSources, name)
}

func (s *Store) addCustomLabel(ctx context.Context, key string, base []string, name string) error {
	var custom []string
	if _, err := s.load(ctx, key, &custom); err != nil {
		return err
	}
	for _, label := range model.MergeLabels(base, custom) {
		if label == name {
			return nil
		}
	}
	return s.save(ctx, key, append(custom, name))
}

// Goals returns the stored goals. A missing key yields an empty list.
func (s *Store) Goals(ctx context.Context) ([]model.Goal, error) {
	var goals []model.Goal
	if _, err := s.load(ctx, keyGoals, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// SaveGoals replaces the stored goal list.
func (s *Store) SaveGoals(ctx context.Context, goals []model.Goal) error {
	return s.save(ctx, keyGoals, goals)
}

// Settings returns the stored settings, or defaults when none are saved.
func (s *Store) Settings(ctx context.Context) (model.Settings, error) {
	settings := model.DefaultSettings()
	if _, err := s.load(ctx, keySettings, &settings); err != nil {
		return model.DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettings replaces the stored settings.
func (s *Store) SaveSettings(ctx context.Context, settings model.Settings) error {
	return s.save(ctx, keySettings, settings)
}

// GameState returns the stored gamification state (streak and badges).
func (s *Store) GameState(ctx context.Context) (model.GameState, error) {
	var state model.GameState
	if _, err := s.load(ctx, keyGamification, &state); err != nil {
		return model.GameState{}, err
	}
	return state, nil
}

// SaveGameState replaces the stored gamification state.
func (s *Store) SaveGameState(ctx context.Context, state model.GameState) error {
	return s.save(ctx, keyGamification, state)
}
