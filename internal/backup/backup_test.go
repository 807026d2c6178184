package backup

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finote/internal/model"
)

func TestBackupRoundTrip(t *testing.T) {
	deadline := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	original := Snapshot{
		ExportDate: time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC),
		Budgets:    model.Budgets{"Food & Dining": 500, "Shopping": 200},
		Expenses: []model.Transaction{
			{
				ID:          "1",
				Type:        model.TypeExpense,
				Amount:      45.50,
				Description: "Lunch at cafe",
				Category:    "Food & Dining",
				Date:        time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC),
				Tags:        []string{"work"},
				Mood:        model.MoodHappy,
			},
		},
		Income: []model.Transaction{
			{
				ID:       "2",
				Type:     model.TypeIncome,
				Amount:   2500,
				Category: "Salary",
				Date:     time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		Goals: []model.Goal{
			{ID: "g1", Name: "Emergency Fund", Target: 1000, Current: 250, Deadline: &deadline},
		},
		Settings: model.Settings{Theme: "dark", Currency: "EUR", Notifications: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, original))

	restored, err := Parse(&buf)
	require.NoError(t, err)

	assert.Equal(t, original.Budgets, restored.Budgets)
	assert.Equal(t, original.Settings, restored.Settings)
	require.Len(t, restored.Expenses, 1)
	assert.Equal(t, original.Expenses[0].Description, restored.Expenses[0].Description)
	assert.Equal(t, original.Expenses[0].Amount, restored.Expenses[0].Amount)
	assert.Equal(t, original.Expenses[0].Tags, restored.Expenses[0].Tags)
	require.Len(t, restored.Income, 1)
	assert.Equal(t, "Salary", restored.Income[0].Category)
	require.Len(t, restored.Goals, 1)
	require.NotNil(t, restored.Goals[0].Deadline)
	assert.True(t, deadline.Equal(*restored.Goals[0].Deadline))
	assert.True(t, original.ExportDate.Equal(restored.ExportDate))
}

func TestExportShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, Snapshot{
		ExportDate: time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC),
		Budgets:    model.Budgets{},
		Settings:   model.DefaultSettings(),
	}))

	out := buf.String()
	assert.Contains(t, out, `"exportDate"`)
	assert.Contains(t, out, `"budgets"`)
	assert.Contains(t, out, `"expenses"`)
	assert.Contains(t, out, `"goals"`)
	assert.Contains(t, out, `"settings"`)

	t.Run("empty income is omitted", func(t *testing.T) {
		assert.NotContains(t, out, `"income"`)
	})

	t.Run("output is indented", func(t *testing.T) {
		assert.Contains(t, out, "\n  ")
	})
}

func TestParseInvalid(t *testing.T) {
	t.Run("malformed JSON", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`{"budgets": `))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid backup format")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""))
		assert.Error(t, err)
	})
}
