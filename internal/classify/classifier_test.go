package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var knownCategories = []string{
	"Food & Dining", "Transportation", "Shopping", "Entertainment",
	"Bills & Utilities", "Healthcare", "Education", "Others",
}

func TestClassifyKeywords(t *testing.T) {
	classifier := NewDefault()

	tests := []struct {
		name        string
		description string
		amount      float64
		want        string
	}{
		{"simple keyword", "pizza", 12, "Food & Dining"},
		{"keyword inside text", "Lunch at cafe", 45.50, "Food & Dining"},
		{"uppercase keyword", "UBER RIDE HOME", 30, "Transportation"},
		{"mixed case", "NetFlix subscription", 15.99, "Entertainment"},
		{"shopping keyword", "amazon order", 89, "Shopping"},
		{"bills keyword", "monthly rent", 1200, "Bills & Utilities"},
		{"healthcare keyword", "pharmacy run", 22, "Healthcare"},
		{"education keyword", "online course", 199, "Education"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.description, tt.amount, knownCategories)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	classifier := NewDefault()

	// "subway" is registered for Food & Dining ahead of any transport rule,
	// so a matching description must resolve to food deterministically.
	got := classifier.Classify("subway sandwich", 9, knownCategories)
	assert.Equal(t, "Food & Dining", got)
}

func TestClassifyFoodThresholdFallback(t *testing.T) {
	classifier := NewDefault()

	t.Run("small unmatched amount falls back to food", func(t *testing.T) {
		got := classifier.Classify("misc stuff", 12.50, knownCategories)
		assert.Equal(t, "Food & Dining", got)
	})

	t.Run("threshold boundary is inclusive", func(t *testing.T) {
		got := classifier.Classify("misc stuff", FoodThresholdAmount, knownCategories)
		assert.Equal(t, "Food & Dining", got)
	})

	t.Run("large unmatched amount falls back to Others", func(t *testing.T) {
		got := classifier.Classify("misc stuff", 250, knownCategories)
		assert.Equal(t, "Others", got)
	})

	t.Run("no food category available", func(t *testing.T) {
		got := classifier.Classify("misc stuff", 5, []string{"Travel", "Others"})
		assert.Equal(t, "Others", got)
	})
}

func TestClassifyFallbacks(t *testing.T) {
	classifier := NewDefault()

	t.Run("empty description returns Others", func(t *testing.T) {
		assert.Equal(t, "Others", classifier.Classify("", 50, knownCategories))
	})

	t.Run("whitespace description returns Others", func(t *testing.T) {
		assert.Equal(t, "Others", classifier.Classify("   ", 50, knownCategories))
	})

	t.Run("Other accepted when Others missing", func(t *testing.T) {
		assert.Equal(t, "Other", classifier.Classify("", 50, []string{"Travel", "Other"}))
	})

	t.Run("first known category when no fallback label exists", func(t *testing.T) {
		assert.Equal(t, "Travel", classifier.Classify("", 50, []string{"Travel", "Bills"}))
	})
}

func TestClassifyCustomRules(t *testing.T) {
	classifier := New([]Rule{
		{"vet", "Pets"},
		{"petrol", "Travel"},
	})

	assert.Equal(t, "Pets", classifier.Classify("vet appointment", 80, []string{"Pets", "Travel", "Others"}))
	assert.Equal(t, "Travel", classifier.Classify("petrol refill", 60, []string{"Pets", "Travel", "Others"}))
}
