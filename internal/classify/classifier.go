// Package classify assigns categories to free-text transaction descriptions
// using an ordered keyword rule table.
package classify

import "strings"

// FoodThresholdAmount is the small-purchase cutoff: unmatched descriptions at
// or below it fall back to the food category when one exists.
const FoodThresholdAmount = 30

// fallbackCategories are tried, in order, when no keyword matches.
var fallbackCategories = []string{"Others", "Other"}

// foodCategories are the Food-equivalent labels recognized for the
// small-purchase fallback, tried in order.
var foodCategories = []string{"Food & Dining", "Food"}

// Classifier evaluates descriptions against an ordered rule table.
type Classifier struct {
	rules []Rule
}

// New creates a classifier with the given rules. Rule order is preserved;
// the first matching keyword wins.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// NewDefault creates a classifier with the built-in rule table.
func NewDefault() *Classifier {
	return New(DefaultRules)
}

// Classify maps a description and amount to one of the known categories.
// It never fails: unmatched descriptions fall back to the food category for
// small amounts, then to "Others"/"Other", then to the first known category.
func (c *Classifier) Classify(description string, amount float64, knownCategories []string) string {
	if strings.TrimSpace(description) == "" {
		return fallback(knownCategories)
	}

	normalized := strings.ToLower(description)
	for _, rule := range c.rules {
		if strings.Contains(normalized, rule.Keyword) {
			return rule.Category
		}
	}

	if amount <= FoodThresholdAmount {
		for _, food := range foodCategories {
			if contains(knownCategories, food) {
				return food
			}
		}
	}

	return fallback(knownCategories)
}

func fallback(knownCategories []string) string {
	for _, name := range fallbackCategories {
		if contains(knownCategories, name) {
			return name
		}
	}
	if len(knownCategories) > 0 {
		return knownCategories[0]
	}
	return fallbackCategories[0]
}

func contains(labels []string, name string) bool {
	for _, label := range labels {
		if label == name {
			return true
		}
	}
	return false
}
