package model

// Category is an expense label with optional display metadata.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// BaseCategories is the fixed expense category set that always exists.
// User-added labels are unioned with it on load and never removed.
var BaseCategories = []Category{
	{Name: "Food & Dining", Color: "#FF6384", Icon: "🍔"},
	{Name: "Transportation", Color: "#36A2EB", Icon: "🚗"},
	{Name: "Shopping", Color: "#FFCE56", Icon: "🛍️"},
	{Name: "Entertainment", Color: "#4BC0C0", Icon: "🎬"},
	{Name: "Bills & Utilities", Color: "#9966FF", Icon: "💡"},
	{Name: "Healthcare", Color: "#FF9F40", Icon: "🏥"},
	{Name: "Education", Color: "#FF6384", Icon: "📚"},
	{Name: "Others", Color: "#C9CBCF", Icon: "📦"},
}

// BaseIncomeSources is the fixed income source label set.
var BaseIncomeSources = []string{"Salary", "Freelance", "Investment", "Other Income"}

// CategoryNames returns the names of the given categories in order.
func CategoryNames(categories []Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}

// HasLabel reports whether name is one of the known labels.
func HasLabel(labels []string, name string) bool {
	for _, label := range labels {
		if label == name {
			return true
		}
	}
	return false
}

// MergeLabels unions base labels with user-added ones, collapsing duplicates
// while preserving first-seen order.
func MergeLabels(base, custom []string) []string {
	seen := make(map[string]bool, len(base)+len(custom))
	merged := make([]string, 0, len(base)+len(custom))
	for _, label := range base {
		if !seen[label] {
			seen[label] = true
			merged = append(merged, label)
		}
	}
	for _, label := range custom {
		if label != "" && !seen[label] {
			seen[label] = true
			merged = append(merged, label)
		}
	}
	return merged
}
