package classify

// Rule maps a lowercase keyword to a category. Rules are evaluated in order
// and the first keyword contained in the description wins, so the order of
// this table is significant.
type Rule struct {
	Keyword  string
	Category string
}

// DefaultRules is the built-in keyword table. Keywords are matched as
// substrings of the lowercased description.
var DefaultRules = []Rule{
	// Food & Dining
	{"restaurant", "Food & Dining"},
	{"cafe", "Food & Dining"},
	{"lunch", "Food & Dining"},
	{"dinner", "Food & Dining"},
	{"breakfast", "Food & Dining"},
	{"food", "Food & Dining"},
	{"pizza", "Food & Dining"},
	{"burger", "Food & Dining"},
	{"starbucks", "Food & Dining"},
	{"mcdonald", "Food & Dining"},
	{"subway", "Food & Dining"},
	{"domino", "Food & Dining"},
	{"kfc", "Food & Dining"},
	{"taco", "Food & Dining"},
	{"coffee", "Food & Dining"},
	{"bar", "Food & Dining"},
	{"pub", "Food & Dining"},
	{"bakery", "Food & Dining"},
	{"grocery", "Food & Dining"},
	{"supermarket", "Food & Dining"},

	// Transportation
	{"uber", "Transportation"},
	{"lyft", "Transportation"},
	{"taxi", "Transportation"},
	{"gas", "Transportation"},
	{"fuel", "Transportation"},
	{"parking", "Transportation"},
	{"bus", "Transportation"},
	{"train", "Transportation"},
	{"metro", "Transportation"},
	{"flight", "Transportation"},
	{"airline", "Transportation"},
	{"vehicle", "Transportation"},
	{"toll", "Transportation"},

	// Shopping
	{"amazon", "Shopping"},
	{"mall", "Shopping"},
	{"store", "Shopping"},
	{"clothes", "Shopping"},
	{"shoes", "Shopping"},
	{"electronics", "Shopping"},
	{"target", "Shopping"},
	{"walmart", "Shopping"},
	{"clothing", "Shopping"},
	{"fashion", "Shopping"},
	{"retail", "Shopping"},
	{"shop", "Shopping"},

	// Entertainment
	{"movie", "Entertainment"},
	{"cinema", "Entertainment"},
	{"netflix", "Entertainment"},
	{"spotify", "Entertainment"},
	{"concert", "Entertainment"},
	{"game", "Entertainment"},
	{"theater", "Entertainment"},
	{"streaming", "Entertainment"},
	{"subscription", "Entertainment"},
	{"music", "Entertainment"},
	{"hulu", "Entertainment"},
	{"disney", "Entertainment"},

	// Bills & Utilities
	{"electric", "Bills & Utilities"},
	{"water", "Bills & Utilities"},
	{"internet", "Bills & Utilities"},
	{"phone", "Bills & Utilities"},
	{"rent", "Bills & Utilities"},
	{"insurance", "Bills & Utilities"},
	{"utility", "Bills & Utilities"},
	{"bill", "Bills & Utilities"},
	{"mortgage", "Bills & Utilities"},
	{"loan", "Bills & Utilities"},
	{"credit card", "Bills & Utilities"},

	// Healthcare
	{"doctor", "Healthcare"},
	{"hospital", "Healthcare"},
	{"pharmacy", "Healthcare"},
	{"medicine", "Healthcare"},
	{"dental", "Healthcare"},
	{"medical", "Healthcare"},
	{"health", "Healthcare"},
	{"clinic", "Healthcare"},
	{"prescription", "Healthcare"},
	{"cvs", "Healthcare"},
	{"walgreens", "Healthcare"},

	// Education
	{"book", "Education"},
	{"course", "Education"},
	{"tuition", "Education"},
	{"school", "Education"},
	{"university", "Education"},
	{"college", "Education"},
	{"education", "Education"},
	{"learning", "Education"},
	{"training", "Education"},
	{"class", "Education"},
	{"seminar", "Education"},
}
