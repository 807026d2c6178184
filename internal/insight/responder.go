package insight

import (
	"fmt"
	"strings"
)

// Responder answers free-text questions with canned sentences built from the
// computed insights. Dispatch is an ordered list of keyword groups evaluated
// first-match-wins; it is a deterministic lookup table, not a learning system.
type Responder struct {
	symbol   string
	insights Insights
	rules    []responseRule
}

type responseRule struct {
	respond  func() string
	keywords []string
}

// NewResponder builds a responder for one insights snapshot. symbol is the
// currency display symbol used in formatted amounts.
func NewResponder(in Insights, symbol string) *Responder {
	r := &Responder{symbol: symbol, insights: in}
	r.rules = []responseRule{
		{keywords: []string{"summary", "how much", "spent"}, respond: r.summary},
		{keywords: []string{"most", "top", "category"}, respond: r.topCategory},
		{keywords: []string{"predict", "forecast", "will i"}, respond: r.forecast},
		{keywords: []string{"recommend", "advice", "should"}, respond: r.recommend},
		{keywords: []string{"save", "saving"}, respond: r.savings},
		{keywords: []string{"unusual", "anomal", "weird"}, respond: r.anomalies},
	}
	return r
}

// Respond returns the canned answer for the first keyword group the query
// matches, or the help text when none match.
func (r *Responder) Respond(query string) string {
	lower := strings.ToLower(query)
	for _, rule := range r.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.respond()
			}
		}
	}
	return r.help()
}

func (r *Responder) summary() string {
	direction := fmt.Sprintf("up %.1f%%", r.insights.PercentChange)
	if r.insights.PercentChange <= 0 {
		direction = fmt.Sprintf("down %.1f%%", -r.insights.PercentChange)
	}
	return fmt.Sprintf(
		"This month, you've spent %s%.2f across %d transactions. Your spending is %s compared to last month.",
		r.symbol, r.insights.ThisMonthTotal, r.insights.TransactionCount, direction)
}

func (r *Responder) topCategory() string {
	if r.insights.TopCategory == "" {
		return "You don't have any expenses recorded yet."
	}
	return fmt.Sprintf("Your highest spending category is %s with %s%.2f spent this month.",
		r.insights.TopCategory, r.symbol, r.insights.TopCategoryAmount)
}

func (r *Responder) forecast() string {
	return fmt.Sprintf(
		"Based on your current spending pattern (%s%.2f/day), you're projected to spend %s%.2f by month end.",
		r.symbol, r.insights.AvgDailySpend, r.symbol, r.insights.ProjectedMonthEnd)
}

func (r *Responder) recommend() string {
	if r.insights.PercentChange > 20 {
		top := r.insights.TopCategory
		if top == "" {
			top = "top spending"
		}
		return fmt.Sprintf(
			"Your spending is up %.1f%% from last month. Consider reviewing your %s category to identify areas where you can cut back.",
			r.insights.PercentChange, top)
	}
	return "You're doing great! Your spending is under control. Consider setting aside some savings for your financial goals."
}

func (r *Responder) savings() string {
	potential := r.insights.ThisMonthTotal * 0.1
	return fmt.Sprintf(
		"Try the 50/30/20 rule: 50%% needs, 30%% wants, 20%% savings. If you could reduce spending by just 10%%, you'd save %s%.2f this month!",
		r.symbol, potential)
}

func (r *Responder) anomalies() string {
	if len(r.insights.Anomalies) == 0 {
		return "I haven't detected any unusual spending patterns. Everything looks normal!"
	}
	return fmt.Sprintf(
		"I found %d transaction(s) significantly higher than your average. The largest was %s%.2f. Review these to ensure they're expected.",
		len(r.insights.Anomalies), r.symbol, r.insights.MaxAnomaly)
}

func (r *Responder) help() string {
	return "I can help you with:\n" +
		"• Spending summaries\n" +
		"• Category analysis\n" +
		"• Predictions\n" +
		"• Savings recommendations\n" +
		"• Anomaly detection\n\n" +
		"Try asking: 'How much have I spent?' or 'What's my top category?'"
}
