package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"finote/internal/cli"
	"finote/internal/insight"
	"finote/internal/report"
)

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show spending insights and forecasts",
		Long:  `Month-over-month trend, daily average, month-end projection, category breakdown, monthly history, and anomaly flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, income := splitLedger(loadTransactions(ctx, store))
			in := insight.Compute(expenses, now)
			symbol := currencySymbol(ctx, store)

			fmt.Println(cli.TitleStyle.Render("Insights for " + now.Format("January 2006")))

			trendStyle := cli.SuccessStyle
			sign := ""
			if in.PercentChange > 0 {
				trendStyle = cli.ErrorStyle
				sign = "+"
			}
			fmt.Printf("%s %s%.2f across %d transactions (%s vs last month)\n",
				cli.BoldStyle.Render("This month:"), symbol, in.ThisMonthTotal, in.TransactionCount,
				trendStyle.Render(fmt.Sprintf("%s%.1f%%", sign, in.PercentChange)))
			fmt.Printf("%s %s%.2f/day   %s %s%.2f by month end\n",
				cli.BoldStyle.Render("Daily average:"), symbol, in.AvgDailySpend,
				cli.BoldStyle.Render("Projected:"), symbol, in.ProjectedMonthEnd)
			fmt.Printf("%s %s%.2f\n",
				cli.BoldStyle.Render("Predicted next month:"), symbol, insight.PredictNextMonth(expenses, now))
			if in.TopCategory != "" {
				fmt.Printf("%s %s (%s%.2f)\n",
					cli.BoldStyle.Render("Top category:"), in.TopCategory, symbol, in.TopCategoryAmount)
			}

			if total := report.Total(income); total > 0 {
				net := total - report.Total(expenses)
				netStyle := cli.SuccessStyle
				if net < 0 {
					netStyle = cli.ErrorStyle
				}
				fmt.Printf("%s %s%.2f   %s %s\n",
					cli.BoldStyle.Render("Income (all time):"), symbol, total,
					cli.BoldStyle.Render("Net balance:"), netStyle.Render(fmt.Sprintf("%s%.2f", symbol, net)))
			}

			breakdown := report.SortedDescending(report.TotalsByCategory(report.Filter(expenses, report.CurrentMonth, now)))
			if len(breakdown) > 0 {
				fmt.Println(cli.BoldStyle.Render("\nSpending by category:"))
				for _, ct := range breakdown {
					fmt.Printf("  %-20s %s%.2f\n", ct.Category, symbol, ct.Amount)
				}
			}

			trend := report.MonthlyTrend(expenses)
			if len(trend) > 1 {
				fmt.Println(cli.BoldStyle.Render("\nMonthly trend:"))
				for _, mt := range trend {
					fmt.Printf("  %s  %s%.2f\n", mt.Month, symbol, mt.Amount)
				}
			}

			if len(in.Anomalies) > 0 {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf(
					"\n⚠ %d unusually large transaction(s); largest %s%.2f", len(in.Anomalies), symbol, in.MaxAnomaly)))
			}

			if patterns := insight.DetectRecurring(expenses); len(patterns) > 0 {
				fmt.Println(cli.BoldStyle.Render("\nRecurring patterns:"))
				for _, p := range patterns {
					fmt.Printf("  %s (%d times)\n", p.Description, p.Count)
				}
			}

			return nil
		},
	}
}
