package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"finote/internal/budget"
	"finote/internal/cli"
	"finote/internal/model"
	"finote/internal/report"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
		Long:  `Set per-category monthly limits and review spending against them. Budgets are always evaluated against the current calendar month.`,
	}

	cmd.AddCommand(budgetShowCmd())
	cmd.AddCommand(budgetSetCmd())

	return cmd
}

func budgetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show budget status for the current month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := store.Budgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to load budgets: %w", err)
			}

			expenses, _ := splitLedger(loadTransactions(ctx, store))
			thisMonth := report.Filter(expenses, report.CurrentMonth, now)
			summary := budget.Evaluate(report.TotalsByCategory(thisMonth), budgets)

			symbol := currencySymbol(ctx, store)

			fmt.Println(cli.TitleStyle.Render("Budget for " + now.Format("January 2006")))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Spent"),
				cli.HeaderStyle.Render("Budget"),
				cli.HeaderStyle.Render("Remaining"),
				cli.HeaderStyle.Render("Status"))
			for _, status := range summary.Categories {
				fmt.Fprintf(w, "%s\t%s%.2f\t%s%.2f\t%s%.2f\t%s\n",
					status.Category,
					symbol, status.Spent,
					symbol, status.Budget,
					symbol, status.Remaining,
					cli.TierStyle(status.Percent).Render(tierLabel(status)))
			}
			w.Flush()

			fmt.Printf("\n%s %s%.2f   %s %s%.2f   %s %s%.2f\n",
				cli.BoldStyle.Render("Total budget:"), symbol, summary.TotalBudget,
				cli.BoldStyle.Render("Spent:"), symbol, summary.TotalSpent,
				cli.BoldStyle.Render("Remaining:"), symbol, summary.TotalRemaining)
			fmt.Println(trackerMessage(summary.Tracker))

			for _, alert := range summary.Alerts {
				fmt.Println(cli.ErrorStyle.Render(fmt.Sprintf(
					"⚠ %s budget exceeded by %s%.2f!", alert.Category, symbol, alert.OverBy)))
			}

			return nil
		},
	}
}

func budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Set a category's monthly limit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			limit, err := strconv.ParseFloat(args[1], 64)
			if err != nil || limit < 0 {
				return fmt.Errorf("invalid limit %q: must be a non-negative number", args[1])
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.Categories(ctx)
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}
			if !model.HasLabel(categories, args[0]) {
				return fmt.Errorf("unknown category %q (see 'finote categories list')", args[0])
			}

			budgets, err := store.Budgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to load budgets: %w", err)
			}

			budgets[args[0]] = limit
			saveOrLog("budgets", func() error { return store.SaveBudgets(ctx, budgets) })

			symbol := currencySymbol(ctx, store)
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %s budget set to %s%.2f/month", args[0], symbol, limit)))
			return nil
		},
	}
}

func tierLabel(status budget.CategoryStatus) string {
	switch status.Tier {
	case budget.TierOverBudget:
		return "Over budget!"
	case budget.TierWarning:
		return fmt.Sprintf("Warning: %.0f%% remaining", 100-status.Percent)
	default:
		return "On track"
	}
}

func trackerMessage(tier budget.TrackerTier) string {
	switch tier {
	case budget.TrackerPerfectZero:
		return cli.InfoStyle.Render("💎 Perfect User: Zero Spend!")
	case budget.TrackerBudgetBreaker:
		return cli.ErrorStyle.Render("🚨 Budget Breaker: You Crossed The Limit!")
	case budget.TrackerSaver:
		return cli.SuccessStyle.Render("✅ Saver: Great Job Staying Under Budget!")
	case budget.TrackerWatcher:
		return cli.WarningStyle.Render("🔔 Watcher: Close to the limit.")
	default:
		return cli.SubtleStyle.Render("Set a budget to track your spending.")
	}
}
