package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"finote/internal/classify"
	"finote/internal/cli"
	"finote/internal/gamify"
	"finote/internal/model"
)

func addCmd() *cobra.Command {
	var (
		categoryFlag  string
		dateFlag      string
		tagsFlag      []string
		moodFlag      string
		paymentFlag   string
		recurringFlag string
		incomeFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <description...>",
		Short: "Record an expense (or income with --income)",
		Long: `Record a transaction. Expenses without an explicit --category are
auto-categorized from the description; income goes to the source given with
--category (default: first known source).`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return model.ErrInvalidAmount
			}
			description := strings.Join(args[1:], " ")

			date, err := parseDate(dateFlag, now)
			if err != nil {
				return err
			}

			txType := model.TypeExpense
			if incomeFlag {
				txType = model.TypeIncome
			}

			txn, err := model.NewTransaction(txType, amount, description, date, now)
			if err != nil {
				return err
			}
			txn.Tags = tagsFlag
			if moodFlag != "" {
				txn.Mood = model.Mood(moodFlag)
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if incomeFlag {
				sources, err := store.IncomeSources(ctx)
				if err != nil {
					return fmt.Errorf("failed to load income sources: %w", err)
				}
				txn.Category = categoryFlag
				switch {
				case txn.Category == "":
					txn.Category = sources[0]
				case !model.HasLabel(sources, txn.Category):
					return fmt.Errorf("unknown income source %q (see 'finote sources list')", txn.Category)
				}
			} else {
				if paymentFlag != "" {
					txn.PaymentMethod = model.PaymentMethod(paymentFlag)
				}
				if recurringFlag != "" {
					txn.Recurring = true
					txn.RecurringInterval = model.RecurringInterval(recurringFlag)
				}

				categories, err := store.Categories(ctx)
				if err != nil {
					return fmt.Errorf("failed to load categories: %w", err)
				}
				txn.Category = categoryFlag
				switch {
				case txn.Category == "":
					txn.Category = classify.NewDefault().Classify(txn.Description, txn.Amount, categories)
				case !model.HasLabel(categories, txn.Category):
					return fmt.Errorf("unknown category %q (see 'finote categories list')", txn.Category)
				}
			}

			transactions := loadTransactions(ctx, store)
			transactions = append([]model.Transaction{txn}, transactions...)
			saveOrLog("transactions", func() error { return store.SaveTransactions(ctx, transactions) })

			// Gamification: streak bumps on every add, badges are one-way.
			state, err := store.GameState(ctx)
			if err != nil {
				return fmt.Errorf("failed to load gamification state: %w", err)
			}
			earned := gamify.RecordAdd(&state, len(transactions))
			saveOrLog("gamification state", func() error { return store.SaveGameState(ctx, state) })

			symbol := currencySymbol(ctx, store)
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Added %s %s%.2f: %s (%s)",
				txType, symbol, txn.Amount, txn.Description, txn.Category)))
			for _, badge := range earned {
				fmt.Println(cli.BadgeStyle.Render("🏆 Badge earned: " + badge))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "category (expense) or source (income); auto-detected when omitted")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringSliceVarP(&tagsFlag, "tag", "t", nil, "free-text tags (repeatable)")
	cmd.Flags().StringVar(&moodFlag, "mood", "", "mood (happy, neutral, sad)")
	cmd.Flags().StringVar(&paymentFlag, "payment", "", "payment method (Cash, Digital)")
	cmd.Flags().StringVar(&recurringFlag, "recurring", "", "recurring interval (daily, weekly, monthly, yearly)")
	cmd.Flags().BoolVar(&incomeFlag, "income", false, "record income instead of an expense")

	return cmd
}
