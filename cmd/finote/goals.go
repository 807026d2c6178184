package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"finote/internal/cli"
	"finote/internal/goal"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
		Long:  `Create savings goals, update their progress, and review how close each one is to its target.`,
	}

	cmd.AddCommand(goalsListCmd())
	cmd.AddCommand(goalsAddCmd())
	cmd.AddCommand(goalsProgressCmd())
	cmd.AddCommand(goalsDeleteCmd())

	return cmd
}

func goalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			goals, err := store.Goals(ctx)
			if err != nil {
				return fmt.Errorf("failed to load goals: %w", err)
			}
			if len(goals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No savings goals yet. Create your first goal with 'finote goals add'!"))
				return nil
			}

			symbol := currencySymbol(ctx, store)
			fmt.Println(cli.TitleStyle.Render("Savings goals"))
			for _, g := range goals {
				percent := goal.PercentComplete(g)
				line := fmt.Sprintf("%s  %s%.2f / %s%.2f  (%.1f%%)",
					cli.BoldStyle.Render(g.Name), symbol, g.Current, symbol, g.Target, percent)
				if days, ok := goal.DaysRemaining(g, now); ok {
					if days > 0 {
						line += cli.SubtleStyle.Render(fmt.Sprintf("  • %d days left", days))
					} else {
						line += cli.WarningStyle.Render("  • Deadline passed")
					}
				}
				fmt.Println("  " + line)
				fmt.Println(cli.SubtleStyle.Render("    id: " + g.ID))
				if goal.Achieved(g) {
					fmt.Println(cli.SuccessStyle.Render("    🎉 Goal Achieved! Congratulations!"))
				}
			}
			return nil
		},
	}
}

func goalsAddCmd() *cobra.Command {
	var deadlineFlag string

	cmd := &cobra.Command{
		Use:   "add <name> <target>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()

			target, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", args[1], err)
			}

			var deadline *time.Time
			if deadlineFlag != "" {
				parsed, err := parseDate(deadlineFlag, now)
				if err != nil {
					return err
				}
				deadline = &parsed
			}

			g, err := goal.Create(args[0], target, deadline, now)
			if err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			goals, err := store.Goals(ctx)
			if err != nil {
				return fmt.Errorf("failed to load goals: %w", err)
			}
			goals = append(goals, g)
			saveOrLog("goals", func() error { return store.SaveGoals(ctx, goals) })

			symbol := currencySymbol(ctx, store)
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Created goal %q (target %s%.2f, id %s)", g.Name, symbol, g.Target, g.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&deadlineFlag, "deadline", "", "optional deadline (YYYY-MM-DD)")
	return cmd
}

func goalsProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <current>",
		Short: "Update a goal's saved amount",
		Long:  `Replace the goal's current amount. The value is not clamped; exceeding the target counts as over-achievement.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			current, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			goals, err := store.Goals(ctx)
			if err != nil {
				return fmt.Errorf("failed to load goals: %w", err)
			}

			goals, err = goal.UpdateProgress(goals, args[0], current)
			if err != nil {
				return err
			}
			saveOrLog("goals", func() error { return store.SaveGoals(ctx, goals) })

			for _, g := range goals {
				if g.ID != args[0] {
					continue
				}
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %s is now %.1f%% complete", g.Name, goal.PercentComplete(g))))
				if goal.Achieved(g) {
					fmt.Println(cli.SuccessStyle.Render("🎉 Goal Achieved! Congratulations!"))
				}
			}
			return nil
		},
	}
}

func goalsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			goals, err := store.Goals(ctx)
			if err != nil {
				return fmt.Errorf("failed to load goals: %w", err)
			}

			reader := cli.NewReader(cmd.InOrStdin())
			confirmed, err := cli.Confirm(ctx, reader, cmd.OutOrStdout(), "Are you sure you want to delete this goal?")
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println(cli.SubtleStyle.Render("Canceled."))
				return nil
			}

			goals, err = goal.Delete(goals, args[0])
			if err != nil {
				return err
			}
			saveOrLog("goals", func() error { return store.SaveGoals(ctx, goals) })

			fmt.Println(cli.SuccessStyle.Render("✓ Goal deleted"))
			return nil
		},
	}
}
