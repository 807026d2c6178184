package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"finote/internal/insight"
	"finote/internal/tui"
)

func askCmd() *cobra.Command {
	var interactiveFlag bool

	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask the financial assistant a question",
		Long: `Answer free-text questions about your spending: summaries, top categories,
forecasts, recommendations, savings tips, and anomaly checks. Use
--interactive for a chat session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, _ := splitLedger(loadTransactions(ctx, store))
			responder := insight.NewResponder(insight.Compute(expenses, now), currencySymbol(ctx, store))

			if interactiveFlag {
				program := tea.NewProgram(tui.NewChat(responder), tea.WithContext(ctx))
				if _, err := program.Run(); err != nil {
					return fmt.Errorf("chat session failed: %w", err)
				}
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("provide a question or use --interactive")
			}
			fmt.Println(responder.Respond(strings.Join(args, " ")))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "start an interactive chat session")
	return cmd
}
