package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"finote/internal/cli"
)

func badgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Show streak and earned badges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			state, err := store.GameState(ctx)
			if err != nil {
				return fmt.Errorf("failed to load gamification state: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Achievements"))
			fmt.Printf("%s %d\n", cli.BoldStyle.Render("⚡ Streak:"), state.Streak)

			if len(state.Badges) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No badges yet. Keep tracking your expenses!"))
				return nil
			}
			for _, badge := range state.Badges {
				fmt.Println(cli.BadgeStyle.Render("🏆 " + badge))
			}
			return nil
		},
	}
}
