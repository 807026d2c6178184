package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"finote/internal/cli"
	"finote/internal/currency"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change preferences",
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())
	cmd.AddCommand(settingsClearCmd())

	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			settings, err := store.Settings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Settings"))
			fmt.Printf("  Currency:      %s (%s)\n", settings.Currency, currency.Symbol(settings.Currency))
			fmt.Printf("  Theme:         %s\n", settings.Theme)
			fmt.Printf("  Notifications: %v\n", settings.Notifications)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Long:  `Supported keys: currency (` + strings.Join(currency.Codes(), ", ") + `), theme (light, dark), notifications (true, false).`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			settings, err := store.Settings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			key, value := args[0], args[1]
			switch key {
			case "currency":
				settings.Currency = strings.ToUpper(value)
			case "theme":
				settings.Theme = value
			case "notifications":
				settings.Notifications = value == "true"
			default:
				return fmt.Errorf("unknown setting %q", key)
			}

			saveOrLog("settings", func() error { return store.SaveSettings(ctx, settings) })
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %s set to %s", key, value)))
			return nil
		},
	}
}

func settingsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-data",
		Short: "Delete all stored data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			reader := cli.NewReader(cmd.InOrStdin())
			confirmed, err := cli.Confirm(ctx, reader, cmd.OutOrStdout(),
				"⚠ This will DELETE ALL your data permanently. This cannot be undone. Are you absolutely sure?")
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println(cli.SubtleStyle.Render("Canceled."))
				return nil
			}
			confirmed, err = cli.Confirm(ctx, reader, cmd.OutOrStdout(),
				"Last chance! This will erase all expenses, budgets, and goals. Continue?")
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println(cli.SubtleStyle.Render("Canceled."))
				return nil
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(ctx); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("✓ All data has been cleared."))
			return nil
		},
	}
}
