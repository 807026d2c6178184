package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"finote/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List and add expense categories. The base set always exists; user-added labels persist and are never removed.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.Categories(ctx)
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Categories"))
			for _, name := range categories {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return fmt.Errorf("category name cannot be empty")
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.AddCategory(ctx, name); err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %s added to categories", name)))
			return nil
		},
	})

	return cmd
}

func sourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage income sources",
		Long:  `List and add income source labels for the income ledger.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all income sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			sources, err := store.IncomeSources(ctx)
			if err != nil {
				return fmt.Errorf("failed to load income sources: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Income sources"))
			for _, name := range sources {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom income source",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return fmt.Errorf("income source name cannot be empty")
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.AddIncomeSource(ctx, name); err != nil {
				return fmt.Errorf("failed to add income source: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %s added to income sources", name)))
			return nil
		},
	})

	return cmd
}
