package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"finote/internal/backup"
	"finote/internal/classify"
	"finote/internal/cli"
	"finote/internal/model"
	"finote/internal/ofx"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a JSON backup or an OFX statement",
	}

	cmd.AddCommand(importBackupCmd())
	cmd.AddCommand(importOFXCmd())

	return cmd
}

func importBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file>",
		Short: "Restore a full JSON backup",
		Long:  `Parse a backup produced by 'finote export backup' and, after confirmation, replace all stored data with its contents. A malformed file leaves existing data untouched.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			snapshot, err := backup.Parse(f)
			if err != nil {
				return fmt.Errorf("error importing data, please check the file format: %w", err)
			}

			reader := cli.NewReader(cmd.InOrStdin())
			confirmed, err := cli.Confirm(ctx, reader, cmd.OutOrStdout(),
				"This will replace all your current data. Continue?")
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println(cli.SubtleStyle.Render("Import canceled. Existing data untouched."))
				return nil
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions := make([]model.Transaction, 0, len(snapshot.Expenses)+len(snapshot.Income))
			transactions = append(transactions, snapshot.Expenses...)
			transactions = append(transactions, snapshot.Income...)

			if err := store.SaveTransactions(ctx, transactions); err != nil {
				return fmt.Errorf("failed to restore transactions: %w", err)
			}
			if err := store.SaveBudgets(ctx, snapshot.Budgets); err != nil {
				return fmt.Errorf("failed to restore budgets: %w", err)
			}
			if err := store.SaveGoals(ctx, snapshot.Goals); err != nil {
				return fmt.Errorf("failed to restore goals: %w", err)
			}
			if err := store.SaveSettings(ctx, snapshot.Settings); err != nil {
				return fmt.Errorf("failed to restore settings: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"✓ Data imported successfully: %d expenses, %d income, %d goals",
				len(snapshot.Expenses), len(snapshot.Income), len(snapshot.Goals))))
			return nil
		},
	}
}

func importOFXCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ofx <file>",
		Short: "Import expenses from an OFX/QFX statement",
		Long:  `Parse a downloaded bank statement and append its debits to the expense ledger. Each imported expense is auto-categorized from its description.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			imported, err := ofx.NewParser().ParseFile(f)
			if err != nil {
				return err
			}
			if len(imported) == 0 {
				fmt.Println(cli.InfoStyle.Render("No debits found in statement."))
				return nil
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

			bar := progressbar.NewOptions(len(imported),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Importing transactions...[reset]"),
			)

			classifier := classify.NewDefault()
			for i := range imported {
				if imported[i].Category == "" {
					imported[i].Category = classifier.Classify(imported[i].Description, imported[i].Amount, categories)
				}
				_ = bar.Add(1)
			}
			fmt.Fprintln(os.Stderr)

			transactions := loadTransactions(ctx, store)
			transactions = append(imported, transactions...)
			if err := store.SaveTransactions(ctx, transactions); err != nil {
				return fmt.Errorf("failed to save imported transactions: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Imported %d expenses from %s", len(imported), args[0])))
			return nil
		},
	}
}
