package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"finote/internal/backup"
	"finote/internal/cli"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data to CSV or a JSON backup",
	}

	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(exportBackupCmd())

	return cmd
}

func exportCSVCmd() *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export expenses as CSV",
		Long:  `Write the expense ledger as CSV with columns Date, Category, Description, Amount, Tags, Mood.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, _ := splitLedger(loadTransactions(ctx, store))

			if outFlag == "" {
				outFlag = fmt.Sprintf("finote-expenses-%s.csv", time.Now().Format("2006-01-02"))
			}
			f, err := os.Create(outFlag)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outFlag, err)
			}
			defer f.Close()

			if err := backup.WriteCSV(f, expenses); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d expenses to %s", len(expenses), outFlag)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file (default finote-expenses-<date>.csv)")
	return cmd
}

func exportBackupCmd() *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export a full JSON backup",
		Long:  `Write expenses, income, budgets, goals, and settings as one JSON file suitable for 'finote import backup'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, income := splitLedger(loadTransactions(ctx, store))
			budgets, err := store.Budgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to load budgets: %w", err)
			}
			goals, err := store.Goals(ctx)
			if err != nil {
				return fmt.Errorf("failed to load goals: %w", err)
			}
			settings, err := store.Settings(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			snapshot := backup.Snapshot{
				Expenses:   expenses,
				Income:     income,
				Budgets:    budgets,
				Goals:      goals,
				Settings:   settings,
				ExportDate: now,
			}

			if outFlag == "" {
				outFlag = fmt.Sprintf("finote-backup-%s.json", now.Format("2006-01-02"))
			}
			f, err := os.Create(outFlag)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outFlag, err)
			}
			defer f.Close()

			if err := backup.Export(f, snapshot); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Backup written to " + outFlag))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file (default finote-backup-<date>.json)")
	return cmd
}
