package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"finote/internal/cli"
	"finote/internal/model"
)

func editCmd() *cobra.Command {
	var (
		amountFlag      float64
		descriptionFlag string
		categoryFlag    string
		dateFlag        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long:  `Replace a transaction's amount, description, category, or date. Fields not given keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions := loadTransactions(ctx, store)
			index := -1
			for i, txn := range transactions {
				if txn.ID == args[0] {
					index = i
					break
				}
			}
			if index == -1 {
				return fmt.Errorf("transaction %q not found", args[0])
			}

			txn := transactions[index]
			if cmd.Flags().Changed("amount") {
				if amountFlag <= 0 {
					return model.ErrInvalidAmount
				}
				txn.Amount = model.RoundAmount(amountFlag)
			}
			if cmd.Flags().Changed("description") {
				description, err := model.CleanDescription(descriptionFlag)
				if err != nil {
					return err
				}
				txn.Description = description
			}
			if cmd.Flags().Changed("category") {
				labels, noun, err := knownLabels(ctx, store, txn)
				if err != nil {
					return err
				}
				if !model.HasLabel(labels, categoryFlag) {
					return fmt.Errorf("unknown %s %q", noun, categoryFlag)
				}
				txn.Category = categoryFlag
			}
			if cmd.Flags().Changed("date") {
				date, err := parseDate(dateFlag, now)
				if err != nil {
					return err
				}
				txn.Date = date
			}
			transactions[index] = txn

			saveOrLog("transactions", func() error { return store.SaveTransactions(ctx, transactions) })
			fmt.Println(cli.SuccessStyle.Render("✓ Transaction updated"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amountFlag, "amount", 0, "new amount")
	cmd.Flags().StringVar(&descriptionFlag, "description", "", "new description")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "new category")
	cmd.Flags().StringVar(&dateFlag, "date", "", "new date (YYYY-MM-DD)")

	return cmd
}
