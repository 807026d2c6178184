package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"finote/internal/cli"
	"finote/internal/model"
	"finote/internal/report"
	"finote/internal/storage"
)

func listCmd() *cobra.Command {
	var (
		windowFlag   string
		categoryFlag string
		searchFlag   string
		incomeFlag   bool
		deleteFlag   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `List recorded transactions, filtered by time window, category, or search text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions := loadTransactions(ctx, store)

			if deleteFlag != "" {
				return deleteTransaction(cmd, store, transactions, deleteFlag)
			}

			expenses, income := splitLedger(transactions)
			shown := expenses
			if incomeFlag {
				shown = income
			}

			shown = report.Filter(shown, parseWindow(windowFlag), now)
			shown = filterTransactions(shown, categoryFlag, searchFlag)

			if len(shown) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'finote add' to record one."))
				return nil
			}

			symbol := currencySymbol(ctx, store)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Tags"))

			var total float64
			for _, txn := range shown {
				total += txn.Amount
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s%.2f\t%s\n",
					txn.ID,
					txn.Date.Format("2006-01-02"),
					txn.Category,
					txn.Description,
					symbol, txn.Amount,
					strings.Join(txn.Tags, ";"))
			}
			fmt.Fprintf(w, "\t\t\t%s\t%s\t\n",
				cli.BoldStyle.Render("Total"),
				cli.BoldStyle.Render(fmt.Sprintf("%s%.2f", symbol, total)))

			return nil
		},
	}

	cmd.Flags().StringVarP(&windowFlag, "window", "w", "all", "time window (30d, month, year, all)")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "only show this category")
	cmd.Flags().StringVarP(&searchFlag, "search", "s", "", "search in description and category")
	cmd.Flags().BoolVar(&incomeFlag, "income", false, "show the income ledger")
	cmd.Flags().StringVar(&deleteFlag, "delete", "", "delete the transaction with this ID (asks for confirmation)")

	return cmd
}

func parseWindow(value string) report.Window {
	switch value {
	case "30d":
		return report.Last30Days
	case "month":
		return report.CurrentMonth
	case "year":
		return report.CurrentYear
	default:
		return report.AllTime
	}
}

func filterTransactions(transactions []model.Transaction, category, search string) []model.Transaction {
	if category == "" && search == "" {
		return transactions
	}
	search = strings.ToLower(search)

	filtered := make([]model.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if category != "" && txn.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(txn.Description), search) &&
			!strings.Contains(strings.ToLower(txn.Category), search) {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered
}

func deleteTransaction(cmd *cobra.Command, store *storage.Store, transactions []model.Transaction, id string) error {
	ctx := cmd.Context()

	index := -1
	for i, txn := range transactions {
		if txn.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return fmt.Errorf("transaction %q not found", id)
	}

	reader := cli.NewReader(cmd.InOrStdin())
	confirmed, err := cli.Confirm(ctx, reader, cmd.OutOrStdout(),
		fmt.Sprintf("Delete %q (%s)?", transactions[index].Description, transactions[index].Date.Format("2006-01-02")))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println(cli.SubtleStyle.Render("Canceled."))
		return nil
	}

	transactions = append(transactions[:index], transactions[index+1:]...)
	saveOrLog("transactions", func() error { return store.SaveTransactions(ctx, transactions) })
	fmt.Println(cli.SuccessStyle.Render("✓ Transaction deleted"))
	return nil
}
