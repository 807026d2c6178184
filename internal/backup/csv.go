// Package backup implements the CSV transaction export and the full JSON
// backup export/import round trip.
package backup

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"finote/internal/model"
)

// csvHeader is the fixed column set of the transaction export.
var csvHeader = []string{"Date", "Category", "Description", "Amount", "Tags", "Mood"}

// WriteCSV writes the transactions as CSV with the fixed columns
// Date, Category, Description, Amount, Tags, Mood. Tags are joined by ";".
func WriteCSV(w io.Writer, transactions []model.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range transactions {
		record := []string{
			txn.Date.Format("2006-01-02"),
			txn.Category,
			txn.Description,
			strconv.FormatFloat(txn.Amount, 'f', 2, 64),
			strings.Join(txn.Tags, ";"),
			string(txn.Mood),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
