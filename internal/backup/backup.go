package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"finote/internal/model"
)

// Snapshot is the full JSON backup shape. Importing a snapshot wholesale
// replaces all in-memory state after explicit user confirmation.
type Snapshot struct {
	ExportDate time.Time           `json:"exportDate"`
	Budgets    model.Budgets       `json:"budgets"`
	Expenses   []model.Transaction `json:"expenses"`
	Income     []model.Transaction `json:"income,omitempty"`
	Goals      []model.Goal        `json:"goals"`
	Settings   model.Settings      `json:"settings"`
}

// Export writes the snapshot as indented JSON.
func Export(w io.Writer, snapshot Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Parse reads and validates a backup file. On failure the caller keeps its
// existing state untouched and surfaces the error to the user.
func Parse(r io.Reader) (Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read backup: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("invalid backup format: %w", err)
	}
	return snapshot, nil
}
