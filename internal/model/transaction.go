// Package model defines the core domain models used throughout the application.
package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// TransactionType discriminates between the two ledgers.
type TransactionType string

// Transaction type constants.
const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Mood captures how the user felt about a transaction. Display-only metadata.
type Mood string

// Mood constants.
const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

// PaymentMethod is how an expense was paid. Expense-only, optional.
type PaymentMethod string

// Payment method constants.
const (
	PaymentCash    PaymentMethod = "Cash"
	PaymentDigital PaymentMethod = "Digital"
)

// RecurringInterval describes how often a recurring transaction repeats.
// Informational only; no automatic re-generation occurs.
type RecurringInterval string

// Recurring interval constants.
const (
	IntervalDaily   RecurringInterval = "daily"
	IntervalWeekly  RecurringInterval = "weekly"
	IntervalMonthly RecurringInterval = "monthly"
	IntervalYearly  RecurringInterval = "yearly"
)

// Validation errors surfaced to the user at the point of input.
var (
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrEmptyDescription = errors.New("description cannot be empty")
)

// Transaction represents a single expense or income record.
// The Category field holds the expense category or, for income, the source.
type Transaction struct {
	Date              time.Time         `json:"date"`
	ID                string            `json:"id"`
	Type              TransactionType   `json:"type"`
	Description       string            `json:"description"`
	Category          string            `json:"category"`
	Mood              Mood              `json:"mood,omitempty"`
	PaymentMethod     PaymentMethod     `json:"paymentMethod,omitempty"`
	RecurringInterval RecurringInterval `json:"recurringInterval,omitempty"`
	Tags              []string          `json:"tags,omitempty"`
	Amount            float64           `json:"amount"`
	Recurring         bool              `json:"recurring"`
}

// NewTransaction builds a validated transaction. The amount is rounded to two
// decimal places and the description trimmed. The returned ID is derived from
// now so records sort by creation.
func NewTransaction(txType TransactionType, amount float64, description string, date, now time.Time) (Transaction, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Transaction{}, ErrInvalidAmount
	}
	description, err := CleanDescription(description)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		ID:          strconv.FormatInt(now.UnixNano(), 10),
		Type:        txType,
		Amount:      RoundAmount(amount),
		Description: description,
		Date:        date,
	}, nil
}

// CleanDescription trims a description and rejects whitespace-only values.
// Every write path for descriptions goes through here.
func CleanDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrEmptyDescription
	}
	return description, nil
}

// IsExpense reports whether the transaction belongs to the expense ledger.
// Records without an explicit type predate the dual ledger and are expenses.
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense || t.Type == ""
}

// RoundAmount rounds a monetary amount to two decimal places.
func RoundAmount(amount float64) float64 {
	return math.Round(amount*100) / 100
}
