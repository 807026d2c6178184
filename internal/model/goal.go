package model

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Goal validation errors.
var (
	ErrEmptyGoalName     = errors.New("goal name cannot be empty")
	ErrInvalidGoalTarget = errors.New("goal target must be a positive number")
)

// Goal is a savings goal. Current is user-settable and not derived from
// transactions; it may exceed Target.
type Goal struct {
	CreatedAt time.Time  `json:"createdAt"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Target    float64    `json:"target"`
	Current   float64    `json:"current"`
}

// NewGoal builds a validated goal with a creation-ordered ID.
func NewGoal(name string, target float64, deadline *time.Time, now time.Time) (Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Goal{}, ErrEmptyGoalName
	}
	if target <= 0 {
		return Goal{}, ErrInvalidGoalTarget
	}

	return Goal{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Name:      name,
		Target:    RoundAmount(target),
		Deadline:  deadline,
		CreatedAt: now,
	}, nil
}
