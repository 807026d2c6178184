// Package goal manages savings goals: creation, progress updates, and the
// derived progress/deadline math.
package goal

import (
	"fmt"
	"math"
	"time"

	"finote/internal/model"
)

// Create validates and builds a new goal.
func Create(name string, target float64, deadline *time.Time, now time.Time) (model.Goal, error) {
	return model.NewGoal(name, target, deadline, now)
}

// UpdateProgress replaces the goal's current value in place. The value is not
// clamped and may exceed the target; over-achievement is allowed.
func UpdateProgress(goals []model.Goal, id string, newCurrent float64) ([]model.Goal, error) {
	for i := range goals {
		if goals[i].ID == id {
			goals[i].Current = model.RoundAmount(newCurrent)
			return goals, nil
		}
	}
	return goals, fmt.Errorf("goal %q not found", id)
}

// Delete removes the goal unconditionally. Confirmation happens at the UI
// boundary before this is called.
func Delete(goals []model.Goal, id string) ([]model.Goal, error) {
	for i := range goals {
		if goals[i].ID == id {
			return append(goals[:i], goals[i+1:]...), nil
		}
	}
	return goals, fmt.Errorf("goal %q not found", id)
}

// PercentComplete returns current/target as a percentage, 0 when the target
// is 0. Values above 100 are returned as-is.
func PercentComplete(g model.Goal) float64 {
	if g.Target == 0 {
		return 0
	}
	return g.Current / g.Target * 100
}

// Achieved reports whether the goal has reached its target. Derived, never
// stored.
func Achieved(g model.Goal) bool {
	return PercentComplete(g) >= 100
}

// DaysRemaining returns the whole days until the deadline, rounded up, and
// whether a deadline exists. Past deadlines yield negative values.
func DaysRemaining(g model.Goal, now time.Time) (int, bool) {
	if g.Deadline == nil {
		return 0, false
	}
	days := math.Ceil(g.Deadline.Sub(now).Hours() / 24)
	return int(days), true
}
