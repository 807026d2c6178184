// Package gamify derives streak and badge state from transaction activity.
// Badges are persisted milestones: once earned they are never revoked.
package gamify

import "finote/internal/model"

// Milestone badge names.
const (
	BadgeFirstTen      = "First 10"
	BadgeHalfCentury   = "Half Century"
	BadgeCentury       = "Century"
	BadgeWeekWarrior   = "Week Warrior"
	BadgeMonthlyMaster = "Monthly Master"
)

// Streak milestone thresholds.
const (
	weekStreak  = 7
	monthStreak = 30
)

// RecordAdd updates state for one transaction-add event: the streak counter
// increments and badge milestones are re-evaluated. txnCount is the total
// transaction count after the add. Returns the badges earned by this event.
//
// The streak counts adds, not consecutive days, and never resets.
func RecordAdd(state *model.GameState, txnCount int) []string {
	state.Streak++

	var earned []string
	award := func(name string) {
		if state.Award(name) {
			earned = append(earned, name)
		}
	}

	switch {
	case txnCount >= 100:
		award(BadgeCentury)
		fallthrough
	case txnCount >= 50:
		award(BadgeHalfCentury)
		fallthrough
	case txnCount >= 10:
		award(BadgeFirstTen)
	}

	if state.Streak >= monthStreak {
		award(BadgeMonthlyMaster)
	}
	if state.Streak >= weekStreak {
		award(BadgeWeekWarrior)
	}

	return earned
}
