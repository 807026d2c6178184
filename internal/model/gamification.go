package model

// GameState is the persisted gamification state: a streak counter incremented
// on every transaction add, and the set of earned badges. Badges are never
// revoked; the slice preserves the order they were earned in.
type GameState struct {
	Badges []string `json:"badges"`
	Streak int      `json:"streak"`
}

// HasBadge reports whether the badge has already been earned.
func (g GameState) HasBadge(name string) bool {
	for _, b := range g.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// Award adds a badge if it has not been earned yet and reports whether it was
// newly added.
func (g *GameState) Award(name string) bool {
	if g.HasBadge(name) {
		return false
	}
	g.Badges = append(g.Badges, name)
	return true
}
