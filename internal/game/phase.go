package game

// Phase is one of the four community-card stages of a hand. Phases only
// ever move forward.
type Phase int

const (
	Preflop Phase = iota
	Flop
	Turn
	River
)

func (p Phase) String() string {
	return [...]string{"Preflop", "Flop", "Turn", "River"}[p]
}

// GameState is the betting-level state nested around the Phase. Finished is
// terminal: after it only read accessors succeed.
type GameState int

const (
	RaiseAllowed GameState = iota
	RaiseDisallowed
	Pause
	Finished
)

func (s GameState) String() string {
	return [...]string{"RaiseAllowed", "RaiseDisallowed", "Pause", "Finished"}[s]
}

// IsOngoing reports whether actions can still be processed.
func (s GameState) IsOngoing() bool {
	return s == RaiseAllowed || s == RaiseDisallowed
}
