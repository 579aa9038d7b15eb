package game

import (
	"fmt"

	"poks/internal/currency"
)

// ActionKind enumerates the closed set of betting actions.
type ActionKind int

const (
	ActionFold ActionKind = iota
	ActionCall
	ActionRaise
	ActionAllIn
)

// Action is a player's decision for one turn. Amount is the delta the
// player asserts they are committing with this action; the engine
// recomputes it independently and rejects mismatches.
type Action struct {
	Kind   ActionKind
	Amount currency.Currency
}

// NewFold folds the hand.
func NewFold() Action {
	return Action{Kind: ActionFold}
}

// NewCall matches the table bet by exactly amount. A zero amount is a check.
func NewCall(amount currency.Currency) Action {
	return Action{Kind: ActionCall, Amount: amount}
}

// NewCheck is a call of zero.
func NewCheck() Action {
	return NewCall(currency.Zero)
}

// NewRaise commits amount, which must cover the required call plus at least
// the minimum raise.
func NewRaise(amount currency.Currency) Action {
	return Action{Kind: ActionRaise, Amount: amount}
}

// NewAllIn commits the player's entire remaining balance, which must equal
// amount exactly.
func NewAllIn(amount currency.Currency) Action {
	return Action{Kind: ActionAllIn, Amount: amount}
}

// String renders the action the way it appears in the game log.
func (a Action) String() string {
	switch a.Kind {
	case ActionFold:
		return "folds"
	case ActionCall:
		if a.Amount == currency.Zero {
			return "checks"
		}
		return fmt.Sprintf("calls for %s", a.Amount)
	case ActionRaise:
		return fmt.Sprintf("raises by %s", a.Amount)
	case ActionAllIn:
		return fmt.Sprintf("goes all in! (%s)", a.Amount)
	default:
		return "does something impossible"
	}
}
