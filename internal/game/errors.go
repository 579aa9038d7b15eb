package game

import (
	"errors"
	"fmt"

	"poks/internal/currency"
)

// Sentinel errors for conditions that carry no extra data.
var (
	// ErrGameFinished is returned by any mutating operation on a
	// finished hand.
	ErrGameFinished = errors.New("game is already finished")
	// ErrGameNotStarted is returned when the hand has not been dealt yet.
	ErrGameNotStarted = errors.New("game has not started yet")
	// ErrInvalidCall is returned when a call is attempted while the
	// player is not under the table bet.
	ErrInvalidCall = errors.New("invalid action: cannot call when you're not under the round bet")
	// ErrRaiseNotAllowed is returned when raising in a state that forbids it.
	ErrRaiseNotAllowed = errors.New("cannot raise: betting is not allowed in current game state")
	// ErrNoActivePlayers signals a broken engine invariant: a hand with
	// nobody left in it.
	ErrNoActivePlayers = errors.New("internal error: no active players remain in the hand")
	// ErrSplitPotUnsupported is returned when the two best showdown hands
	// tie exactly. Split pots are not implemented.
	ErrSplitPotUnsupported = errors.New("internal error: tied showdown hands, split pots are not supported")
)

// InvalidPlayerError reports a player index outside the seat list.
type InvalidPlayerError struct {
	Player int
	Max    int
}

func (e *InvalidPlayerError) Error() string {
	return fmt.Sprintf("invalid player ID: %d (max: %d)", e.Player, e.Max)
}

// PlayerNotPlayingError reports an action for a player who cannot act.
type PlayerNotPlayingError struct {
	Player int
	State  PlayerState
}

func (e *PlayerNotPlayingError) Error() string {
	return fmt.Sprintf("player %d is not in a playing state (current state: %s)", e.Player, e.State)
}

// PlayerAlreadyAllInError reports an all-in by a player who already is.
type PlayerAlreadyAllInError struct {
	Player int
}

func (e *PlayerAlreadyAllInError) Error() string {
	return fmt.Sprintf("player %d is already all-in", e.Player)
}

// InsufficientPlayersError reports a build with fewer than two seats.
type InsufficientPlayersError struct {
	Count int
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("not enough players to start game (need at least 2, have %d)", e.Count)
}

// TooManyPlayersError reports a seat count the deck cannot serve.
type TooManyPlayersError struct {
	Requested int
	Max       int
}

func (e *TooManyPlayersError) Error() string {
	return fmt.Sprintf("too many players for deck (requested: %d, max supported: %d)", e.Requested, e.Max)
}

// AmountMismatchError reports an action whose asserted amount differs from
// the amount the engine computed.
type AmountMismatchError struct {
	Op       string // "call" or "all-in"
	Expected currency.Currency
	Got      currency.Currency
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("invalid %s amount: expected %s, got %s", e.Op, e.Expected, e.Got)
}

// RaiseTooSmallError reports a raise under the table minimum.
type RaiseTooSmallError struct {
	Amount  currency.Currency
	Minimum currency.Currency
}

func (e *RaiseTooSmallError) Error() string {
	return fmt.Sprintf("invalid bet amount: %s (minimum: %s)", e.Amount, e.Minimum)
}

// InsufficientFundsError reports an action the seat balance cannot cover.
type InsufficientFundsError struct {
	Required  currency.Currency
	Available currency.Currency
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: need %s, have %s", e.Required, e.Available)
}

// InternalError wraps assertion-style failures that indicate a bug rather
// than a user-triggerable condition.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}

func errInternal(format string, args ...any) error {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}
