package game

import (
	"sync"

	"poks/internal/currency"
)

// Strategy supplies a seat's decisions. Act receives a read-only view of
// the current game and the seat's per-hand player; it returns nil when no
// decision is available yet, in which case the engine re-polls on a later
// tick. Act must never mutate chip balances; the engine moves money only
// after validating the returned action.
type Strategy interface {
	Act(g *Game, p *Player) *Action
}

// Seat is a persistent player slot: a chip balance plus a decision
// strategy. Seats outlive hands; the engine borrows them for the duration
// of one hand to debit bets and credit the pot. The balance is the only
// seat state shared with other goroutines (the UI reads it while the
// engine plays), so it sits behind a mutex.
type Seat struct {
	mu       sync.Mutex
	balance  currency.Currency
	strategy Strategy
}

// NewSeat creates a seat with a starting balance and a strategy.
func NewSeat(balance currency.Currency, strategy Strategy) *Seat {
	return &Seat{
		balance:  balance,
		strategy: strategy,
	}
}

// Balance returns the current chip balance.
func (s *Seat) Balance() currency.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// withdraw removes amount from the balance. It fails without touching the
// balance when funds are short; a committed withdraw never leaves the
// balance negative.
func (s *Seat) withdraw(amount currency.Currency) error {
	if amount.IsNegative() {
		return errInternal("withdraw of negative amount %s", amount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if amount > s.balance {
		return &InsufficientFundsError{Required: amount, Available: s.balance}
	}
	s.balance -= amount
	return nil
}

// credit adds amount to the balance.
func (s *Seat) credit(amount currency.Currency) error {
	if amount.IsNegative() {
		return errInternal("credit of negative amount %s", amount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance += amount
	return nil
}

func (s *Seat) act(g *Game, p *Player) *Action {
	return s.strategy.Act(g, p)
}
