package game

import (
	"poks/internal/currency"
	"poks/poker"
)

// PlayerState is the in-hand state of a player.
type PlayerState int

const (
	StatePlaying PlayerState = iota
	StateAllIn
	StateFolded
	StatePaused
	StateLost
)

func (s PlayerState) String() string {
	return [...]string{"Playing", "AllIn", "Folded", "Paused", "Lost"}[s]
}

// IsInHand reports whether the player still competes for the pot.
func (s PlayerState) IsInHand() bool {
	return s == StatePlaying || s == StateAllIn
}

// CanAct reports whether the player may take betting actions.
func (s PlayerState) CanAct() bool {
	return s == StatePlaying
}

// Player is the per-hand view of a seat: the dealt cards and the chips
// committed so far. It lives exactly as long as one hand; the Seat persists
// across hands.
type Player struct {
	state    PlayerState
	roundBet currency.Currency
	totalBet currency.Currency
	hand     [2]poker.Card
	seat     *Seat
}

func newPlayer(hand [2]poker.Card, seat *Seat) *Player {
	return &Player{
		state: StatePlaying,
		hand:  hand,
		seat:  seat,
	}
}

// State returns the player's in-hand state.
func (p *Player) State() PlayerState {
	return p.state
}

// Hand returns the two hole cards.
func (p *Player) Hand() [2]poker.Card {
	return p.hand
}

// Seat returns the persistent seat behind the player.
func (p *Player) Seat() *Seat {
	return p.seat
}

// RoundBet is the amount committed during the current betting round. It is
// folded into the hand total at every phase change.
func (p *Player) RoundBet() currency.Currency {
	return p.roundBet
}

// TotalBet is the amount committed in completed betting rounds of this hand.
func (p *Player) TotalBet() currency.Currency {
	return p.totalBet
}

// CommittedTotal is everything the player has put into the pot this hand.
func (p *Player) CommittedTotal() currency.Currency {
	return p.totalBet + p.roundBet
}

// ShowHand renders the hole cards for display.
func (p *Player) ShowHand() string {
	return poker.ShowCards(p.hand[:])
}

// commit withdraws amount from the seat and moves it into the round bet.
// The withdraw either fully happens or fully fails, which is what makes
// action rejection atomic.
func (p *Player) commit(amount currency.Currency) error {
	if err := p.seat.withdraw(amount); err != nil {
		return err
	}
	p.roundBet += amount
	return nil
}
