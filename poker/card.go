// Package poker provides the card and deck primitives and the 7-card hand
// evaluator consumed by the game engine. The engine treats the evaluator as
// a collaborator: it hands over seven sorted cards and gets back a rank and
// a classification.
package poker

import (
	"fmt"
	"sort"
)

// Suit is a card suit. The enumeration order is fixed and doubles as the
// deterministic tie-break wherever two suits compete (flush selection).
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the suit glyph.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Rank is a card rank, Two through Ace. Aces are high; the wheel straight
// is the only place an Ace plays low.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the one-character rank symbol.
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return fmt.Sprintf("%d", int(r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// index maps the rank onto bit positions 0 (Two) through 12 (Ace).
func (r Rank) index() int {
	return int(r) - 2
}

func rankFromIndex(i int) Rank {
	return Rank(i + 2)
}

// Card is a rank and a suit, totally ordered rank-major with the fixed suit
// order breaking ties.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String renders the card like "T♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Less reports whether c sorts before o.
func (c Card) Less(o Card) bool {
	if c.Rank != o.Rank {
		return c.Rank < o.Rank
	}
	return c.Suit < o.Suit
}

// ParseCard parses the compact two-character form, e.g. "Th" or "As".
// Suits are c, d, h, s.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("parse card %q: want rank and suit characters", s)
	}
	var rank Rank
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(s[0] - '0')
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("parse card %q: unknown rank %q", s, s[0])
	}
	var suit Suit
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("parse card %q: unknown suit %q", s, s[1])
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// SortCards sorts ascending in place.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool { return cards[i].Less(cards[j]) })
}

// sortCardsDesc sorts descending in place.
func sortCardsDesc(cards []Card) {
	sort.Slice(cards, func(i, j int) bool { return cards[j].Less(cards[i]) })
}

// ShowCards renders cards space-separated, e.g. "T♥ T♣ 3♣".
func ShowCards(cards []Card) string {
	buf := make([]byte, 0, len(cards)*6)
	for i, c := range cards {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c.String()...)
	}
	return string(buf)
}
