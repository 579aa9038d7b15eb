package game

import (
	"fmt"

	"poks/internal/currency"
	"poks/poker"
)

// Winner is the resolved outcome of a hand. Known is true when the hand
// reached showdown and the winning cards were evaluated; it is false when
// everyone else folded and the winner never had to show.
type Winner struct {
	Player int
	Pot    currency.Currency
	Known  bool

	Rank  poker.HandRank
	Class poker.HandClass
	Cards []poker.Card
}

func (w *Winner) String() string {
	if !w.Known {
		return fmt.Sprintf("Player %d wins %s", w.Player, w.Pot)
	}
	shown := poker.SelectShowdown(w.Class, w.Cards)
	return fmt.Sprintf("Player %d wins %s with %s (%s)",
		w.Player, w.Pot, w.Class.Type, poker.ShowCards(shown))
}
