package game

import (
	"fmt"

	"poks/poker"
)

// ProcessAction advances the hand by one step. When the player to act is
// unable to act (folded, all in) the turn simply moves on and action is
// ignored. A nil action means the player has not decided yet; the caller
// polls again later. Invalid actions are rejected whole, leaving chips
// and turn untouched.
func (g *Game) ProcessAction(action *Action) error {
	if g.state == Finished {
		return ErrGameFinished
	}
	switch g.countInHand() {
	case 0:
		return ErrNoActivePlayers
	case 1:
		return g.finishUncontested()
	}

	current := g.players[g.turn]
	if !current.state.CanAct() {
		g.nextTurn()
		return g.settleRound()
	}
	if action == nil {
		return nil
	}

	if err := g.applyAction(current, action); err != nil {
		return err
	}
	g.log(g.turn, action.String())

	if g.countInHand() == 1 {
		return g.finishUncontested()
	}
	g.nextTurn()
	return g.settleRound()
}

func (g *Game) applyAction(p *Player, action *Action) error {
	switch action.Kind {
	case ActionFold:
		p.state = StateFolded
		g.toAct--
		return nil

	case ActionCall:
		expected := g.CallAmount(p)
		if expected == 0 && action.Amount != 0 {
			return ErrInvalidCall
		}
		if action.Amount != expected {
			return &AmountMismatchError{Op: "call", Expected: expected, Got: action.Amount}
		}
		if err := p.commit(expected); err != nil {
			return err
		}
		g.toAct--
		return nil

	case ActionRaise:
		if g.state != RaiseAllowed {
			return ErrRaiseNotAllowed
		}
		minimum := g.CallAmount(p) + g.MinRaise()
		if action.Amount < minimum {
			return &RaiseTooSmallError{Amount: action.Amount, Minimum: minimum}
		}
		if err := p.commit(action.Amount); err != nil {
			return err
		}
		// The raise reopens the betting for everyone else.
		g.toAct = g.countCanAct() - 1
		return nil

	case ActionAllIn:
		balance := p.seat.Balance()
		if action.Amount != balance {
			return &AmountMismatchError{Op: "all-in", Expected: balance, Got: action.Amount}
		}
		raised := p.RoundBet()+balance > g.HighestRoundBet()
		if err := p.commit(balance); err != nil {
			return err
		}
		p.state = StateAllIn
		g.state = RaiseDisallowed
		if raised {
			g.toAct = g.countCanAct()
		} else {
			g.toAct--
		}
		return nil

	default:
		return errInternal("unknown action kind %d", action.Kind)
	}
}

// Tick polls the player to act for a decision and processes it. Players
// without a decision yet leave the hand unchanged.
func (g *Game) Tick() error {
	if g.state == Finished {
		return ErrGameFinished
	}
	p := g.players[g.turn]
	var action *Action
	if p.state.CanAct() {
		action = p.seat.act(g, p)
	}
	return g.ProcessAction(action)
}

// CheckActor verifies that player exists and may act right now. Input
// frontends call this before depositing a decision for the player.
func (g *Game) CheckActor(player int) error {
	if player < 0 || player >= len(g.players) {
		return &InvalidPlayerError{Player: player, Max: len(g.players) - 1}
	}
	switch state := g.players[player].state; state {
	case StateAllIn:
		return &PlayerAlreadyAllInError{Player: player}
	case StatePlaying:
		return nil
	default:
		return &PlayerNotPlayingError{Player: player, State: state}
	}
}

func (g *Game) nextTurn() {
	g.turn = (g.turn + 1) % len(g.players)
}

// settleRound advances to the next street once no player owes an action.
func (g *Game) settleRound() error {
	for g.toAct <= 0 && g.state != Finished {
		if err := g.advancePhase(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) advancePhase() error {
	for _, p := range g.players {
		p.totalBet += p.roundBet
		p.roundBet = 0
	}

	if g.phase == River {
		return g.showdown()
	}

	// Burn a card before dealing each street.
	if _, ok := g.deck.Draw(); !ok {
		return errInternal("deck exhausted while burning")
	}
	deal := 1
	if g.phase == Preflop {
		deal = 3
	}
	for i := 0; i < deal; i++ {
		card, ok := g.deck.Draw()
		if !ok {
			return errInternal("deck exhausted while dealing %s", g.phase+1)
		}
		g.community = append(g.community, card)
	}

	g.phase++
	g.state = RaiseAllowed
	for _, p := range g.players {
		if p.state == StateAllIn {
			g.state = RaiseDisallowed
			break
		}
	}
	g.log(TablePlayer, fmt.Sprintf("Phase: %s (%s)", g.phase, poker.ShowCards(g.community)))

	// Action starts left of the dealer. A street with at most one player
	// able to act has no betting; the loop in settleRound runs the board
	// out to showdown.
	g.turn = (g.dealer + 1) % len(g.players)
	for !g.players[g.turn].state.CanAct() && g.countCanAct() > 0 {
		g.nextTurn()
	}
	g.toAct = g.countCanAct()
	if g.toAct <= 1 {
		g.toAct = 0
	}
	return nil
}

// showdown evaluates every hand still live, including all in players,
// and pays the whole pot to the strongest. Exact ties between the two
// strongest hands cannot be paid out with a single pot.
func (g *Game) showdown() error {
	type contender struct {
		player int
		rank   poker.HandRank
		class  poker.HandClass
		cards  []poker.Card
	}

	var best, second *contender
	for i, p := range g.players {
		if !p.state.IsInHand() {
			continue
		}
		cards := make([]poker.Card, 0, 7)
		cards = append(cards, p.hand[0], p.hand[1])
		cards = append(cards, g.community...)
		poker.SortCards(cards)

		rank, class, err := poker.Evaluate7(cards)
		if err != nil {
			return fmt.Errorf("evaluating player %d: %w", i, err)
		}
		c := &contender{player: i, rank: rank, class: class, cards: cards}
		switch {
		case best == nil || c.rank > best.rank:
			second = best
			best = c
		case second == nil || c.rank > second.rank:
			second = c
		}
	}
	if best == nil {
		return ErrNoActivePlayers
	}
	if second != nil && second.rank == best.rank {
		return fmt.Errorf("players %d and %d tie with %s: %w",
			best.player, second.player, best.class.Type, ErrSplitPotUnsupported)
	}

	return g.finish(&Winner{
		Player: best.player,
		Known:  true,
		Rank:   best.rank,
		Class:  best.class,
		Cards:  best.cards,
	})
}

func (g *Game) finishUncontested() error {
	for i, p := range g.players {
		if p.state.IsInHand() {
			return g.finish(&Winner{Player: i})
		}
	}
	return ErrNoActivePlayers
}

// finish pays the pot to the winner and closes the hand. The pot is paid
// exactly once; the winner's balance grows by exactly the pot.
func (g *Game) finish(w *Winner) error {
	pot := g.Pot()
	if pot <= 0 {
		return errInternal("finishing hand with empty pot")
	}
	seat := g.players[w.Player].seat
	before := seat.Balance()
	if err := seat.credit(pot); err != nil {
		return err
	}
	if seat.Balance() != before+pot {
		return errInternal("payout mismatch for player %d", w.Player)
	}
	w.Pot = pot
	g.winner = w
	g.state = Finished
	g.log(TablePlayer, w.String())
	return nil
}

func (g *Game) countInHand() int {
	n := 0
	for _, p := range g.players {
		if p.state.IsInHand() {
			n++
		}
	}
	return n
}

func (g *Game) countCanAct() int {
	n := 0
	for _, p := range g.players {
		if p.state.CanAct() {
			n++
		}
	}
	return n
}
