package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"poks/internal/currency"
	"poks/internal/randutil"
	"poks/poker"
)

// MaxPlayers is the largest table a single deck supports: two hole cards
// per player plus three burn cards and five community cards.
const MaxPlayers = (poker.DeckSize - 8) / 2

// Default blind sizes.
var (
	DefaultSmallBlind = currency.New(0, 50)
	DefaultBigBlind   = currency.New(1, 0)
)

// LogEntry is one line of hand history. Player is the acting player's
// index, or TablePlayer for dealer events such as phase changes.
type LogEntry struct {
	Player int
	Text   string
}

// TablePlayer marks log entries that belong to the table rather than a
// specific player.
const TablePlayer = -1

func (e LogEntry) String() string {
	if e.Player == TablePlayer {
		return e.Text
	}
	return fmt.Sprintf("Player %d %s", e.Player, e.Text)
}

// Game is one hand of Texas Hold'em from deal to payout. It is not safe
// for concurrent use; callers drive it from a single goroutine and share
// only the seats' balances.
type Game struct {
	phase   Phase
	state   GameState
	turn    int
	dealer  int
	toAct   int
	players []*Player

	community []poker.Card
	deck      *poker.Deck
	winner    *Winner

	smallBlind currency.Currency
	bigBlind   currency.Currency

	gameLog []LogEntry
	seed    int64
	logger  *log.Logger
}

// Option configures a Game under construction.
type Option func(*Game)

// WithBlinds overrides the default blind sizes.
func WithBlinds(small, big currency.Currency) Option {
	return func(g *Game) {
		g.smallBlind = small
		g.bigBlind = big
	}
}

// WithLogger attaches a structured logger for per-action debug output.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// Build deals a new hand: it shuffles a deck from seed, deals two hole
// cards to every seat and posts the blinds. The seat after the big blind
// acts first. Blinds a seat cannot cover fail the build; the table should
// have removed broke seats beforehand.
func Build(seats []*Seat, dealer int, seed int64, opts ...Option) (*Game, error) {
	if len(seats) < 2 {
		return nil, &InsufficientPlayersError{Count: len(seats)}
	}
	if len(seats) > MaxPlayers {
		return nil, &TooManyPlayersError{Requested: len(seats), Max: MaxPlayers}
	}
	if dealer < 0 || dealer >= len(seats) {
		return nil, &InvalidPlayerError{Player: dealer, Max: len(seats) - 1}
	}

	g := &Game{
		phase:      Preflop,
		state:      RaiseAllowed,
		dealer:     dealer,
		deck:       poker.NewDeck(randutil.New(seed)),
		smallBlind: DefaultSmallBlind,
		bigBlind:   DefaultBigBlind,
		seed:       seed,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.players = make([]*Player, len(seats))
	for i, seat := range seats {
		first, ok := g.deck.Draw()
		if !ok {
			return nil, errInternal("deck exhausted while dealing")
		}
		second, ok := g.deck.Draw()
		if !ok {
			return nil, errInternal("deck exhausted while dealing")
		}
		g.players[i] = newPlayer([2]poker.Card{first, second}, seat)
	}

	if err := g.postBlinds(); err != nil {
		return nil, err
	}
	g.turn = (g.BigBlindPosition() + 1) % len(g.players)
	g.toAct = len(g.players)
	g.log(TablePlayer, fmt.Sprintf("Phase: %s", g.phase))
	return g, nil
}

func (g *Game) postBlinds() error {
	sb := g.players[g.SmallBlindPosition()]
	bb := g.players[g.BigBlindPosition()]
	if err := sb.commit(g.smallBlind); err != nil {
		return fmt.Errorf("posting small blind: %w", err)
	}
	if err := bb.commit(g.bigBlind); err != nil {
		return fmt.Errorf("posting big blind: %w", err)
	}
	g.log(g.SmallBlindPosition(), fmt.Sprintf("posts small blind %s", g.smallBlind))
	g.log(g.BigBlindPosition(), fmt.Sprintf("posts big blind %s", g.bigBlind))
	return nil
}

// SmallBlindPosition returns the small blind seat index. Heads-up the
// dealer posts the small blind.
func (g *Game) SmallBlindPosition() int {
	if len(g.players) == 2 {
		return g.dealer
	}
	return (g.dealer + 1) % len(g.players)
}

// BigBlindPosition returns the big blind seat index.
func (g *Game) BigBlindPosition() int {
	if len(g.players) == 2 {
		return (g.dealer + 1) % len(g.players)
	}
	return (g.dealer + 2) % len(g.players)
}

// Phase returns the current street.
func (g *Game) Phase() Phase { return g.phase }

// State returns the current engine state.
func (g *Game) State() GameState { return g.state }

// Turn returns the index of the player to act.
func (g *Game) Turn() int { return g.turn }

// Dealer returns the dealer button index.
func (g *Game) Dealer() int { return g.dealer }

// Players returns the players in seat order.
func (g *Game) Players() []*Player { return g.players }

// CommunityCards returns the board dealt so far.
func (g *Game) CommunityCards() []poker.Card { return g.community }

// Seed returns the deck seed the hand was dealt from.
func (g *Game) Seed() int64 { return g.seed }

// SmallBlind returns the small blind size.
func (g *Game) SmallBlind() currency.Currency { return g.smallBlind }

// BigBlind returns the big blind size.
func (g *Game) BigBlind() currency.Currency { return g.bigBlind }

// MinRaise returns the minimum raise increment over a call.
func (g *Game) MinRaise() currency.Currency { return g.bigBlind }

// Pot returns the chips committed by all players this hand.
func (g *Game) Pot() currency.Currency {
	var pot currency.Currency
	for _, p := range g.players {
		pot += p.CommittedTotal()
	}
	return pot
}

// HighestRoundBet returns the largest bet committed in the current
// betting round.
func (g *Game) HighestRoundBet() currency.Currency {
	var highest currency.Currency
	for _, p := range g.players {
		if p.RoundBet() > highest {
			highest = p.RoundBet()
		}
	}
	return highest
}

// CallAmount returns the chips p must add to match the highest bet.
func (g *Game) CallAmount(p *Player) currency.Currency {
	return g.HighestRoundBet() - p.RoundBet()
}

// IsFinished reports whether the hand has been paid out.
func (g *Game) IsFinished() bool { return g.state == Finished }

// Winner returns the hand's result, or nil while the hand is ongoing.
func (g *Game) Winner() *Winner { return g.winner }

// Gamelog returns the hand history accumulated so far.
func (g *Game) Gamelog() []LogEntry { return g.gameLog }

// TakeGamelog returns the accumulated hand history and clears it.
func (g *Game) TakeGamelog() []LogEntry {
	entries := g.gameLog
	g.gameLog = nil
	return entries
}

func (g *Game) log(player int, text string) {
	g.gameLog = append(g.gameLog, LogEntry{Player: player, Text: text})
	g.logger.Debug(text, "player", player, "phase", g.phase)
}
