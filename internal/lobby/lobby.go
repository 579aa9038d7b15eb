// Package lobby runs games back to back over a persistent set of seats,
// rotating the dealer button and collecting hand history.
package lobby

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"poks/internal/currency"
	"poks/internal/game"
	"poks/internal/randutil"
)

// ActionLogCapacity bounds the retained hand history.
const ActionLogCapacity = 2000

type seatSpec struct {
	balance  currency.Currency
	strategy game.Strategy // nil picks a lobby-seeded CPU
}

// Builder assembles a lobby. Seats are added in table order; Build deals
// the first hand.
type Builder struct {
	specs      []seatSpec
	seed       int64
	seeded     bool
	smallBlind currency.Currency
	bigBlind   currency.Currency
	logger     *log.Logger
	clock      quartz.Clock
}

// NewBuilder returns a builder with default blinds, a random seed, a
// discarded logger and the real clock.
func NewBuilder() *Builder {
	return &Builder{
		smallBlind: game.DefaultSmallBlind,
		bigBlind:   game.DefaultBigBlind,
		logger:     log.New(io.Discard),
		clock:      quartz.NewReal(),
	}
}

// WithSeed fixes the seed every deck and CPU decision derives from,
// making the whole match reproducible.
func (b *Builder) WithSeed(seed int64) *Builder {
	b.seed = seed
	b.seeded = true
	return b
}

// WithBlinds overrides the default blind sizes.
func (b *Builder) WithBlinds(small, big currency.Currency) *Builder {
	b.smallBlind = small
	b.bigBlind = big
	return b
}

// WithLogger attaches a structured logger.
func (b *Builder) WithLogger(logger *log.Logger) *Builder {
	b.logger = logger
	return b
}

// WithClock overrides the clock Run paces itself with.
func (b *Builder) WithClock(clock quartz.Clock) *Builder {
	b.clock = clock
	return b
}

// AddSeat adds a seat with an externally driven strategy.
func (b *Builder) AddSeat(balance currency.Currency, strategy game.Strategy) *Builder {
	b.specs = append(b.specs, seatSpec{balance: balance, strategy: strategy})
	return b
}

// AddCPUSeats adds n computer-controlled seats.
func (b *Builder) AddCPUSeats(n int, balance currency.Currency) *Builder {
	for i := 0; i < n; i++ {
		b.specs = append(b.specs, seatSpec{balance: balance})
	}
	return b
}

// Build creates the lobby and deals the first hand.
func (b *Builder) Build() (*Lobby, error) {
	if len(b.specs) < 2 {
		return nil, &game.InsufficientPlayersError{Count: len(b.specs)}
	}
	if len(b.specs) > game.MaxPlayers {
		return nil, &game.TooManyPlayersError{Requested: len(b.specs), Max: game.MaxPlayers}
	}

	seed := b.seed
	if !b.seeded {
		seed = randutil.Seed()
	}
	rng := randutil.New(seed)

	seats := make([]*game.Seat, len(b.specs))
	for i, spec := range b.specs {
		strategy := spec.strategy
		if strategy == nil {
			strategy = game.NewCPU(rng)
		}
		seats[i] = game.NewSeat(spec.balance, strategy)
	}

	l := &Lobby{
		seats:      seats,
		rng:        rng,
		seed:       seed,
		smallBlind: b.smallBlind,
		bigBlind:   b.bigBlind,
		logger:     b.logger,
		clock:      b.clock,
		actionLog:  newActionRing(ActionLogCapacity),
	}
	if err := l.startGame(); err != nil {
		return nil, err
	}
	return l, nil
}

// Lobby owns the seats and the hand in progress. It is driven from a
// single goroutine; concurrent readers may only touch seat balances.
type Lobby struct {
	seats       []*game.Seat
	current     *game.Game
	gamesPlayed int

	rng  *rand.Rand
	seed int64

	smallBlind currency.Currency
	bigBlind   currency.Currency

	logger    *log.Logger
	clock     quartz.Clock
	actionLog *actionRing
}

// Seats returns the seats in table order.
func (l *Lobby) Seats() []*game.Seat { return l.seats }

// Game returns the hand in progress.
func (l *Lobby) Game() *game.Game { return l.current }

// GamesPlayed returns the number of completed hands.
func (l *Lobby) GamesPlayed() int { return l.gamesPlayed }

// Seed returns the seed the match derives from.
func (l *Lobby) Seed() int64 { return l.seed }

// ActionLog returns the retained hand history, oldest first.
func (l *Lobby) ActionLog() []game.LogEntry { return l.actionLog.snapshot() }

func (l *Lobby) startGame() error {
	dealer := l.gamesPlayed % len(l.seats)
	g, err := game.Build(l.seats, dealer, l.rng.Int64(),
		game.WithBlinds(l.smallBlind, l.bigBlind),
		game.WithLogger(l.logger))
	if err != nil {
		return err
	}
	l.current = g
	l.logger.Info("new hand dealt", "hand", l.gamesPlayed+1, "dealer", dealer, "seed", g.Seed())
	return nil
}

// StartNewGame rotates the dealer button and deals the next hand.
func (l *Lobby) StartNewGame() error {
	return l.startGame()
}

// TickGame advances the current hand by one step, pulling decisions from
// seat strategies and draining the hand history into the action log.
func (l *Lobby) TickGame() error {
	if l.current == nil {
		return game.ErrGameNotStarted
	}
	if l.current.IsFinished() {
		return game.ErrGameFinished
	}
	err := l.current.Tick()
	l.drain()
	if err != nil {
		return err
	}
	if l.current.IsFinished() {
		l.gamesPlayed++
	}
	return nil
}

func (l *Lobby) drain() {
	for _, e := range l.current.TakeGamelog() {
		l.actionLog.push(e)
	}
}

// Run plays hands until the context is cancelled or, when hands is
// positive, that many hands have completed. The interval paces strategy
// polling; a seat that cannot cover the blinds ends the match cleanly.
func (l *Lobby) Run(ctx context.Context, interval time.Duration, hands int) error {
	ticker := l.clock.NewTicker(interval, "lobby", "run")
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := l.TickGame(); err != nil {
			return err
		}
		if !l.current.IsFinished() {
			continue
		}
		if hands > 0 && l.gamesPlayed >= hands {
			return nil
		}
		if err := l.StartNewGame(); err != nil {
			var funds *game.InsufficientFundsError
			if errors.As(err, &funds) {
				l.logger.Info("seat cannot cover the blinds, match over", "hands", l.gamesPlayed)
				return nil
			}
			return err
		}
	}
}
