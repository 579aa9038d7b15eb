package lobby

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poks/internal/currency"
	"poks/internal/game"
)

func TestBuilderRejectsShortTables(t *testing.T) {
	_, err := NewBuilder().AddCPUSeats(1, currency.New(100, 0)).Build()
	var insufficient *game.InsufficientPlayersError
	require.ErrorAs(t, err, &insufficient)

	_, err = NewBuilder().AddCPUSeats(game.MaxPlayers+1, currency.New(100, 0)).Build()
	var tooMany *game.TooManyPlayersError
	require.ErrorAs(t, err, &tooMany)
}

func TestBuildDealsFirstHand(t *testing.T) {
	l, err := NewBuilder().
		WithSeed(17).
		AddCPUSeats(3, currency.New(100, 0)).
		Build()
	require.NoError(t, err)

	require.NotNil(t, l.Game())
	assert.Equal(t, 0, l.Game().Dealer())
	assert.Equal(t, 0, l.GamesPlayed())
	assert.Equal(t, int64(17), l.Seed())
	assert.Equal(t, currency.New(1, 50), l.Game().Pot())
}

func TestTickBeforeFirstDeal(t *testing.T) {
	l := &Lobby{}
	assert.ErrorIs(t, l.TickGame(), game.ErrGameNotStarted)
}

// playHand ticks until the current hand finishes. It reports false when
// the hand ended in an unsupported split pot.
func playHand(t *testing.T, l *Lobby) bool {
	t.Helper()
	for steps := 0; !l.Game().IsFinished(); steps++ {
		require.Less(t, steps, 10000, "hand did not terminate")
		if err := l.TickGame(); err != nil {
			require.ErrorIs(t, err, game.ErrSplitPotUnsupported)
			return false
		}
	}
	return true
}

func TestDealerRotatesAcrossHands(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		l, err := NewBuilder().
			WithSeed(seed).
			AddCPUSeats(4, currency.New(100, 0)).
			Build()
		require.NoError(t, err)

		total := currency.New(400, 0)
		clean := true
		for hand := 0; hand < 3 && clean; hand++ {
			assert.Equal(t, hand%4, l.Game().Dealer(), "dealer must rotate with the hand count")
			clean = playHand(t, l)
			if !clean {
				break
			}
			assert.Equal(t, hand+1, l.GamesPlayed())

			sum := currency.Zero
			for _, s := range l.Seats() {
				sum += s.Balance()
			}
			assert.Equal(t, total, sum, "chips must be conserved between hands")

			require.NoError(t, l.StartNewGame())
		}
		if !clean {
			continue
		}

		entries := l.ActionLog()
		assert.NotEmpty(t, entries)
		winners := 0
		for _, e := range entries {
			if e.Player == game.TablePlayer {
				continue
			}
			assert.GreaterOrEqual(t, e.Player, 0)
			assert.Less(t, e.Player, 4)
		}
		for _, e := range entries {
			if e.Player == game.TablePlayer && strings.HasPrefix(e.Text, "Player ") {
				winners++
			}
		}
		assert.GreaterOrEqual(t, winners, 3, "each finished hand logs its winner")
		return
	}
	t.Fatal("no seed completed three hands without a split pot")
}

func TestTickOnFinishedHand(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		l, err := NewBuilder().
			WithSeed(seed).
			AddCPUSeats(2, currency.New(100, 0)).
			Build()
		require.NoError(t, err)
		if !playHand(t, l) {
			continue
		}
		assert.ErrorIs(t, l.TickGame(), game.ErrGameFinished)
		return
	}
	t.Fatal("no seed completed a hand without a split pot")
}

func TestRunStopsAfterRequestedHands(t *testing.T) {
	mockClock := quartz.NewMock(t)
	l, err := NewBuilder().
		WithSeed(23).
		WithClock(mockClock).
		AddCPUSeats(3, currency.New(100, 0)).
		Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx, time.Millisecond, 2) }()

	for {
		select {
		case err := <-done:
			if err != nil && errors.Is(err, game.ErrSplitPotUnsupported) {
				t.Skip("seed produced a split pot")
			}
			require.NoError(t, err)
			assert.Equal(t, 2, l.GamesPlayed())
			assert.NotEmpty(t, l.ActionLog())
			return
		default:
			mockClock.Advance(time.Millisecond).MustWait(ctx)
		}
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	mockClock := quartz.NewMock(t)
	l, err := NewBuilder().
		WithSeed(23).
		WithClock(mockClock).
		AddCPUSeats(3, currency.New(100, 0)).
		Build()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx, time.Second, 0) }()

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
