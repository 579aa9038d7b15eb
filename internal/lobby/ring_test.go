package lobby

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poks/internal/game"
)

func TestActionRingDropsOldestEntries(t *testing.T) {
	r := newActionRing(5)
	for i := 0; i < 8; i++ {
		r.push(game.LogEntry{Player: i, Text: fmt.Sprintf("entry %d", i)})
	}

	require.Equal(t, 5, r.len())
	got := r.snapshot()
	require.Len(t, got, 5)
	assert.Equal(t, 3, got[0].Player, "oldest surviving entry first")
	assert.Equal(t, 7, got[4].Player, "newest entry last")
}

func TestActionRingBelowCapacity(t *testing.T) {
	r := newActionRing(5)
	r.push(game.LogEntry{Player: game.TablePlayer, Text: "Phase: Preflop"})
	r.push(game.LogEntry{Player: 0, Text: "folds"})

	got := r.snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, "Phase: Preflop", got[0].Text)
	assert.Equal(t, "folds", got[1].Text)
}
