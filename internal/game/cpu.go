package game

import (
	"math/rand/v2"

	"poks/internal/currency"
	"poks/internal/randutil"
)

// CPU action weights, in percent. Raises split into a frequent small
// bump and a rare large one.
const (
	cpuFoldWeight     = 10
	cpuCallWeight     = 60
	cpuRaiseBigWeight = 1

	cpuRaiseSmallCents = 50
	cpuRaiseBigCents   = 500
)

// CPU is a weighted-random strategy. It folds 10% of the time, calls or
// checks 60%, makes a small raise 29% and a big raise 1%. Raises it
// cannot afford degrade to calls, and calls it cannot afford degrade to
// folds, so the CPU never submits an invalid action.
type CPU struct {
	rng *rand.Rand
}

// NewCPU creates a CPU strategy drawing from rng. A nil rng gets a fresh
// entropy-seeded one.
func NewCPU(rng *rand.Rand) *CPU {
	if rng == nil {
		rng = randutil.New(randutil.Seed())
	}
	return &CPU{rng: rng}
}

// Act implements Strategy. It always returns a decision.
func (c *CPU) Act(g *Game, p *Player) *Action {
	roll := c.rng.IntN(100)
	switch {
	case roll < cpuFoldWeight:
		// Don't fold when checking is free.
		if g.CallAmount(p) == currency.Zero {
			return c.call(g, p)
		}
		a := NewFold()
		return &a
	case roll < cpuFoldWeight+cpuCallWeight:
		return c.call(g, p)
	case roll < 100-cpuRaiseBigWeight:
		return c.raise(g, p, currency.Currency(cpuRaiseSmallCents))
	default:
		return c.raise(g, p, currency.Currency(cpuRaiseBigCents))
	}
}

func (c *CPU) call(g *Game, p *Player) *Action {
	need := g.CallAmount(p)
	if need > p.Seat().Balance() {
		a := NewFold()
		return &a
	}
	a := NewCall(need)
	return &a
}

func (c *CPU) raise(g *Game, p *Player, bump currency.Currency) *Action {
	if g.State() != RaiseAllowed {
		return c.call(g, p)
	}
	if bump < g.MinRaise() {
		bump = g.MinRaise()
	}
	total := g.CallAmount(p) + bump
	if total > p.Seat().Balance() {
		return c.call(g, p)
	}
	a := NewRaise(total)
	return &a
}
