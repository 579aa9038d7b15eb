package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poks/internal/currency"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poks.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Seats, 4)
	assert.Equal(t, 10, cfg.Match.Hands)
	assert.Equal(t, currency.New(0, 50), cfg.SmallBlind())
	assert.Equal(t, currency.New(1, 0), cfg.BigBlind())
	assert.Equal(t, currency.New(100, 0), cfg.Seats[0].BuyIn())

	interval, err := cfg.Interval()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, interval)
}

func TestLoadParsesMatchFile(t *testing.T) {
	path := writeConfig(t, `
match {
  hands             = 50
  small_blind_cents = 100
  big_blind_cents   = 200
  tick_interval     = "1ms"
  seed              = 99
  log_level         = "debug"
}

seat "alice" {
  kind         = "human"
  buy_in_cents = 50000
}

seat "cpu1" {}
seat "cpu2" {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.Match.Hands)
	assert.Equal(t, int64(99), cfg.Match.Seed)
	assert.Equal(t, currency.New(1, 0), cfg.SmallBlind())
	assert.Equal(t, currency.New(2, 0), cfg.BigBlind())

	require.Len(t, cfg.Seats, 3)
	assert.Equal(t, "alice", cfg.Seats[0].Name)
	assert.Equal(t, KindHuman, cfg.Seats[0].Kind)
	assert.Equal(t, currency.New(500, 0), cfg.Seats[0].BuyIn())

	// Unset seat fields pick up defaults scaled from the big blind.
	assert.Equal(t, KindCPU, cfg.Seats[1].Kind)
	assert.Equal(t, currency.New(200, 0), cfg.Seats[1].BuyIn())
}

func TestLoadRejectsBadHCL(t *testing.T) {
	path := writeConfig(t, `match { hands = `)
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one seat", func(c *Config) { c.Seats = c.Seats[:1] }},
		{"inverted blinds", func(c *Config) { c.Match.SmallBlindCents = 200 }},
		{"negative hands", func(c *Config) { c.Match.Hands = -1 }},
		{"bad interval", func(c *Config) { c.Match.TickInterval = "soon" }},
		{"unknown kind", func(c *Config) { c.Seats[0].Kind = "psychic" }},
		{"short buy-in", func(c *Config) { c.Seats[0].BuyInCents = 10 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
