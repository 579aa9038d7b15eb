// Package config loads match configuration from HCL files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"poks/internal/currency"
	"poks/internal/game"
)

// Config is the complete match configuration.
type Config struct {
	Match MatchSettings `hcl:"match,block"`
	Seats []SeatConfig  `hcl:"seat,block"`
}

// MatchSettings contains table-level configuration. Monetary values are
// given in cents.
type MatchSettings struct {
	Hands           int    `hcl:"hands,optional"`
	SmallBlindCents int64  `hcl:"small_blind_cents,optional"`
	BigBlindCents   int64  `hcl:"big_blind_cents,optional"`
	TickInterval    string `hcl:"tick_interval,optional"`
	Seed            int64  `hcl:"seed,optional"`
	LogLevel        string `hcl:"log_level,optional"`
	LogFile         string `hcl:"log_file,optional"`
}

// SeatConfig defines one seat at the table.
type SeatConfig struct {
	Name       string `hcl:"name,label"`
	Kind       string `hcl:"kind,optional"` // cpu or human
	BuyInCents int64  `hcl:"buy_in_cents,optional"`
}

// Seat kinds.
const (
	KindCPU   = "cpu"
	KindHuman = "human"
)

// Default returns the configuration used when no file is present: four
// computer seats with a hundred credits each.
func Default() *Config {
	cfg := &Config{
		Match: MatchSettings{
			Hands:           10,
			SmallBlindCents: 50,
			BigBlindCents:   100,
			TickInterval:    "10ms",
			LogLevel:        "info",
		},
	}
	for i := 1; i <= 4; i++ {
		cfg.Seats = append(cfg.Seats, SeatConfig{
			Name:       fmt.Sprintf("cpu%d", i),
			Kind:       KindCPU,
			BuyInCents: 100_00,
		})
	}
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Match.Hands == 0 {
		c.Match.Hands = 10
	}
	if c.Match.SmallBlindCents == 0 {
		c.Match.SmallBlindCents = 50
	}
	if c.Match.BigBlindCents == 0 {
		c.Match.BigBlindCents = 100
	}
	if c.Match.TickInterval == "" {
		c.Match.TickInterval = "10ms"
	}
	if c.Match.LogLevel == "" {
		c.Match.LogLevel = "info"
	}
	for i := range c.Seats {
		if c.Seats[i].Kind == "" {
			c.Seats[i].Kind = KindCPU
		}
		if c.Seats[i].BuyInCents == 0 {
			// 100 big blinds
			c.Seats[i].BuyInCents = c.Match.BigBlindCents * 100
		}
	}
}

// Validate checks the configuration for playability.
func (c *Config) Validate() error {
	if len(c.Seats) < 2 {
		return fmt.Errorf("at least two seats must be configured, have %d", len(c.Seats))
	}
	if len(c.Seats) > game.MaxPlayers {
		return fmt.Errorf("too many seats: %d (max %d)", len(c.Seats), game.MaxPlayers)
	}
	if c.Match.SmallBlindCents <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Match.BigBlindCents <= c.Match.SmallBlindCents {
		return fmt.Errorf("big blind must be greater than the small blind")
	}
	if c.Match.Hands < 0 {
		return fmt.Errorf("hands must not be negative")
	}
	if _, err := c.Interval(); err != nil {
		return fmt.Errorf("invalid tick_interval: %w", err)
	}
	for _, seat := range c.Seats {
		if seat.Kind != KindCPU && seat.Kind != KindHuman {
			return fmt.Errorf("seat %s: unknown kind %q", seat.Name, seat.Kind)
		}
		if seat.BuyInCents < c.Match.BigBlindCents {
			return fmt.Errorf("seat %s: buy-in must cover at least the big blind", seat.Name)
		}
	}
	return nil
}

// SmallBlind returns the small blind as currency.
func (c *Config) SmallBlind() currency.Currency {
	return currency.Currency(c.Match.SmallBlindCents)
}

// BigBlind returns the big blind as currency.
func (c *Config) BigBlind() currency.Currency {
	return currency.Currency(c.Match.BigBlindCents)
}

// BuyIn returns the seat's buy-in as currency.
func (s SeatConfig) BuyIn() currency.Currency {
	return currency.Currency(s.BuyInCents)
}

// Interval returns the parsed strategy polling interval.
func (c *Config) Interval() (time.Duration, error) {
	return time.ParseDuration(c.Match.TickInterval)
}
