package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"poks/internal/config"
	"poks/internal/game"
	"poks/internal/lobby"
)

// version is set by ldflags during build
var version = "dev"

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#5F5FD7")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"poks.hcl" help:"Path to the match configuration file"`
	Hands   int              `help:"Override the number of hands to play (0 plays until interrupted)"`
	Seats   int              `help:"Override the table with this many computer seats"`
	Seed    int64            `help:"Seed for a reproducible match"`
	Debug   bool             `short:"d" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poks"),
		kong.Description("Texas Hold'em match runner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	ctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	applyOverrides(cfg, cli)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := buildLogger(cfg, cli.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	fmt.Println(titleStyle.Render(" ♠ ♥ poks ♦ ♣ "))
	fmt.Println()

	builder := lobby.NewBuilder().
		WithBlinds(cfg.SmallBlind(), cfg.BigBlind()).
		WithLogger(logger)
	if cfg.Match.Seed != 0 {
		builder.WithSeed(cfg.Match.Seed)
	}
	for _, seat := range cfg.Seats {
		if seat.Kind == config.KindHuman {
			logger.Warn("interactive seats are not supported in match mode, seating a computer instead", "seat", seat.Name)
		}
		builder.AddCPUSeats(1, seat.BuyIn())
	}

	l, err := builder.Build()
	if err != nil {
		return err
	}
	logger.Info("match started",
		"seats", len(cfg.Seats),
		"hands", cfg.Match.Hands,
		"seed", l.Seed())

	interval, err := cfg.Interval()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.Run(ctx, interval, cfg.Match.Hands)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, game.ErrSplitPotUnsupported) {
			logger.Error("match aborted on a tied showdown", "error", err)
		} else {
			return err
		}
	}

	printResults(cfg, l)
	return nil
}

func applyOverrides(cfg *config.Config, cli *CLI) {
	if cli.Hands > 0 {
		cfg.Match.Hands = cli.Hands
	}
	if cli.Seed != 0 {
		cfg.Match.Seed = cli.Seed
	}
	if cli.Debug {
		cfg.Match.LogLevel = "debug"
	}
	if cli.Seats > 0 {
		buyIn := cfg.Match.BigBlindCents * 100
		cfg.Seats = nil
		for i := 1; i <= cli.Seats; i++ {
			cfg.Seats = append(cfg.Seats, config.SeatConfig{
				Name:       fmt.Sprintf("cpu%d", i),
				Kind:       config.KindCPU,
				BuyInCents: buyIn,
			})
		}
	}
}

func buildLogger(cfg *config.Config, debug bool) (*log.Logger, func(), error) {
	out := os.Stderr
	closeLog := func() {}
	if cfg.Match.LogFile != "" {
		f, err := os.OpenFile(cfg.Match.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeLog = func() { _ = f.Close() }
	}

	level, err := log.ParseLevel(cfg.Match.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
		Prefix:          "poks",
	})
	return logger, closeLog, nil
}

func printResults(cfg *config.Config, l *lobby.Lobby) {
	fmt.Printf("hands played: %d (seed %d)\n\n", l.GamesPlayed(), l.Seed())
	for _, e := range l.ActionLog() {
		fmt.Println(e)
	}
	fmt.Println()
	for i, seat := range l.Seats() {
		name := fmt.Sprintf("seat %d", i)
		if i < len(cfg.Seats) && cfg.Seats[i].Name != "" {
			name = cfg.Seats[i].Name
		}
		fmt.Printf("%-12s %s\n", name, seat.Balance())
	}
}
