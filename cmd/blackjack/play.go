package main

import (
	"fmt"
	"os"

	"github.com/AP-2007/Black-Jack/internal/config"
	"github.com/AP-2007/Black-Jack/internal/game"
	"github.com/AP-2007/Black-Jack/internal/randutil"
	"github.com/AP-2007/Black-Jack/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

type PlayCmd struct {
	Seed     int64  `help:"Shuffle seed (overrides config, 0 for random)"`
	Theme    string `help:"Table theme: felt, dark or light (overrides config)"`
	NoMouse  bool   `help:"Disable mouse buttons, keyboard only"`
	NoColor  bool   `help:"Disable colors"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	LogFile  string `help:"Log file path (overrides config)"`
}

func (p *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig(func(cfg *config.Config) {
		if p.Seed != 0 {
			cfg.Game.Seed = p.Seed
		}
		if p.Theme != "" {
			cfg.UI.Theme = p.Theme
		}
		if p.NoMouse {
			mouse := false
			cfg.UI.Mouse = &mouse
		}
		if p.LogLevel != "" {
			cfg.UI.LogLevel = p.LogLevel
		}
		if p.LogFile != "" {
			cfg.UI.LogFile = p.LogFile
		}
	})
	if err != nil {
		return err
	}

	// The table owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "MAIN",
		Level:           cfg.Level(),
	})

	clock := quartz.NewReal()
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = randutil.Seed(clock)
	}

	logger.Info("Starting blackjack",
		"version", version,
		"seed", seed,
		"theme", cfg.UI.Theme,
		"mouse", cfg.MouseEnabled())

	engine := game.NewEngine(
		game.WithRNG(randutil.New(seed)),
		game.WithLogger(logger),
		game.WithClock(clock),
	)

	tui.SetupColor(p.NoColor)
	model := tui.New(engine, logger, tui.Options{
		Theme: cfg.UI.Theme,
		Mouse: cfg.MouseEnabled(),
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	tally := engine.Tally()
	logger.Info("Session finished", "rounds", engine.Snapshot().Round, "wins", tally.Wins, "losses", tally.Losses)
	fmt.Printf("Wins: %d  Losses: %d\n", tally.Wins, tally.Losses)
	return nil
}
