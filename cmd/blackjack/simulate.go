package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/simulator"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// SimulateCmd plays rounds headlessly with a threshold strategy
type SimulateCmd struct {
	Rounds  int    `short:"n" help:"Number of rounds to play (default from config)"`
	Workers int    `short:"w" help:"Parallel workers (default from config)"`
	StandOn int    `help:"Hold once the player's best value reaches this (2-21)"`
	Seed    int64  `help:"RNG seed (0 for random)"`
	Output  string `short:"o" help:"Also write the report to this file" type:"path"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}

	settings := *cfg.Simulate
	if c.Rounds != 0 {
		settings.Rounds = c.Rounds
	}
	if c.Workers != 0 {
		settings.Workers = c.Workers
	}
	if c.StandOn != 0 {
		settings.StandOn = c.StandOn
	}
	if c.Seed != 0 {
		settings.Seed = c.Seed
	}
	if settings.StandOn < 2 || settings.StandOn > 21 {
		return fmt.Errorf("stand-on must be between 2 and 21, got %d", settings.StandOn)
	}

	logger, err := shared.SetupLogger(os.Stderr, cfg.LogLevel, "SIM")
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	sim := simulator.New(simulator.Config{
		Rounds:   settings.Rounds,
		Workers:  settings.Workers,
		Seed:     settings.Seed,
		Strategy: simulator.Threshold{StandOn: settings.StandOn},
		Clock:    quartz.NewReal(),
		Logger:   logger,
	})

	res, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ Blackjack simulation ♦ ♣ "))
	simulator.PrintSummary(os.Stdout, res, settings.StandOn)

	if c.Output != "" {
		err := fileutil.WriteAtomic(c.Output, 0o644, func(w io.Writer) error {
			simulator.PrintSummary(w, res, settings.StandOn)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Report written", "path", c.Output)
	}
	return nil
}
