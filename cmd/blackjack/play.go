package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd runs the interactive terminal game
type PlayCmd struct {
	Seed    int64  `help:"RNG seed for reproducible deals (0 for random)"`
	NoColor bool   `help:"Disable colored output"`
	LogFile string `help:"Write the debug log here instead of the configured file"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}

	logPath := cfg.LogFile
	if c.LogFile != "" {
		logPath = c.LogFile
	}
	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := shared.SetupLogger(logFile, cfg.LogLevel, "PLAY")
	if err != nil {
		return err
	}

	if c.NoColor || !*cfg.Play.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	seed := cfg.Play.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}
	seed = randutil.Resolve(seed, quartz.NewReal())
	logger.Info("Starting session", "seed", seed, "version", version)

	model := tui.New(randutil.New(seed), logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	s := model.Session()
	logger.Info("Session finished", "rounds", s.Rounds, "won", s.PlayerWins, "lost", s.DealerWins, "tied", s.Ties)
	return nil
}
