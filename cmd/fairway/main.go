// cmd/fairway/main.go
//
// This is the entry point for the Fairway CLI.
//
// Flow:
// 1. Make sure ~/.fairway exists with a default config.yaml
// 2. Load config, open the log file and the round store
// 3. Launch the TUI

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/fairway/internal/config"
	"github.com/kingrea/fairway/internal/logging"
	"github.com/kingrea/fairway/internal/store"
	"github.com/kingrea/fairway/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir, err := config.DefaultDataDir()
	if err != nil {
		return err
	}
	if err := config.InitDataDir(dataDir); err != nil {
		return fmt.Errorf("initializing %s: %w", dataDir, err)
	}

	cfg, err := config.NewConfig(dataDir)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogsDir(), cfg.LogLevel())
	if err != nil {
		return err
	}
	defer log.Close()

	backend, err := store.OpenBackend(cfg)
	if err != nil {
		log.WithError(err).Error("Cannot open storage")
		return err
	}
	rounds, err := store.Open(backend, log)
	if err != nil {
		backend.Close()
		log.WithError(err).Error("Cannot load rounds")
		return err
	}
	defer rounds.Close()

	app, err := tui.NewApp(cfg, rounds, log)
	if err != nil {
		return err
	}

	// Run blocks until the user quits
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	log.WithComponent("main").Info("Fairway closed")
	return nil
}
