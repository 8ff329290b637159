package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/livery-popup-control/internal/backend"
	"github.com/atomicstack/livery-popup-control/internal/game"
	"github.com/atomicstack/livery-popup-control/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	WorldPath  string
	Company    int
	Group      int
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	if _, err := os.Stat(cfg.WorldPath); err != nil {
		return fmt.Errorf("world snapshot: %w", err)
	}

	company := game.InvalidCompany
	if cfg.Company >= 0 {
		company = game.CompanyID(cfg.Company)
	}
	group := game.InvalidGroup
	if cfg.Group >= 0 {
		group = game.GroupID(cfg.Group)
	}

	watcher := backend.NewWatcher(cfg.WorldPath, 1500*time.Millisecond)
	defer watcher.Stop()
	outbox := game.NewOutbox(cfg.WorldPath + ".commands")
	model := ui.NewModel(cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, watcher, outbox, company, group)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
