package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/staggered-menu/internal/backend"
	"github.com/atomicstack/staggered-menu/internal/menu"
	"github.com/atomicstack/staggered-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// reloadDelay collapses editor save bursts into a single reload.
const reloadDelay = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	UI       ui.Options
	MenuFile string
	Watch    bool
}

// loadMenu adapts menu.ReadDocument to the watcher's loader signature.
func loadMenu(path string) (interface{}, error) {
	return menu.ReadDocument(path)
}

// NewWatcher starts watching the menu file when cfg asks for it. It returns
// nil when watching is disabled.
func NewWatcher(cfg Config) (*backend.Watcher, error) {
	if !cfg.Watch || cfg.MenuFile == "" {
		return nil, nil
	}
	w, err := backend.NewWatcher(cfg.MenuFile, reloadDelay, loadMenu)
	if err != nil {
		return nil, fmt.Errorf("watch menu file: %w", err)
	}
	return w, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	watcher, err := NewWatcher(cfg)
	if err != nil {
		return err
	}
	if watcher != nil {
		defer watcher.Stop()
	}
	model := ui.NewModel(cfg.UI, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
