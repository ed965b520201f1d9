package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"rocket/internal/config"
	"rocket/internal/editor"
	"rocket/internal/keymap"
	"rocket/internal/system"
	"rocket/internal/ui"
	"rocket/internal/watch"
)

// Options carries what the editor needs at startup.
type Options struct {
	Paths  []string
	Config config.Config
}

// Start opens the requested files and runs the TUI until quit.
func Start(opts Options) error {
	m, cleanup, err := newModel(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// newModel builds the root model; cleanup releases the file watcher.
func newModel(opts Options) (tea.Model, func(), error) {
	c := opts.Config
	ed, err := editor.Open(opts.Paths, editor.Options{TabWidth: c.TabWidth, CreateMissing: c.CreateMissing})
	if err != nil {
		return nil, nil, err
	}
	km, err := keymap.Default().WithOverrides(c.Bindings)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	w, err := watch.New()
	if err != nil {
		// editing still works without change notices
		system.Logger.Warn("file watching disabled", "err", err)
		w = nil
	} else {
		cleanup = func() { _ = w.Close() }
	}

	system.Logger.Info("starting", "paths", opts.Paths, "buffers", ed.Len(), "theme", c.Theme, "tab_width", c.TabWidth)
	return ui.New(ui.Options{Editor: ed, KeyMap: km, Theme: c.Theme, Watcher: w}), cleanup, nil
}
