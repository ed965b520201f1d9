package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"rocket/internal/editor"
	"rocket/internal/keymap"
	"rocket/internal/popup"
	"rocket/internal/system"
	"rocket/internal/watch"
)

// Options configures the editor model.
type Options struct {
	Editor *editor.Editor
	KeyMap keymap.KeyMap
	// Theme is a chroma style name.
	Theme string
	// Watcher is optional; without it external changes go unnoticed.
	Watcher *watch.Watcher
}

// Model for TUI
type model struct {
	ed      *editor.Editor
	popups  popup.Stack
	keys    keymap.KeyMap
	theme   Theme
	watcher *watch.Watcher
	help    help.Model

	width  int
	height int

	// footer state
	now          time.Time
	git          system.GitStatus
	lastGitCheck time.Time

	// a second quit press exits despite unsaved buffers
	quitArmed bool
	quitting  bool

	// rendered help body keyed by width
	helpCache map[int][]string
}

// New builds the root model around an opened editor.
func New(opts Options) tea.Model {
	km := opts.KeyMap
	if len(km.Quit.Keys()) == 0 {
		km = keymap.Default()
	}
	if opts.Watcher != nil {
		opts.Watcher.Track(opts.Editor.Paths())
	}
	return model{
		ed:        opts.Editor,
		keys:      km,
		theme:     NewTheme(opts.Theme),
		watcher:   opts.Watcher,
		help:      help.New(),
		now:       time.Now(),
		helpCache: map[int][]string{},
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForChange(m.watcher), gitStatusCmd(m.ed.Active().Path()))
}

// contentHeight is the number of text rows between header and footer.
func (m model) contentHeight() int {
	return max(1, m.height-2)
}
