package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"rocket/internal/buffer"
	"rocket/internal/editor"
	"rocket/internal/keymap"
	"rocket/internal/keys"
	"rocket/internal/popup"
	"rocket/internal/system"
)

const (
	// writes within this window after our own save are not reported
	ownWriteWindow = time.Second
	gitInterval    = 10 * time.Second
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = popupWidth - 4
		m.ed.SetViewHeight(m.contentHeight())
		return m, nil
	case tea.KeyMsg:
		var cmds []tea.Cmd
		for _, k := range keys.FromTea(msg) {
			cmds = append(cmds, m.handleKey(k))
			if m.quitting {
				return m, tea.Quit
			}
		}
		return m, tea.Batch(cmds...)
	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		if m.quitting {
			return m, tea.Quit
		}
		return m, cmd
	case tickMsg:
		m.now = time.Time(msg)
		// Throttle git checks
		var cmd tea.Cmd
		if m.lastGitCheck.IsZero() || m.now.Sub(m.lastGitCheck) >= gitInterval {
			m.lastGitCheck = m.now
			cmd = gitStatusCmd(m.ed.Active().Path())
		}
		return m, tea.Batch(tickCmd(), cmd)
	case gitStatusMsg:
		if msg.path == m.ed.Active().Path() {
			m.git = msg.status
		}
		return m, nil
	case fileChangedMsg:
		m.fileChanged(msg.path)
		return m, waitForChange(m.watcher)
	case watchClosedMsg:
		return m, nil
	}
	return m, nil
}

// handleKey routes one key: the quit binding first, then the top popup if
// any, then global commands, and finally the active buffer.
func (m *model) handleKey(k keys.Key) tea.Cmd {
	cmd := m.keys.Lookup(k)
	if cmd == keymap.Quit {
		return m.requestQuit()
	}
	m.quitArmed = false

	if !m.popups.Empty() {
		before := m.ed.Active().Path()
		m.popups.HandleKey(k, loggingTarget{m.ed})
		if m.ed.Active().Path() != before {
			return m.activeChanged()
		}
		return nil
	}

	switch cmd {
	case keymap.Save:
		return m.save()
	case keymap.SaveAs:
		m.push(popup.New(popup.SaveFile, m.ed.Active().Path()))
	case keymap.Open:
		m.push(popup.New(popup.LoadFile, ""))
	case keymap.Help:
		m.push(popup.NewHelp())
	case keymap.NextBuffer:
		m.ed.NextBuffer()
		return m.activeChanged()
	case keymap.PrevBuffer:
		m.ed.PreviousBuffer()
		return m.activeChanged()
	default:
		m.ed.DispatchKey(k)
	}
	return nil
}

func (m *model) requestQuit() tea.Cmd {
	if n := m.ed.DirtyCount(); n > 0 && !m.quitArmed {
		m.quitArmed = true
		noun := "buffer has"
		if n > 1 {
			noun = "buffers have"
		}
		m.push(popup.NewDialogue(fmt.Sprintf(
			"%d %s unsaved changes. Press %s again to quit anyway.", n, noun, m.keys.Quit.Help().Key)))
		return nil
	}
	system.Logger.Info("quit", "dirty", m.ed.DirtyCount())
	m.quitting = true
	return tea.Quit
}

func (m *model) push(p *popup.Popup) {
	system.Logger.Debug("popup", "kind", p.Title())
	m.popups.Push(p)
}

func (m *model) save() tea.Cmd {
	b := m.ed.Active()
	err := m.ed.SaveActive()
	switch {
	case errors.Is(err, buffer.ErrNoPath):
		m.push(popup.New(popup.SaveFile, ""))
	case err != nil:
		system.Logger.Error("save failed", "path", b.Path(), "err", err)
		m.push(popup.NewError(err))
	default:
		system.Logger.Info("saved", "path", b.Path(), "lines", b.LineCount())
		return gitStatusCmd(b.Path())
	}
	return nil
}

// activeChanged resyncs watcher and git status after the active buffer or
// its path changed.
func (m *model) activeChanged() tea.Cmd {
	if m.watcher != nil {
		m.watcher.Track(m.ed.Paths())
	}
	m.git = system.GitStatus{}
	m.lastGitCheck = m.now
	return gitStatusCmd(m.ed.Active().Path())
}

func (m *model) fileChanged(path string) {
	b, ok := m.ed.BufferFor(path)
	if !ok {
		return
	}
	if at, ok := b.LastSaved(); ok && time.Since(at) < ownWriteWindow {
		return
	}
	system.Logger.Info("changed on disk", "path", path)
	m.push(popup.NewDialogue(fmt.Sprintf(
		"%s was changed on disk. Reopen it with %s to see the new content.",
		filepath.Base(path), m.keys.Open.Help().Key)))
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && m.popups.Empty() {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.ed.DispatchKey(keys.Of(keys.Up))
		case tea.MouseButtonWheelDown:
			m.ed.DispatchKey(keys.Of(keys.Down))
		}
		return nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if top := m.popups.Top(); top != nil {
		for i := range top.Buttons() {
			if zone.Get(buttonZone(i)).InBounds(msg) {
				top.Select(i)
				return m.handleKey(keys.Of(keys.Enter))
			}
		}
		return nil
	}
	for i := range m.ed.Len() {
		if zone.Get(tabZone(i)).InBounds(msg) {
			m.ed.SetActive(i)
			return m.activeChanged()
		}
	}
	return nil
}

func tabZone(i int) string    { return fmt.Sprintf("tab.%d", i) }
func buttonZone(i int) string { return fmt.Sprintf("popup.btn.%d", i) }

// loggingTarget applies dialog results to the editor and logs them.
type loggingTarget struct{ ed *editor.Editor }

func (t loggingTarget) SaveActiveTo(path string) error {
	err := t.ed.SaveActiveTo(path)
	logResult("save", path, err)
	return err
}

func (t loggingTarget) LoadActiveFrom(path string) error {
	err := t.ed.LoadActiveFrom(path)
	logResult("load", path, err)
	return err
}

func logResult(op, path string, err error) {
	if err != nil {
		system.Logger.Error(op+" failed", "path", path, "err", err)
		return
	}
	system.Logger.Info(op, "path", path)
}
