package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rocket/internal/system"
	"rocket/internal/watch"
)

const tickInterval = 250 * time.Millisecond

// Commands
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func gitStatusCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		gs, err := system.FileGitStatus(context.Background(), path)
		if err != nil {
			system.Logger.Debug("git status", "path", path, "err", err)
		}
		return gitStatusMsg{path: path, status: gs}
	}
}

// waitForChange blocks on the watcher and delivers the next changed path.
// Re-issue it after every fileChangedMsg.
func waitForChange(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		p, ok := <-w.Changes()
		if !ok {
			return watchClosedMsg{}
		}
		return fileChangedMsg{path: p}
	}
}
