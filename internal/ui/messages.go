package ui

import (
	"time"

	"rocket/internal/system"
)

// Bubble Tea messages

// periodic tick for the footer clock and the saved flash
type tickMsg time.Time

// git status of the active file
type gitStatusMsg struct {
	path   string
	status system.GitStatus
}

// a tracked file was written by someone else
type fileChangedMsg struct{ path string }

// the watcher channel closed
type watchClosedMsg struct{}
