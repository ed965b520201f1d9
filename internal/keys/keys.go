// Package keys defines the logical key event consumed by the editor core.
package keys

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// Code is a logical key code.
type Code int

const (
	None Code = iota
	Rune
	Up
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
	Enter
	Backspace
	Delete
	Tab
	Escape
)

var codeNames = map[Code]string{
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	Home:      "home",
	End:       "end",
	PageUp:    "pgup",
	PageDown:  "pgdown",
	Enter:     "enter",
	Backspace: "backspace",
	Delete:    "delete",
	Tab:       "tab",
	Escape:    "esc",
}

// Mod is a modifier set.
type Mod uint8

const (
	Ctrl Mod = 1 << iota
	Alt
)

// Key is a single discrete key event.
type Key struct {
	Code Code
	Rune rune
	Mod  Mod
}

// Char returns an unmodified character key.
func Char(r rune) Key { return Key{Code: Rune, Rune: r} }

// Of returns an unmodified named key.
func Of(c Code) Key { return Key{Code: c} }

// WithCtrl returns a control-modified character key.
func WithCtrl(r rune) Key { return Key{Code: Rune, Rune: r, Mod: Ctrl} }

// WithAlt returns an alt-modified character key.
func WithAlt(r rune) Key { return Key{Code: Rune, Rune: r, Mod: Alt} }

// Plain reports whether no modifier is held.
func (k Key) Plain() bool { return k.Mod == 0 }

// String renders the key the way bubbles/key bindings spell it, so a Key
// can be passed straight to key.Matches.
func (k Key) String() string {
	var sb strings.Builder
	if k.Mod&Ctrl != 0 {
		sb.WriteString("ctrl+")
	}
	if k.Mod&Alt != 0 {
		sb.WriteString("alt+")
	}
	switch k.Code {
	case Rune:
		if k.Rune == ' ' {
			sb.WriteString("space")
		} else {
			sb.WriteRune(k.Rune)
		}
	case None:
		return ""
	default:
		sb.WriteString(codeNames[k.Code])
	}
	return sb.String()
}

// FromTea translates a bubbletea key message. Pasted or multi-rune input
// yields one Key per rune; unknown keys yield nothing.
func FromTea(msg tea.KeyMsg) []Key {
	var mod Mod
	if msg.Alt {
		mod |= Alt
	}
	named := func(c Code) []Key { return []Key{{Code: c, Mod: mod}} }

	switch msg.Type {
	case tea.KeyRunes:
		out := make([]Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			switch r {
			case '\n', '\r':
				out = append(out, Key{Code: Enter})
			case '\t':
				out = append(out, Key{Code: Tab})
			default:
				out = append(out, Key{Code: Rune, Rune: r, Mod: mod})
			}
		}
		return out
	case tea.KeySpace:
		return []Key{{Code: Rune, Rune: ' ', Mod: mod}}
	case tea.KeyUp:
		return named(Up)
	case tea.KeyDown:
		return named(Down)
	case tea.KeyLeft:
		return named(Left)
	case tea.KeyRight:
		return named(Right)
	case tea.KeyHome:
		return named(Home)
	case tea.KeyEnd:
		return named(End)
	case tea.KeyPgUp:
		return named(PageUp)
	case tea.KeyPgDown:
		return named(PageDown)
	case tea.KeyEnter:
		return named(Enter)
	case tea.KeyBackspace:
		return named(Backspace)
	case tea.KeyDelete:
		return named(Delete)
	case tea.KeyTab:
		return named(Tab)
	case tea.KeyEsc:
		return named(Escape)
	case tea.KeyCtrlLeft:
		return []Key{{Code: Left, Mod: mod | Ctrl}}
	case tea.KeyCtrlRight:
		return []Key{{Code: Right, Mod: mod | Ctrl}}
	}

	// ctrl+<letter> and friends
	if rest, ok := strings.CutPrefix(strings.TrimPrefix(msg.String(), "alt+"), "ctrl+"); ok {
		if utf8.RuneCountInString(rest) == 1 {
			r, _ := utf8.DecodeRuneInString(rest)
			return []Key{{Code: Rune, Rune: r, Mod: mod | Ctrl}}
		}
	}
	return nil
}
