// Package keymap holds the modifier+key command bindings handled by the
// host before input reaches the editor or a dialog.
package keymap

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"

	"rocket/internal/keys"
)

// Command is an action bound to a key chord.
type Command int

const (
	NoCommand Command = iota
	Save
	SaveAs
	Open
	Help
	Quit
	NextBuffer
	PrevBuffer
)

// Names maps the configuration spelling of each command.
var Names = map[string]Command{
	"save":        Save,
	"save_as":     SaveAs,
	"open":        Open,
	"help":        Help,
	"quit":        Quit,
	"next_buffer": NextBuffer,
	"prev_buffer": PrevBuffer,
}

// KeyMap defines the command bindings.
type KeyMap struct {
	Save       key.Binding
	SaveAs     key.Binding
	Open       key.Binding
	Help       key.Binding
	Quit       key.Binding
	NextBuffer key.Binding
	PrevBuffer key.Binding
}

func Default() KeyMap {
	return KeyMap{
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveAs:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "save as")),
		Open:       key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "load file")),
		Help:       key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		NextBuffer: key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "next buffer")),
		PrevBuffer: key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "previous buffer")),
	}
}

func (m *KeyMap) binding(c Command) *key.Binding {
	switch c {
	case Save:
		return &m.Save
	case SaveAs:
		return &m.SaveAs
	case Open:
		return &m.Open
	case Help:
		return &m.Help
	case Quit:
		return &m.Quit
	case NextBuffer:
		return &m.NextBuffer
	case PrevBuffer:
		return &m.PrevBuffer
	}
	return nil
}

// WithOverrides returns a copy of m with the keys of the named commands
// replaced. Unknown command names are an error.
func (m KeyMap) WithOverrides(over map[string][]string) (KeyMap, error) {
	names := make([]string, 0, len(over))
	for n := range over {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		c, ok := Names[n]
		if !ok {
			return m, fmt.Errorf("unknown command %q in bindings", n)
		}
		ks := over[n]
		if len(ks) == 0 {
			continue
		}
		b := m.binding(c)
		b.SetKeys(ks...)
		b.SetHelp(ks[0], b.Help().Desc)
	}
	return m, nil
}

// Lookup returns the command bound to k, if any.
func (m KeyMap) Lookup(k keys.Key) Command {
	for c := Save; c <= PrevBuffer; c++ {
		if key.Matches(k, *m.binding(c)) {
			return c
		}
	}
	return NoCommand
}

// ShortHelp implements help.KeyMap.
func (m KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Save, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Save, m.SaveAs, m.Open},
		{m.NextBuffer, m.PrevBuffer},
		{m.Help, m.Quit},
	}
}
