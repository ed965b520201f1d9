package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestString(t *testing.T) {
	cases := []struct {
		k    Key
		want string
	}{
		{Char('a'), "a"},
		{Char(' '), "space"},
		{WithCtrl('s'), "ctrl+s"},
		{WithAlt('i'), "alt+i"},
		{Of(Enter), "enter"},
		{Key{Code: Left, Mod: Ctrl}, "ctrl+left"},
		{Key{}, ""},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Fatalf("String(%+v) = %q, want %q", c.k, got, c.want)
		}
	}
}

func TestFromTea(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want []Key
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, []Key{Char('x')}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\nb")}, []Key{Char('a'), Of(Enter), Char('b')}},
		{"alt", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i"), Alt: true}, []Key{WithAlt('i')}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, []Key{Char(' ')}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []Key{Of(Enter)}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []Key{Of(Tab)}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []Key{Of(Backspace)}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, []Key{Of(Delete)}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, []Key{Of(Left)}},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, []Key{WithCtrl('s')}},
		{"ctrl+q", tea.KeyMsg{Type: tea.KeyCtrlQ}, []Key{WithCtrl('q')}},
	}
	for _, c := range cases {
		got := FromTea(c.msg)
		if len(got) != len(c.want) {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%s[%d]: got %+v, want %+v", c.name, i, got[i], c.want[i])
			}
		}
	}
}
