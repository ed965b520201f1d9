package ui

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"rocket/internal/style"
)

// Theme maps token tags to terminal styles, taken from a chroma style.
type Theme struct {
	Name   string
	Tokens map[style.Tag]lipgloss.Style
	Text   lipgloss.Style
	Gutter lipgloss.Style
}

// NewTheme builds a Theme from the named chroma style. Unknown names fall
// back to chroma's default style.
func NewTheme(name string) Theme {
	st := styles.Get(name)
	text := entryStyle(st.Get(chroma.Text))
	if bg := st.Get(chroma.Background); bg.Background.IsSet() {
		text = text.Background(lipgloss.Color(bg.Background.String()))
	}
	gutter := entryStyle(st.Get(chroma.Comment)).Faint(true).Inherit(text)

	tokens := map[style.Tag]lipgloss.Style{
		style.TagNone:     text,
		style.TagKeyword:  entryStyle(st.Get(chroma.Keyword)).Inherit(text),
		style.TagBracket:  entryStyle(st.Get(chroma.Punctuation)).Inherit(text),
		style.TagOperator: entryStyle(st.Get(chroma.Operator)).Inherit(text),
	}
	return Theme{Name: st.Name, Tokens: tokens, Text: text, Gutter: gutter}
}

// Token returns the style for tag, defaulting to plain text.
func (t Theme) Token(tag style.Tag) lipgloss.Style {
	if s, ok := t.Tokens[tag]; ok {
		return s
	}
	return t.Text
}

func entryStyle(e chroma.StyleEntry) lipgloss.Style {
	s := lipgloss.NewStyle()
	if e.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(e.Colour.String()))
	}
	if e.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if e.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if e.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}
