package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// vitesseGlamour returns a glamour style config matching the chrome
// palette, used for the help dialog body.
func vitesseGlamour() ansi.StyleConfig {
	// helper: take lipgloss.Color -> hex without alpha
	hex := func(c lipgloss.Color) string {
		s := string(c)
		if strings.HasPrefix(s, "#") && len(s) == 9 { // #RRGGBBAA
			return s[:7]
		}
		return s
	}
	sp := func(s string) *string { return &s }
	bp := func(b bool) *bool { return &b }
	up := func(u uint) *uint { return &u }

	text := hex(Vitesse.Text)
	secondary := hex(Vitesse.Secondary)
	primary := hex(Vitesse.Primary)
	blue := hex(Vitesse.Blue)
	yellow := hex(Vitesse.Yellow)
	bgSoft := hex(Vitesse.BgSoft)

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(text)},
			Margin:         up(0),
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(text)},
		},
		Heading: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true)}},
		H1:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(primary), Bold: bp(true)}},
		H2:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true)}},

		List: ansi.StyleList{LevelIndent: 2},
		Item: ansi.StylePrimitive{BlockPrefix: "• "},

		Text:   ansi.StylePrimitive{Color: sp(text)},
		Emph:   ansi.StylePrimitive{Italic: bp(true)},
		Strong: ansi.StylePrimitive{Color: sp(yellow), Bold: bp(true)},

		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(yellow), BackgroundColor: sp(bgSoft)},
		},
		HorizontalRule: ansi.StylePrimitive{Color: sp(secondary)},
	}
}

// renderMarkdown renders md wrapped to width; on failure the source is
// returned unchanged.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(vitesseGlamour()),
		glamour.WithWordWrap(max(10, width)),
	)
	if err != nil {
		return trimEdgeBlankLines(md)
	}
	out, err := r.Render(md)
	if err != nil {
		return trimEdgeBlankLines(md)
	}
	return trimEdgeBlankLines(out)
}

func trimEdgeBlankLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	i := 0
	for i < len(lines) && blank(lines[i]) {
		i++
	}
	j := len(lines) - 1
	for j >= i && blank(lines[j]) {
		j--
	}
	return strings.Join(lines[i:j+1], "\n")
}

func blank(line string) bool { return strings.TrimSpace(xansi.Strip(line)) == "" }
