package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"rocket/internal/pathhint"
	"rocket/internal/popup"
)

const (
	popupWidth  = 50
	maxHintRows = 5
)

// renderPopup draws the dialog p as a bordered box: title in the top
// border, body, then the button row.
func (m model) renderPopup(p *popup.Popup) []string {
	inner := min(popupWidth, m.width) - 2
	if inner < 10 {
		inner = 10
	}
	border := BorderStyle()
	fill := lipgloss.NewStyle().Foreground(Vitesse.Text).Background(Vitesse.Bg).Width(inner)
	title := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary).Render(" " + p.Title() + " ")
	if p.Kind() == popup.IOError {
		title = lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Red).Render(" " + p.Title() + " ")
	}

	var body []string
	switch p.Kind() {
	case popup.Help:
		body = m.helpBody(inner - 2)
	case popup.SaveFile, popup.LoadFile:
		body = pathBody(p.Payload(), inner-2)
	default:
		wrapped := lipgloss.NewStyle().Width(inner - 2).Render(p.Content())
		body = strings.Split(wrapped, "\n")
	}

	out := make([]string, 0, len(body)+5)
	tw := xansi.StringWidth(title)
	out = append(out, border.Render("╭─")+title+border.Render(strings.Repeat("─", max(0, inner-1-tw))+"╮"))
	row := func(s string) {
		if xansi.StringWidth(s) > inner {
			s = xansi.Truncate(s, inner, "")
		}
		out = append(out, border.Render("│")+fill.Render(s)+border.Render("│"))
	}
	for _, l := range body {
		row(" " + l)
	}
	row("")
	row(lipgloss.PlaceHorizontal(inner, lipgloss.Center, renderButtons(p),
		lipgloss.WithWhitespaceBackground(Vitesse.Bg)))
	out = append(out, border.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return out
}

func renderButtons(p *popup.Popup) string {
	parts := make([]string, 0, len(p.Buttons()))
	for i, b := range p.Buttons() {
		parts = append(parts, zone.Mark(buttonZone(i), Button(b.Label(), i == p.Selected())))
	}
	return strings.Join(parts, lipgloss.NewStyle().Background(Vitesse.Bg).Render("   "))
}

// pathBody shows the typed path with a cursor block and completions for it.
func pathBody(payload string, width int) []string {
	prompt := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary).Render("›")
	cursor := lipgloss.NewStyle().Reverse(true).Render(" ")
	lines := []string{prompt + " " + tailFit(payload, width-3) + cursor}

	dim := lipgloss.NewStyle().Foreground(Vitesse.Muted).Render
	for _, s := range pathhint.Suggest(payload, maxHintRows) {
		lines = append(lines, "  "+dim(tailFit(s, width-2)))
	}
	return lines
}

// helpBody renders the markdown help and the key bindings for width.
func (m model) helpBody(width int) []string {
	if lines, ok := m.helpCache[width]; ok {
		return lines
	}
	md := renderMarkdown(popup.HelpText, width)
	h := m.help
	h.Width = width
	lines := append(strings.Split(md, "\n"), "", h.FullHelpView(m.keys.FullHelp()))
	lines = strings.Split(strings.Join(lines, "\n"), "\n")
	m.helpCache[width] = lines
	return lines
}
