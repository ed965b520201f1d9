package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the colours of the editor chrome: tab bar, gutter,
// footer and dialogs. Token colours come from the chroma theme instead.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Yellow  lipgloss.Color // #e6cc77
	Red     lipgloss.Color // #cb7676

	Text      lipgloss.Color // #dbd7caee
	Secondary lipgloss.Color // #bfbaaa
	Muted     lipgloss.Color // #dedcd590

	Bg     lipgloss.Color // #181818
	BgSoft lipgloss.Color // #292929
	Border lipgloss.Color // #4b4b4b

	OnAccent lipgloss.Color // #222

	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

// Vitesse is the chrome palette.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),

	Bg:     lipgloss.Color("#181818"),
	BgSoft: lipgloss.Color("#292929"),
	Border: lipgloss.Color("#4b4b4b"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// BorderStyle returns a style with the standard border color.
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Border)
}

// TabStyle styles an inactive buffer tab.
func TabStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Secondary).Background(Vitesse.BgSoft).Padding(0, 1)
}

// ActiveTabStyle styles the tab of the active buffer.
func ActiveTabStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.OnAccent).Background(Vitesse.Primary).Padding(0, 1)
}

// ChipStyle returns a style for coloured status bar segments.
func ChipStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Background(bg).Padding(0, 1)
}

// StatusBarBase returns the base style for the footer.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// Button renders a dialog button; the selected one is filled with the accent.
func Button(s string, selected bool) string {
	st := lipgloss.NewStyle().Padding(0, 1)
	if selected {
		st = st.Bold(true).Foreground(Vitesse.OnAccent).Background(Vitesse.Primary)
	} else {
		st = st.Foreground(Vitesse.Secondary).Background(Vitesse.BgSoft)
	}
	return st.Render(s)
}
