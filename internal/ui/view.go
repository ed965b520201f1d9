package ui

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"rocket/internal/editor"
	appver "rocket/internal/version"
)

func (m model) View() string {
	if m.quitting || m.width == 0 {
		return ""
	}
	content := m.renderContent()
	if top := m.popups.Top(); top != nil {
		content = overlay(content, m.renderPopup(top), m.width)
	}

	b := &strings.Builder{}
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(strings.Join(content, "\n"))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return zone.Scan(b.String())
}

// renderHeader draws one [name] tab per buffer.
func (m model) renderHeader() string {
	var parts []string
	i := 0
	for name := range m.ed.AllDisplayNames() {
		st := TabStyle()
		if i == m.ed.ActiveIndex() {
			st = ActiveTabStyle()
		}
		parts = append(parts, zone.Mark(tabZone(i), st.Render("["+name+"]")))
		i++
	}
	return fitLine(strings.Join(parts, StatusBarBase().Render(" ")), m.width, StatusBarBase())
}

// renderContent draws the visible rows of the active buffer.
func (m model) renderContent() []string {
	h := m.contentHeight()
	b := m.ed.Active()
	styled := m.ed.StyledLines()
	top := b.ScrollOffset()
	cur := b.Cursor()
	gw := gutterWidth(b.LineCount())
	shift := hscroll(b.Line(cur.Row), cur.Col, m.width-gw-2)

	out := make([]string, 0, h)
	for i := range h {
		row := top + i
		if row >= len(styled) {
			out = append(out, fitLine(m.theme.Gutter.Render(strings.Repeat(" ", gw)+"~"), m.width, m.theme.Text))
			continue
		}
		col := -1
		if row == cur.Row {
			col = cur.Col
		}
		gutter := m.theme.Gutter.Render(fmt.Sprintf("%*d~", gw, row+1)) + m.theme.Text.Render(" ")
		out = append(out, fitLine(gutter+m.renderTokens(styled[row], col, shift), m.width, m.theme.Text))
	}
	return out
}

func (m model) renderFooter() string {
	b := m.ed.Active()
	path := editor.ScratchName
	if b.HasPath() {
		path = b.Path()
	}
	cur := b.Cursor()
	left := fmt.Sprintf("[%s] \\\\ (%d:%d)", path, cur.Col, cur.Row)
	if m.showSaved() {
		left += " \\\\ " + IconSaved() + "saved!"
	}

	right := []string{m.help.ShortHelpView(m.keys.ShortHelp())}
	if m.git.InRepo && m.git.Branch != "" {
		g := IconBranch() + " " + m.git.Branch
		if m.git.Change != "" {
			g += " " + m.git.Change
		}
		right = append(right, ChipStyle(Vitesse.Blue).Render(g))
	}
	right = append(right, ChipStyle(Vitesse.Primary).Render("rocket // v"+appver.AppVersion))
	return renderStatusBar(m.width, left, strings.Join(right, " "))
}

// showSaved reports whether the footer flashes the saved marker.
func (m model) showSaved() bool {
	d, ok := m.ed.TimeSinceActiveSave()
	return ok && !m.ed.Active().Dirty() && d < ownWriteWindow
}
