package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"rocket/internal/grapheme"
	"rocket/internal/style"
)

// fitLine truncates or pads s to exactly width cells, padding with fill.
func fitLine(s string, width int, fill lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) > width {
		return xansi.Truncate(s, width, "")
	}
	if pad := width - xansi.StringWidth(s); pad > 0 {
		s += fill.Render(strings.Repeat(" ", pad))
	}
	return s
}

// renderStatusBar draws a single-line bar at the given width with
// left/right-aligned content. The left side is trimmed first.
func renderStatusBar(width int, left, right string) string {
	base := StatusBarBase()
	rw := xansi.StringWidth(right)
	if rw > width {
		right = xansi.TruncateLeft(right, rw-width, "")
		rw = width
	}
	maxL := max(0, width-rw-1)
	if xansi.StringWidth(left) > maxL {
		left = xansi.Truncate(left, maxL, "…")
	}
	pad := max(0, width-xansi.StringWidth(left)-rw)
	return base.Render(left+strings.Repeat(" ", pad)) + right
}

func gutterWidth(lines int) int {
	return max(2, len(strconv.Itoa(lines)))
}

// hscroll returns how many cells to cut from the left of every row so the
// cursor column stays inside avail cells.
func hscroll(line string, col, avail int) int {
	if avail <= 1 {
		return 0
	}
	x := runewidth.StringWidth(grapheme.Slice(line, 0, col))
	if x < avail {
		return 0
	}
	return x - avail + 1
}

// renderTokens styles one row. col is the cursor column in graphemes, or
// -1 when the cursor is on another row; the cell under it is reversed.
func (m model) renderTokens(toks []style.Token, col, shift int) string {
	var sb strings.Builder
	idx := 0
	placed := col < 0
	for _, t := range toks {
		st := m.theme.Token(t.Tag)
		n := grapheme.Count(t.Text)
		if !placed && col < idx+n {
			before, rest := grapheme.SplitAt(t.Text, col-idx)
			at, after := grapheme.SplitAt(rest, 1)
			sb.WriteString(renderNonEmpty(st, before))
			sb.WriteString(st.Reverse(true).Render(at))
			sb.WriteString(renderNonEmpty(st, after))
			placed = true
		} else {
			sb.WriteString(renderNonEmpty(st, t.Text))
		}
		idx += n
	}
	if !placed {
		sb.WriteString(m.theme.Text.Reverse(true).Render(" "))
	}
	out := sb.String()
	if shift > 0 {
		out = xansi.TruncateLeft(out, shift, "")
	}
	return out
}

func renderNonEmpty(st lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	return st.Render(s)
}

// tailFit keeps the end of s within width cells, so the latest typed
// characters of a long path stay visible.
func tailFit(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	gs := grapheme.Split(s)
	w := 1 // ellipsis
	i := len(gs)
	for i > 0 {
		gw := runewidth.StringWidth(gs[i-1])
		if w+gw > width {
			break
		}
		w += gw
		i--
	}
	return "…" + strings.Join(gs[i:], "")
}

// overlay places box centred over bg, which must hold lines of width
// cells. Rows of box beyond bg are dropped.
func overlay(bg, box []string, width int) []string {
	if len(box) == 0 {
		return bg
	}
	out := append([]string(nil), bg...)
	top := max(0, (len(bg)-len(box))/2)
	left := max(0, (width-xansi.StringWidth(box[0]))/2)
	for i, l := range box {
		r := top + i
		if r >= len(out) {
			break
		}
		out[r] = splice(out[r], l, left)
	}
	return out
}

// splice writes fg over bg starting at cell x.
func splice(bg, fg string, x int) string {
	end := x + xansi.StringWidth(fg)
	return xansi.Truncate(bg, x, "") + fg + xansi.TruncateLeft(bg, end, "")
}
