package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"rocket/internal/style"
)

func TestFitLine(t *testing.T) {
	plain := lipgloss.NewStyle()
	if got := xansi.Strip(fitLine("abc", 5, plain)); got != "abc  " {
		t.Fatalf("pad: %q", got)
	}
	if got := xansi.Strip(fitLine("abcdef", 4, plain)); got != "abcd" {
		t.Fatalf("truncate: %q", got)
	}
	if got := fitLine("abc", 0, plain); got != "" {
		t.Fatalf("zero width: %q", got)
	}
}

func TestStatusBarKeepsRightSide(t *testing.T) {
	got := xansi.Strip(renderStatusBar(20, strings.Repeat("l", 30), "right"))
	if xansi.StringWidth(got) != 20 {
		t.Fatalf("width %d: %q", xansi.StringWidth(got), got)
	}
	if !strings.HasSuffix(got, "right") {
		t.Fatalf("right side lost: %q", got)
	}
}

func TestHScroll(t *testing.T) {
	if got := hscroll("short", 3, 10); got != 0 {
		t.Fatalf("short line shifted by %d", got)
	}
	if got := hscroll(strings.Repeat("a", 30), 25, 10); got != 16 {
		t.Fatalf("shift: got %d want 16", got)
	}
	// wide runes count two cells
	if got := hscroll("日本語日本語", 6, 10); got != 3 {
		t.Fatalf("wide shift: got %d want 3", got)
	}
}

func TestTailFit(t *testing.T) {
	if got := tailFit("abc", 5); got != "abc" {
		t.Fatalf("fits: %q", got)
	}
	if got := tailFit("/very/long/path.txt", 8); got != "…ath.txt" {
		t.Fatalf("tail: %q", got)
	}
}

func TestOverlay(t *testing.T) {
	bg := []string{"..........", "..........", ".........."}
	got := overlay(bg, []string{"XX"}, 10)
	want := []string{"..........", "....XX....", ".........."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("overlay: %q", got)
	}
	if bg[1] != ".........." {
		t.Fatalf("background modified")
	}
	tall := overlay(bg, []string{"A", "B", "C", "D"}, 10)
	if tall[0] != "....A....." || tall[2] != "....C....." {
		t.Fatalf("tall overlay: %q", tall)
	}
}

func TestTrimEdgeBlankLines(t *testing.T) {
	if got := trimEdgeBlankLines("\n  \nbody\n\nmore\n \n"); got != "body\n\nmore" {
		t.Fatalf("trim: %q", got)
	}
	if got := trimEdgeBlankLines("\n\n"); got != "" {
		t.Fatalf("all blank: %q", got)
	}
}

func TestRenderTokensCursorPastEnd(t *testing.T) {
	m := model{theme: NewTheme("monokai")}
	toks := style.Line("fn x", "rs")
	if got := xansi.Strip(m.renderTokens(toks, 4, 0)); got != "fn x " {
		t.Fatalf("cursor at end: %q", got)
	}
	if got := xansi.Strip(m.renderTokens(toks, -1, 0)); got != "fn x" {
		t.Fatalf("no cursor: %q", got)
	}
	if got := xansi.Strip(m.renderTokens(toks, 0, 2)); got != " x" {
		t.Fatalf("shifted: %q", got)
	}
}

func TestNewTheme(t *testing.T) {
	th := NewTheme("monokai")
	if th.Name != "monokai" {
		t.Fatalf("name: %q", th.Name)
	}
	for _, tag := range []style.Tag{style.TagNone, style.TagKeyword, style.TagBracket, style.TagOperator} {
		if _, ok := th.Tokens[tag]; !ok {
			t.Fatalf("no style for %v", tag)
		}
	}
	if fb := NewTheme("no-such-theme"); fb.Name == "" {
		t.Fatalf("fallback theme has no name")
	}
}
