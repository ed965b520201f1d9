package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"rocket/internal/editor"
	"rocket/internal/keymap"
	"rocket/internal/popup"
	tu "rocket/internal/testutil"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newModel(t *testing.T, paths ...string) model {
	t.Helper()
	ed, err := editor.Open(paths, editor.Options{CreateMissing: true})
	if err != nil {
		t.Fatalf("editor.Open: %v", err)
	}
	m := New(Options{Editor: ed, KeyMap: keymap.Default(), Theme: "monokai"}).(model)
	return send(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg     { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
func ctrl(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypingEditsActiveBuffer(t *testing.T) {
	m := newModel(t)
	m = send(t, m, runes("hi"), enter, runes("yo"))
	b := m.ed.Active()
	if b.LineCount() != 2 || b.Line(0) != "hi" || b.Line(1) != "yo" {
		t.Fatalf("lines: %q", b.Lines())
	}
	if !b.Dirty() {
		t.Fatalf("expected dirty buffer")
	}
}

func TestSaveWithoutPathOpensSaveDialog(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	m := newModel(t)
	m = send(t, m, runes("abc"), ctrl(tea.KeyCtrlS))
	top := m.popups.Top()
	if top == nil || top.Kind() != popup.SaveFile {
		t.Fatalf("expected save dialog, got %v", top)
	}
	m = send(t, m, runes(target), enter)
	if !m.popups.Empty() {
		t.Fatalf("dialog still open: %v", m.popups.Top().Title())
	}
	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "abc\n" {
		t.Fatalf("content: %q", got)
	}
	if m.ed.Active().Path() != target || m.ed.Active().Dirty() {
		t.Fatalf("buffer not bound to %s", target)
	}
}

func TestSaveFailureShowsIOError(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "x.txt")
	m := newModel(t, bad)
	m = send(t, m, runes("x"), ctrl(tea.KeyCtrlS))
	top := m.popups.Top()
	if top == nil || top.Kind() != popup.IOError {
		t.Fatalf("expected io error dialog, got %v", top)
	}
	m = send(t, m, enter)
	if !m.popups.Empty() {
		t.Fatalf("io error not dismissed")
	}
}

func TestPopupCapturesKeys(t *testing.T) {
	m := newModel(t)
	m = send(t, m, ctrl(tea.KeyCtrlH), runes("x"))
	if m.popups.Top() == nil || m.popups.Top().Kind() != popup.Help {
		t.Fatalf("help not open")
	}
	if m.ed.Active().Line(0) != "" {
		t.Fatalf("key leaked to buffer: %q", m.ed.Active().Line(0))
	}
	m = send(t, m, enter)
	if !m.popups.Empty() {
		t.Fatalf("help not closed")
	}
}

func TestQuitGuard(t *testing.T) {
	m := newModel(t)
	next, cmd := m.Update(ctrl(tea.KeyCtrlQ))
	if !isQuit(cmd) {
		t.Fatalf("clean editor should quit immediately")
	}
	if v := next.View(); v != "" {
		t.Fatalf("view after quit: %q", v)
	}

	m = send(t, newModel(t), runes("x"))
	next, cmd = m.Update(ctrl(tea.KeyCtrlQ))
	if isQuit(cmd) {
		t.Fatalf("dirty editor quit on first press")
	}
	m = next.(model)
	if top := m.popups.Top(); top == nil || top.Kind() != popup.Dialogue {
		t.Fatalf("expected unsaved-changes dialogue")
	}
	if _, cmd = m.Update(ctrl(tea.KeyCtrlQ)); !isQuit(cmd) {
		t.Fatalf("second press should quit")
	}

	// any other key disarms the guard
	m = send(t, m, enter, runes("y"))
	if _, cmd = m.Update(ctrl(tea.KeyCtrlQ)); isQuit(cmd) {
		t.Fatalf("guard not re-armed")
	}
}

func TestBufferSwitching(t *testing.T) {
	dir := t.TempDir()
	a := tu.WriteFile(t, dir, "a.txt", "a\n")
	b := tu.WriteFile(t, dir, "b.txt", "b\n")
	m := newModel(t, a, b)
	alt := func(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true} }

	m = send(t, m, alt('i'))
	if m.ed.ActiveIndex() != 1 {
		t.Fatalf("next: active %d", m.ed.ActiveIndex())
	}
	m = send(t, m, alt('i'))
	if m.ed.ActiveIndex() != 0 {
		t.Fatalf("next wraps: active %d", m.ed.ActiveIndex())
	}
	m = send(t, m, alt('u'))
	if m.ed.ActiveIndex() != 1 {
		t.Fatalf("prev wraps: active %d", m.ed.ActiveIndex())
	}
}

func TestLoadDialogReplacesBuffer(t *testing.T) {
	dir := t.TempDir()
	src := tu.WriteFile(t, dir, "src.rs", "fn main\n")
	m := newModel(t)
	m = send(t, m, ctrl(tea.KeyCtrlO), runes(src), enter)
	if !m.popups.Empty() {
		t.Fatalf("load dialog still open")
	}
	if m.ed.Active().Path() != src || m.ed.Active().Line(0) != "fn main" {
		t.Fatalf("not loaded: %q %q", m.ed.Active().Path(), m.ed.Active().Lines())
	}
}

func TestFileChangedDialogue(t *testing.T) {
	dir := t.TempDir()
	a := tu.WriteFile(t, dir, "a.txt", "a\n")
	m := newModel(t, a)

	m = send(t, m, fileChangedMsg{path: filepath.Join(dir, "other.txt")})
	if !m.popups.Empty() {
		t.Fatalf("untracked path raised a dialogue")
	}

	m = send(t, m, ctrl(tea.KeyCtrlS), fileChangedMsg{path: a})
	if !m.popups.Empty() {
		t.Fatalf("own write raised a dialogue")
	}

	m = newModel(t, a)
	m = send(t, m, fileChangedMsg{path: a})
	top := m.popups.Top()
	if top == nil || top.Kind() != popup.Dialogue || !strings.Contains(top.Payload(), "a.txt") {
		t.Fatalf("expected change dialogue, got %v", top)
	}
}

func TestView(t *testing.T) {
	dir := t.TempDir()
	a := tu.WriteFile(t, dir, "a.rs", "fn main\n")
	m := newModel(t, a)
	m = send(t, m, runes("x"))

	v := xansi.Strip(m.View())
	lines := strings.Split(v, "\n")
	if len(lines) != m.height {
		t.Fatalf("view has %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "[*a.rs]") {
		t.Fatalf("header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " 1~ xfn main") {
		t.Fatalf("first row: %q", lines[1])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[2]), "~") {
		t.Fatalf("filler row: %q", lines[2])
	}
	footer := lines[len(lines)-1]
	if !strings.Contains(footer, "["+a+"]") || !strings.Contains(footer, "(1:0)") {
		t.Fatalf("footer: %q", footer)
	}
	if !strings.Contains(footer, "rocket // v") {
		t.Fatalf("footer missing version: %q", footer)
	}
	if strings.Contains(footer, "saved!") {
		t.Fatalf("dirty buffer shows saved marker")
	}

	m = send(t, m, ctrl(tea.KeyCtrlS))
	if footer := lastLine(xansi.Strip(m.View())); !strings.Contains(footer, "saved!") {
		t.Fatalf("saved marker missing: %q", footer)
	}
}

func TestViewShowsPopup(t *testing.T) {
	m := newModel(t)
	m = send(t, m, ctrl(tea.KeyCtrlT), runes("notes"))
	v := xansi.Strip(m.View())
	for _, want := range []string{"save file", "› notes", "okay", "cancel"} {
		if !strings.Contains(v, want) {
			t.Fatalf("popup view missing %q:\n%s", want, v)
		}
	}

	m = newModel(t)
	m = send(t, m, ctrl(tea.KeyCtrlH))
	v = xansi.Strip(m.View())
	for _, want := range []string{"help", "got it", "ctrl+s"} {
		if !strings.Contains(v, want) {
			t.Fatalf("help view missing %q:\n%s", want, v)
		}
	}
}

func lastLine(s string) string {
	return s[strings.LastIndex(s, "\n")+1:]
}
