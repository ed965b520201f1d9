// Package editor orchestrates the open buffers and routes key input to the
// active one.
package editor

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
	"time"

	"rocket/internal/buffer"
	"rocket/internal/keys"
	"rocket/internal/style"
)

// DirtyMarker prefixes the display name of a buffer with unsaved changes.
const DirtyMarker = "*"

// ScratchName is shown for buffers that have no path yet.
const ScratchName = "unsaved"

// Options tune editing behaviour.
type Options struct {
	// TabWidth is the number of spaces inserted for Tab (default 4).
	TabWidth int
	// CreateMissing opens paths that do not exist as empty buffers bound to
	// that path instead of failing.
	CreateMissing bool
}

// Editor owns a non-empty list of buffers and the index of the active one.
type Editor struct {
	buffers []*buffer.Buffer
	active  int
	opts    Options

	viewHeight int
	styled     [][]style.Token
}

// Open builds one buffer per path, or a single scratch buffer when paths is
// empty. The first load failure aborts construction.
func Open(paths []string, opts Options) (*Editor, error) {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	e := &Editor{opts: opts}
	for _, p := range paths {
		b, err := buffer.FromPath(p)
		if err != nil {
			if opts.CreateMissing && errors.Is(err, fs.ErrNotExist) {
				b = buffer.NewWithPath(p)
			} else {
				return nil, err
			}
		}
		e.buffers = append(e.buffers, b)
	}
	if len(e.buffers) == 0 {
		e.buffers = append(e.buffers, buffer.New())
	}
	e.refresh()
	return e, nil
}

func (e *Editor) Active() *buffer.Buffer { return e.buffers[e.active] }
func (e *Editor) ActiveIndex() int       { return e.active }
func (e *Editor) Len() int               { return len(e.buffers) }

// Buffer returns the i-th buffer.
func (e *Editor) Buffer(i int) *buffer.Buffer { return e.buffers[i] }

// StyledLines is the render cache for the active buffer. It is rebuilt after
// every mutation and buffer switch and must not be modified by callers.
func (e *Editor) StyledLines() [][]style.Token { return e.styled }

// Cursor returns the active cursor relative to the scrolled viewport.
func (e *Editor) Cursor() buffer.Cursor { return e.Active().ViewCursor() }

// SetViewHeight records the visible line count and scrolls the active
// buffer to keep its cursor on screen.
func (e *Editor) SetViewHeight(h int) {
	e.viewHeight = h
	e.Active().Scroll(h)
}

func (e *Editor) refresh() {
	b := e.Active()
	e.styled = style.Lines(b.Lines(), style.Extension(b.Path()))
	b.Scroll(e.viewHeight)
}

// DispatchKey applies an unmodified key to the active buffer. Modified and
// unrecognised keys are ignored; the return value reports whether the key
// was consumed.
func (e *Editor) DispatchKey(k keys.Key) bool {
	if !k.Plain() {
		return false
	}
	b := e.Active()
	switch k.Code {
	case keys.Up:
		b.MoveCursor(0, -1)
	case keys.Down:
		b.MoveCursor(0, 1)
	case keys.Left:
		b.MoveCursor(-1, 0)
	case keys.Right:
		b.MoveCursor(1, 0)
	case keys.Home:
		b.MoveToLineStart()
	case keys.End:
		b.MoveToLineEnd()
	case keys.PageUp:
		b.MoveCursor(0, -e.page())
	case keys.PageDown:
		b.MoveCursor(0, e.page())
	case keys.Rune:
		b.InsertCharacter(k.Rune)
		e.refresh()
	case keys.Tab:
		b.InsertText(strings.Repeat(" ", e.opts.TabWidth))
		e.refresh()
	case keys.Enter:
		b.InsertLineBreak()
		e.refresh()
	case keys.Backspace:
		b.DeleteBackward()
		e.refresh()
	case keys.Delete:
		b.DeleteForward()
		e.refresh()
	default:
		return false
	}
	b.Scroll(e.viewHeight)
	return true
}

func (e *Editor) page() int {
	if e.viewHeight > 1 {
		return e.viewHeight - 1
	}
	return 1
}

// NextBuffer activates the following buffer, wrapping around.
func (e *Editor) NextBuffer() {
	e.active = (e.active + 1) % len(e.buffers)
	e.refresh()
}

// PreviousBuffer activates the preceding buffer, wrapping around.
func (e *Editor) PreviousBuffer() {
	e.active = (e.active - 1 + len(e.buffers)) % len(e.buffers)
	e.refresh()
}

// SetActive activates buffer i; out of range indices are ignored.
func (e *Editor) SetActive(i int) {
	if i < 0 || i >= len(e.buffers) || i == e.active {
		return
	}
	e.active = i
	e.refresh()
}

// DisplayName is the base name of b's path (or ScratchName), prefixed with
// DirtyMarker when b has unsaved changes.
func DisplayName(b *buffer.Buffer) string {
	name := ScratchName
	if b.HasPath() {
		name = filepath.Base(b.Path())
	}
	if b.Dirty() {
		return DirtyMarker + name
	}
	return name
}

// AllDisplayNames yields the display name of every buffer in order. The
// sequence reads current state each time it is ranged over.
func (e *Editor) AllDisplayNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, b := range e.buffers {
			if !yield(DisplayName(b)) {
				return
			}
		}
	}
}

// DirtyCount returns how many buffers hold unsaved changes.
func (e *Editor) DirtyCount() int {
	n := 0
	for _, b := range e.buffers {
		if b.Dirty() {
			n++
		}
	}
	return n
}

// Paths lists the paths of all pathful buffers.
func (e *Editor) Paths() []string {
	out := make([]string, 0, len(e.buffers))
	for _, b := range e.buffers {
		if b.HasPath() {
			out = append(out, b.Path())
		}
	}
	return out
}

// BufferFor returns the buffer bound to path, if any. Relative and
// absolute spellings of the same file match.
func (e *Editor) BufferFor(path string) (*buffer.Buffer, bool) {
	want := absPath(path)
	for _, b := range e.buffers {
		if b.HasPath() && absPath(b.Path()) == want {
			return b, true
		}
	}
	return nil, false
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// TimeSinceActiveSave reports the time since the active buffer was last
// saved; ok is false if it never was.
func (e *Editor) TimeSinceActiveSave() (d time.Duration, ok bool) {
	t, ok := e.Active().LastSaved()
	if !ok {
		return 0, false
	}
	return time.Since(t), true
}

// SaveActive saves the active buffer to its own path.
func (e *Editor) SaveActive() error {
	return e.Active().Save()
}

// SaveActiveTo saves the active buffer under a new path.
func (e *Editor) SaveActiveTo(path string) error {
	err := e.Active().SaveTo(path)
	e.refresh()
	return err
}

// LoadActiveFrom replaces the active buffer's content with the file at path.
func (e *Editor) LoadActiveFrom(path string) error {
	if err := e.Active().LoadFrom(path); err != nil {
		return err
	}
	e.refresh()
	return nil
}
