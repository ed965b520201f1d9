package buffer

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"rocket/internal/grapheme"
)

var (
	// ErrNoPath is returned by Save when the buffer was never given a path.
	ErrNoPath = errors.New("buffer has no path")
	// ErrNotText is returned when a file's bytes are not valid UTF-8.
	ErrNotText = errors.New("file is not valid UTF-8 text")
)

// Cursor is a (column, row) position. Column counts grapheme clusters.
type Cursor struct {
	Col int
	Row int
}

// Buffer holds one file's lines plus cursor, scroll and save bookkeeping.
//
// lines is never empty and the cursor always addresses an existing row with
// a column no greater than that row's grapheme length.
type Buffer struct {
	path      string
	lines     []string
	cursor    Cursor
	scroll    int
	dirty     bool
	lastSaved time.Time
}

// New returns an empty scratch buffer without a path.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// NewWithPath returns an empty buffer that will be written to path on save.
func NewWithPath(path string) *Buffer {
	b := New()
	b.path = path
	return b
}

// FromPath reads path into a new buffer.
func FromPath(path string) (*Buffer, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	return &Buffer{path: path, lines: lines}, nil
}

func (b *Buffer) Path() string        { return b.path }
func (b *Buffer) HasPath() bool       { return b.path != "" }
func (b *Buffer) Cursor() Cursor      { return b.cursor }
func (b *Buffer) Dirty() bool         { return b.dirty }
func (b *Buffer) LineCount() int      { return len(b.lines) }
func (b *Buffer) Line(row int) string { return b.lines[row] }

// Lines returns a copy of the buffer content.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// LastSaved reports when the buffer was last written, if ever.
func (b *Buffer) LastSaved() (time.Time, bool) {
	return b.lastSaved, !b.lastSaved.IsZero()
}

func (b *Buffer) lineLen(row int) int { return grapheme.Count(b.lines[row]) }

// MoveCursor moves horizontally then vertically, clamping each axis in turn.
// After a vertical move the column is re-clamped to the new line.
func (b *Buffer) MoveCursor(dx, dy int) {
	b.cursor.Col = clamp(b.cursor.Col+dx, 0, b.lineLen(b.cursor.Row))
	b.cursor.Row = clamp(b.cursor.Row+dy, 0, len(b.lines)-1)
	b.cursor.Col = clamp(b.cursor.Col, 0, b.lineLen(b.cursor.Row))
}

// MoveToLineStart puts the cursor at column 0.
func (b *Buffer) MoveToLineStart() { b.cursor.Col = 0 }

// MoveToLineEnd puts the cursor one past the last grapheme.
func (b *Buffer) MoveToLineEnd() { b.cursor.Col = b.lineLen(b.cursor.Row) }

// InsertCharacter inserts r at the cursor and advances one column.
func (b *Buffer) InsertCharacter(r rune) {
	b.InsertText(string(r))
}

// InsertText inserts s (which must not contain line breaks) at the cursor
// and advances the cursor by its grapheme length.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	row := b.cursor.Row
	line := b.lines[row]
	if b.cursor.Col >= b.lineLen(row) {
		b.lines[row] = line + s
	} else {
		left, right := grapheme.SplitAt(line, b.cursor.Col)
		b.lines[row] = left + s + right
	}
	// A combining mark can merge into the preceding cluster.
	b.cursor.Col = clamp(b.cursor.Col+grapheme.Count(s), 0, b.lineLen(row))
	b.dirty = true
}

// InsertLineBreak splits the current line at the cursor; the cursor moves
// to column 0 of the new line.
func (b *Buffer) InsertLineBreak() {
	row := b.cursor.Row
	left, right := "", ""
	if b.cursor.Col >= b.lineLen(row) {
		left = b.lines[row]
	} else {
		left, right = grapheme.SplitAt(b.lines[row], b.cursor.Col)
	}
	b.lines[row] = left
	b.lines = insertAt(b.lines, row+1, right)
	b.cursor = Cursor{Col: 0, Row: row + 1}
	b.dirty = true
}

// DeleteBackward removes the grapheme before the cursor, or joins the
// current line onto the previous one when the cursor is at column 0.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	if col == 0 {
		if row == 0 {
			return
		}
		prevLen := b.lineLen(row - 1)
		b.lines[row-1] += b.lines[row]
		b.lines = removeAt(b.lines, row)
		b.cursor = Cursor{Col: prevLen, Row: row - 1}
		b.dirty = true
		return
	}
	b.lines[row] = grapheme.Remove(b.lines[row], col-1)
	b.cursor.Col = col - 1
	b.dirty = true
}

// DeleteForward removes the grapheme under the cursor. At the end of a line
// that has a successor, the next line is joined onto this one.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.Col
	if col < b.lineLen(row) {
		b.MoveCursor(1, 0)
		b.DeleteBackward()
		return
	}
	if row == len(b.lines)-1 {
		return
	}
	b.cursor = Cursor{Col: 0, Row: row + 1}
	b.DeleteBackward()
}

// Scroll adjusts the scroll offset so the cursor row is visible in a
// viewport of the given height.
func (b *Buffer) Scroll(height int) {
	if height <= 0 {
		return
	}
	if b.cursor.Row < b.scroll {
		b.scroll = b.cursor.Row
	}
	if b.cursor.Row >= b.scroll+height {
		b.scroll = b.cursor.Row - height + 1
	}
	b.scroll = clamp(b.scroll, 0, len(b.lines)-1)
}

// ScrollOffset returns the first visible row.
func (b *Buffer) ScrollOffset() int { return b.scroll }

// ViewCursor returns the cursor position relative to the scrolled viewport.
func (b *Buffer) ViewCursor() Cursor {
	return Cursor{Col: b.cursor.Col, Row: b.cursor.Row - b.scroll}
}

// Save writes the buffer to its path, each line terminated by '\n'.
func (b *Buffer) Save() error {
	if b.path == "" {
		return ErrNoPath
	}
	var sb strings.Builder
	for _, l := range b.lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(b.path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", b.path, err)
	}
	b.dirty = false
	b.lastSaved = time.Now()
	return nil
}

// SaveTo adopts path and saves. The path is kept even if the write fails.
func (b *Buffer) SaveTo(path string) error {
	b.path = path
	return b.Save()
}

// LoadFrom replaces the content with the file at path and adopts the path.
// On failure the buffer is left untouched.
func (b *Buffer) LoadFrom(path string) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	b.path = path
	b.lines = lines
	b.cursor = Cursor{}
	b.scroll = 0
	b.dirty = false
	b.lastSaved = time.Time{}
	return nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("load %s: %w", path, ErrNotText)
	}
	return splitLines(string(data)), nil
}

// splitLines splits on '\n' (tolerating "\r\n"); a final terminator does not
// produce an extra empty line.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func insertAt(lines []string, i int, s string) []string {
	lines = append(lines, "")
	copy(lines[i+1:], lines[i:])
	lines[i] = s
	return lines
}

func removeAt(lines []string, i int) []string {
	return append(lines[:i], lines[i+1:]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
