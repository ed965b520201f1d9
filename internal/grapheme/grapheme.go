package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Offset returns the byte offset of the n-th grapheme boundary in text.
// n is clamped to [0, Count(text)].
func Offset(text string, n int) int {
	if n <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == n {
			start, _ := g.Positions()
			return start
		}
		idx++
	}
	return len(text)
}

// SplitAt cuts text at grapheme index n.
func SplitAt(text string, n int) (string, string) {
	off := Offset(text, n)
	return text[:off], text[off:]
}

// Slice returns the substring covering graphemes [start, end).
func Slice(text string, start, end int) string {
	if end <= start {
		return ""
	}
	return text[Offset(text, start):Offset(text, end)]
}

// DropLast removes the final grapheme cluster of text.
func DropLast(text string) string {
	n := Count(text)
	if n == 0 {
		return text
	}
	return text[:Offset(text, n-1)]
}

// Remove deletes the grapheme at index n; out of range is a no-op.
func Remove(text string, n int) string {
	if n < 0 || n >= Count(text) {
		return text
	}
	var sb strings.Builder
	sb.WriteString(text[:Offset(text, n)])
	sb.WriteString(text[Offset(text, n+1):])
	return sb.String()
}
