// Package style turns a line of text into styled tokens for rendering.
//
// Classification is deliberately shallow: a per-extension profile tags
// individual space-separated words. It is not a language parser.
package style

import "strings"

// Tag classifies a token for the presentation layer.
type Tag int

const (
	TagNone Tag = iota
	TagKeyword
	TagBracket
	TagOperator
)

func (t Tag) String() string {
	switch t {
	case TagKeyword:
		return "keyword"
	case TagBracket:
		return "bracket"
	case TagOperator:
		return "operator"
	default:
		return "none"
	}
}

// Token is a run of text with a single tag.
type Token struct {
	Text string
	Tag  Tag
}

// Line splits text on single spaces, classifies each word with the profile
// for ext and re-inserts the spaces as untagged tokens. Joining the Text of
// the result reproduces text exactly.
func Line(text, ext string) []Token {
	p := ProfileFor(ext)
	words := strings.Split(text, " ")
	out := make([]Token, 0, len(words)*2)
	for i, w := range words {
		if i > 0 {
			out = append(out, Token{Text: " "})
		}
		if w == "" {
			continue
		}
		out = append(out, Token{Text: w, Tag: p.Classify(w)})
	}
	return out
}

// Lines styles every line with the same extension.
func Lines(lines []string, ext string) [][]Token {
	out := make([][]Token, len(lines))
	for i, l := range lines {
		out[i] = Line(l, ext)
	}
	return out
}
