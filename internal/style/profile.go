package style

import (
	"path/filepath"
	"strings"
)

// Profile classifies a single word.
type Profile interface {
	Classify(word string) Tag
}

// ProfileFunc adapts a function to Profile.
type ProfileFunc func(word string) Tag

func (f ProfileFunc) Classify(word string) Tag { return f(word) }

// Plain tags nothing.
var Plain Profile = ProfileFunc(func(string) Tag { return TagNone })

// wordSet builds a Profile from fixed word lists.
type wordSet map[string]Tag

func (s wordSet) Classify(word string) Tag { return s[word] }

func words(tag Tag, list ...string) wordSet {
	s := wordSet{}
	for _, w := range list {
		s[w] = tag
	}
	return s
}

func merge(sets ...wordSet) wordSet {
	out := wordSet{}
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

var brackets = words(TagBracket, "{", "}", "(", ")", "[", "]")

// profiles maps a normalised extension to its profile. Adding a language
// means adding an entry here.
var profiles = map[string]Profile{
	"rs": merge(
		words(TagKeyword, "fn"),
		words(TagOperator, "&"),
		brackets,
	),
	"go": merge(
		words(TagKeyword, "func", "package", "import", "return", "if", "else",
			"for", "range", "type", "struct", "interface", "var", "const",
			"switch", "case", "default", "defer", "go", "chan", "select", "map"),
		words(TagOperator, ":=", "&", "*", "<-"),
		brackets,
	),
}

// ProfileFor returns the profile registered for ext, or Plain. A leading
// dot, commas and letter case are ignored.
func ProfileFor(ext string) Profile {
	if p, ok := profiles[normalizeExt(ext)]; ok {
		return p
	}
	return Plain
}

// Extension returns the normalised extension of a file path.
func Extension(path string) string {
	return normalizeExt(filepath.Ext(path))
}

func normalizeExt(ext string) string {
	ext = strings.ReplaceAll(ext, ",", "")
	ext = strings.TrimPrefix(ext, ".")
	return strings.ToLower(ext)
}
