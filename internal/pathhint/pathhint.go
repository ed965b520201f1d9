// Package pathhint suggests filesystem completions for a partially typed
// path.
package pathhint

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit paths in the directory part of input whose
// names fuzzily match the last path element. Directories carry a trailing
// separator. Unreadable directories yield nothing.
func Suggest(input string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	dir, query := split(input)
	entries, err := os.ReadDir(dirOrDot(dir))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		n := e.Name()
		if strings.HasPrefix(n, ".") && !strings.HasPrefix(query, ".") {
			continue
		}
		if e.IsDir() {
			n += string(filepath.Separator)
		}
		names = append(names, n)
	}

	var picked []string
	if query == "" {
		sort.Strings(names)
		picked = names
	} else {
		for _, m := range fuzzy.Find(query, names) {
			picked = append(picked, m.Str)
		}
	}
	if len(picked) > limit {
		picked = picked[:limit]
	}
	out := make([]string, len(picked))
	for i, n := range picked {
		out[i] = dir + n
	}
	return out
}

// split cuts input after its last separator.
func split(input string) (dir, base string) {
	i := strings.LastIndexAny(input, `/`+string(filepath.Separator))
	if i < 0 {
		return "", input
	}
	return input[:i+1], input[i+1:]
}

func dirOrDot(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
