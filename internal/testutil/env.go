package testutil

import (
	"os"
	"testing"
)

// WithEnv sets key to val for the duration of a test; an empty val unsets
// it. The returned func restores the previous state.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
			return
		}
		_ = os.Unsetenv(key)
	}
}

// WriteFile creates name under dir with content and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := dir + string(os.PathSeparator) + name
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}
