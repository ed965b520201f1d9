package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAccept_FiltersAndSettles(t *testing.T) {
	w := &Watcher{files: map[string]bool{}, lastSent: map[string]time.Time{}}
	dir := t.TempDir()
	tracked := filepath.Join(dir, "a.txt")
	w.files[tracked] = true

	now := time.Now()
	if _, ok := w.accept(filepath.Join(dir, "b.txt"), now); ok {
		t.Fatalf("untracked file accepted")
	}
	if p, ok := w.accept(tracked, now); !ok || p != tracked {
		t.Fatalf("tracked file rejected: %q %v", p, ok)
	}
	if _, ok := w.accept(tracked, now.Add(100*time.Millisecond)); ok {
		t.Fatalf("repeat inside settle window accepted")
	}
	if _, ok := w.accept(tracked, now.Add(time.Second)); !ok {
		t.Fatalf("event after settle window rejected")
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	dir := t.TempDir()
	p := filepath.Join(dir, "watched.txt")
	if err := os.WriteFile(p, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	w.Track([]string{p})
	if !w.Tracked(p) {
		t.Fatalf("Tracked(%q) = false", p)
	}

	if err := os.WriteFile(p, []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.Abs(p)
	select {
	case got := <-w.Changes():
		if got != want {
			t.Fatalf("change for %q, want %q", got, want)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no change reported")
	}

	w.Track(nil)
	if w.Tracked(p) {
		t.Fatalf("path still tracked after reset")
	}
}
