package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tu "rocket/internal/testutil"
)

func TestLoad_DefaultWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.TabWidth != 4 || cfg.Theme != "monokai" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := Default()
	in.TabWidth = 2
	in.Bindings = map[string][]string{"save": {"ctrl+w"}}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.TabWidth != 2 || len(got.Bindings["save"]) != 1 || got.Bindings["save"][0] != "ctrl+w" {
		t.Fatalf("unexpected round trip: %+v", got)
	}
	if names := got.BindingNames(); len(names) != 1 || names[0] != "save" {
		t.Fatalf("BindingNames: %v", names)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	_ = os.WriteFile(path, []byte("theme: dracula\n"), 0o644)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Theme != "dracula" || cfg.TabWidth != 4 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("tab_width: 99\n"), 0o644)
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "tab_width") {
		t.Fatalf("expected tab_width error, got %v", err)
	}
	garbage := filepath.Join(dir, "garbage.yaml")
	_ = os.WriteFile(garbage, []byte("tab_width: [\n"), 0o644)
	if _, err := Load(garbage); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := Save("", Default()); err == nil {
		t.Fatalf("expected empty path error")
	}
}

func TestPath_UsesConfigHome(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()
	p, err := Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if !strings.HasPrefix(p, tmp) || filepath.Base(p) != "config.yaml" {
		t.Fatalf("unexpected path %q", p)
	}
}

func TestSchema(t *testing.T) {
	b, err := MarshalSchema(Schema())
	if err != nil {
		t.Fatalf("MarshalSchema: %v", err)
	}
	s := string(b)
	for _, want := range []string{"tab_width", "theme", "bindings", "rocket editor configuration"} {
		if !strings.Contains(s, want) {
			t.Fatalf("schema missing %q:\n%s", want, s)
		}
	}
}
