package settings

import "testing"

func TestValidateTabWidth(t *testing.T) {
	for _, s := range []string{"1", " 4 ", "16"} {
		if err := validateTabWidth(s); err != nil {
			t.Fatalf("%q: %v", s, err)
		}
	}
	for _, s := range []string{"", "0", "17", "four"} {
		if err := validateTabWidth(s); err == nil {
			t.Fatalf("%q: expected error", s)
		}
	}
}

func TestThemeOptionsIncludeDefault(t *testing.T) {
	for _, o := range themeOptions() {
		if o.Value == "monokai" {
			return
		}
	}
	t.Fatalf("monokai missing from theme options")
}
