package ui

import "os"

// nfEnabled reports whether Nerd Font glyphs should be rendered.
// Default to enabled; disable with NERDFONT=0.
func nfEnabled() bool {
	return os.Getenv("NERDFONT") != "0"
}

func nf(icon, fallback string) string {
	if nfEnabled() {
		return icon
	}
	return fallback
}

func IconBranch() string { return nf("\ue0a0", "git:") } // pl-branch
func IconSaved() string  { return nf("\uf00c ", "") }    // fa-check
