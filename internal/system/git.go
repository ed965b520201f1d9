package system

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// GitStatus describes the repository state around one file.
type GitStatus struct {
	InRepo bool
	Branch string
	// Change is the porcelain XY code for the file ("" when unchanged,
	// "??" when untracked).
	Change string
}

const gitTimeout = 800 * time.Millisecond

func git(ctx context.Context, dir string, args ...string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, gitTimeout)
	defer cancel()
	out, err := exec.CommandContext(cctx, "git", append([]string{"-C", dir}, args...)...).Output()
	return strings.TrimSpace(string(out)), err
}

// FileGitStatus inspects the repository containing path. A missing git
// binary or a path outside any repository yields a zero status and no error.
func FileGitStatus(ctx context.Context, path string) (GitStatus, error) {
	gs := GitStatus{}
	if _, err := exec.LookPath("git"); err != nil {
		return gs, nil
	}
	dir := filepath.Dir(path)
	if out, err := git(ctx, dir, "rev-parse", "--is-inside-work-tree"); err != nil || out != "true" {
		return gs, nil
	}
	gs.InRepo = true

	if out, err := git(ctx, dir, "symbolic-ref", "--quiet", "--short", "HEAD"); err == nil {
		gs.Branch = out
	} else if out, err := git(ctx, dir, "rev-parse", "--short", "HEAD"); err == nil {
		// detached head
		gs.Branch = out
	}

	out, err := git(ctx, dir, "status", "--porcelain", "--", filepath.Base(path))
	if err != nil {
		return gs, err
	}
	if len(out) >= 2 {
		gs.Change = strings.TrimSpace(out[:2])
	}
	return gs, nil
}
