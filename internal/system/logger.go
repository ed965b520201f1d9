package system

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. The TUI owns the terminal, so
// output is discarded until SetupLogger points it at a file.
var Logger = clog.NewWithOptions(io.Discard, clog.Options{
	ReportTimestamp: true,
	Prefix:          "rocket",
})

// SetupLogger appends log output to path at the given level. An empty path
// keeps logging disabled. The returned closer releases the file.
func SetupLogger(path, level string) (io.Closer, error) {
	if path == "" {
		return io.NopCloser(nil), nil
	}
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	Logger.SetOutput(f)
	Logger.SetLevel(lvl)
	return f, nil
}
