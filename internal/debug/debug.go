// Package debug builds the diagnostics loggers used by equal-height scopes.
//
// When the EQUALHEIGHT_DEBUG environment variable is set to a file path,
// every scope without an explicit logger appends to that file. Terminal
// programs own stdout and stderr, so a file is the only safe sink while a
// program is running.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "EQUALHEIGHT_DEBUG"

var (
	envOnce   sync.Once
	envLogger *log.Logger
)

// New creates a logger writing to w at the given level.
// Timestamps are formatted as "HH:MM:SS.mmm".
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
		Prefix:          "equalheight",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

// Open creates a debug-level logger appending to the file at path.
// The caller closes the returned file when done.
func Open(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		path = "equalheight-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return New(f, log.DebugLevel), f, nil
}

// FromEnv returns the process-wide file logger named by EQUALHEIGHT_DEBUG,
// or nil when the variable is unset or the file cannot be opened.
// The file stays open for the life of the process.
func FromEnv() *log.Logger {
	envOnce.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		if l, _, err := Open(path); err == nil {
			envLogger = l
		}
	})
	return envLogger
}

// Table renders rows as a bordered text table for diagnostics output.
func Table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		Render()
}
