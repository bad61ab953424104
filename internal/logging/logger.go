// Package logging configures the charm logger used across the tool.
//
// Logs go to stderr so that command output on stdout stays pipeable.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Setup builds a logger for level and format, installs it as the package
// default and returns it.
//
// Level values: "debug", "info", "warn", "error" (default: "warn")
// Format values: "text", "json", "logfmt" (default: "text")
func Setup(level, format string) *log.Logger {
	l := New(os.Stderr, level, format)
	log.SetDefault(l)
	return l
}

// New builds a logger writing to w without touching the default.
func New(w io.Writer, level, format string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           parseLevel(level),
		Formatter:       parseFormat(format),
		ReportTimestamp: true,
		Prefix:          "inventory",
	})
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

func parseFormat(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
