package logging

import (
	"log/slog"
	"strings"
)

// Writer is an io.Writer implementation that forwards external tool output to slog.
type Writer struct {
	logger *slog.Logger
	tool   string
}

// NewWriter constructs a Writer that attributes forwarded lines to the given tool.
func NewWriter(logger *slog.Logger, tool string) *Writer {
	return &Writer{logger: logger, tool: tool}
}

// Write logs each non-empty line of p at info level.
func (w *Writer) Write(p []byte) (int, error) {
	if w.logger != nil {
		for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
			line = strings.TrimRight(line, "\r")
			if line != "" {
				w.logger.Info(w.tool, "line", line)
			}
		}
	}
	return len(p), nil
}
