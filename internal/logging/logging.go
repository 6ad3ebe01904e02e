// Package logging builds the zerolog logger used by the CLI and handed to the
// orchestrator.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// New creates a logger writing JSON lines, or console output when
// HumanReadable is set. Logs go to stderr by default so rendered markup on
// stdout stays clean.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if trimmed := strings.TrimSpace(opts.Level); trimmed != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(trimmed))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
