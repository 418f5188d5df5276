// Package log builds the zerolog logger used by the supplyrun binaries.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/sawpanic/supplyrun/internal/config"
)

// Options configures New.
type Options struct {
	App    string
	Level  string
	Format string    // auto|console|json
	Out    io.Writer // defaults to os.Stderr
	RunID  string    // generated when empty
}

// New returns a logger tagged with the app name and a run id. With the auto
// format the console writer is used only when Out is a terminal.
func New(opts Options) (zerolog.Logger, error) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	switch opts.Format {
	case config.FormatConsole:
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	case config.FormatJSON:
	case config.FormatAuto, "":
		if IsTerminal(out) {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
		}
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", opts.Format)
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", opts.App).
		Str("run_id", runID).
		Logger(), nil
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
