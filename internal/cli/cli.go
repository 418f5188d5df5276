// Package cli holds the flags and run bootstrap shared by the supplyrun
// binaries.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sawpanic/supplyrun/internal/config"
	"github.com/sawpanic/supplyrun/internal/input"
	applog "github.com/sawpanic/supplyrun/internal/log"
	"github.com/sawpanic/supplyrun/internal/metrics"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ErrUsage marks command line mistakes.
var ErrUsage = errors.New("usage error")

// Flags are the options every binary accepts.
type Flags struct {
	ConfigPath      string
	LogLevel        string
	LogFormat       string
	MetricsTextfile string
}

// Bind registers the shared flags on fs.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "YAML config file")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (trace|debug|info|warn|error)")
	fs.StringVar(&f.LogFormat, "log-format", "", "Log format (auto|console|json)")
	fs.StringVar(&f.MetricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")
}

// Resolve merges defaults, the config file and flags, in that order. The
// config file is validated on load, so a value rejected here came from a flag
// and is reported as ErrUsage.
func (f *Flags) Resolve() (config.Config, error) {
	cfg := config.Default()
	if f.ConfigPath != "" {
		loaded, err := config.Load(f.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFormat != "" {
		cfg.Log.Format = f.LogFormat
	}
	if f.MetricsTextfile != "" {
		cfg.Metrics.Textfile = f.MetricsTextfile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return cfg, nil
}

// Run is the per-invocation state handed to a program.
type Run struct {
	Program string
	Config  config.Config
	Logger  zerolog.Logger
	Metrics *metrics.Registry

	started time.Time
}

// Start resolves configuration and builds the logger and metrics for program.
func Start(program string, f *Flags, logOut io.Writer) (*Run, error) {
	cfg, err := f.Resolve()
	if err != nil {
		return nil, err
	}

	logger, err := applog.New(applog.Options{
		App:    program,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Out:    logOut,
	})
	if err != nil {
		return nil, err
	}

	return &Run{
		Program: program,
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(program),
		started: time.Now(),
	}, nil
}

// ReadLines reads the input named by the single positional argument and
// splits it into lines.
func (r *Run) ReadLines(cmd *cobra.Command, path string) ([]string, error) {
	text, err := r.ReadText(cmd, path)
	if err != nil {
		return nil, err
	}
	return input.Lines(text), nil
}

// ReadText reads the input named by the single positional argument.
func (r *Run) ReadText(cmd *cobra.Command, path string) (string, error) {
	text, err := input.Open(cmd.Context(), path, cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	r.Logger.Debug().Str("input", path).Int("bytes", len(text)).Msg("input read")
	return text, nil
}

// Finish reports value on stdout, records it and writes the metrics
// textfile.
func (r *Run) Finish(out io.Writer, value uint64) error {
	elapsed := time.Since(r.started)
	r.Metrics.RecordResult(float64(value), elapsed)
	r.Logger.Info().Uint64("result", value).Dur("elapsed", elapsed).Msg("run complete")

	if _, err := fmt.Fprintln(out, value); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return r.Close()
}

// Fail logs err, counts a rejected line when reason is set and still writes
// the metrics textfile. It returns err.
func (r *Run) Fail(err error, reason string) error {
	event := r.Logger.Error().Err(err)
	if reason != "" {
		r.Metrics.LineRejected(reason)
		event = event.Str("reason", reason)
	}
	event.Msg("run failed")

	if closeErr := r.Close(); closeErr != nil {
		r.Logger.Warn().Err(closeErr).Msg("metrics not written")
	}
	return err
}

// Close writes the metrics textfile if one is configured.
func (r *Run) Close() error {
	return r.Metrics.WriteTextfile(r.Config.Metrics.Textfile)
}

// ExactArgs is cobra.ExactArgs with the error marked as a usage error.
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: expected %d input argument(s), got %d", ErrUsage, n, len(args))
		}
		return nil
	}
}

// Execute runs cmd with args and maps the outcome to an exit code. Errors are
// printed to stderr.
func Execute(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(stderr, "error: %v\n", err)
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(stderr, cmd.UsageString())
		return ExitUsage
	}
	return ExitError
}
