package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sawpanic/supplyrun/internal/cli"
	"github.com/sawpanic/supplyrun/internal/rps"
)

const appName = "rps"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, newRootCmd(), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func newRootCmd() *cobra.Command {
	var flags cli.Flags

	cmd := &cobra.Command{
		Use:   "rps [flags] <input-file|->",
		Short: "Score a rock-paper-scissors strategy guide",
		Long: `Each input line is "<opponent> <mine>" where A/X is rock, B/Y is paper and
C/Z is scissors. A round scores the shape (1, 2, 3) plus the outcome
(loss 0, draw 3, win 6). The total over all rounds is printed.`,
		Args: cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRPS(cmd, &flags, args[0])
		},
	}
	flags.Bind(cmd.Flags())

	return cmd
}

func runRPS(cmd *cobra.Command, flags *cli.Flags, path string) error {
	run, err := cli.Start(appName, flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	lines, err := run.ReadLines(cmd, path)
	if err != nil {
		return run.Fail(err, "")
	}

	total, err := rps.Score(lines, func(lineNo int, round rps.Round) {
		run.Metrics.LineScored()
		run.Logger.Debug().
			Int("line", lineNo).
			Stringer("opponent", round.Opponent).
			Stringer("mine", round.Mine).
			Stringer("outcome", round.Outcome()).
			Int("score", round.Score()).
			Msg("round scored")
	})
	if err != nil {
		reason := "bad_round"
		if errors.Is(err, rps.ErrUnknownMove) {
			reason = "unknown_move"
		}
		return run.Fail(err, reason)
	}

	return run.Finish(cmd.OutOrStdout(), uint64(total))
}
