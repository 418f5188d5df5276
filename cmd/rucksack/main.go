package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sawpanic/supplyrun/internal/cli"
	"github.com/sawpanic/supplyrun/internal/rucksack"
)

const appName = "rucksack"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, newRootCmd(), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func newRootCmd() *cobra.Command {
	var flags cli.Flags

	cmd := &cobra.Command{
		Use:   "rucksack [flags] <input-file|->",
		Short: "Sum the priorities of items misplaced across rucksack compartments",
		Long: `Each input line is one rucksack. Its first and second halves are the two
compartments; exactly one item letter must appear in both. The priority of
that letter (a-z = 1-26, A-Z = 27-52) is summed over all lines and printed.`,
		Args: cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRucksack(cmd, &flags, args[0])
		},
	}
	flags.Bind(cmd.Flags())

	return cmd
}

func runRucksack(cmd *cobra.Command, flags *cli.Flags, path string) error {
	run, err := cli.Start(appName, flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	lines, err := run.ReadLines(cmd, path)
	if err != nil {
		return run.Fail(err, "")
	}

	total, err := rucksack.Sum(lines, func(lineNo int, line string, p rucksack.Priority) {
		run.Metrics.LineScored()
		run.Logger.Debug().
			Int("line", lineNo).
			Str("rucksack", line).
			Str("item", string(p.Letter())).
			Uint8("priority", uint8(p)).
			Msg("rucksack scored")
	})
	if err != nil {
		var mErr *rucksack.MalformedInputError
		if errors.As(err, &mErr) {
			return run.Fail(err, string(mErr.Reason))
		}
		return run.Fail(err, "")
	}

	return run.Finish(cmd.OutOrStdout(), uint64(total))
}
