package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sawpanic/supplyrun/internal/calories"
	"github.com/sawpanic/supplyrun/internal/cli"
)

const appName = "calories"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, newRootCmd(), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func newRootCmd() *cobra.Command {
	var (
		flags cli.Flags
		top   int
	)

	cmd := &cobra.Command{
		Use:   "calories [flags] <input-file|->",
		Short: "Find the elves carrying the most calories",
		Long: `The input lists one calorie count per line, with a blank line between
elves. The total carried by the best-stocked elf is printed; with --top N
the combined total of the N best-stocked elves is printed instead.`,
		Args: cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 1 {
				return fmt.Errorf("%w: --top must be at least 1, got %d", cli.ErrUsage, top)
			}
			return runCalories(cmd, &flags, top, args[0])
		},
	}
	flags.Bind(cmd.Flags())
	cmd.Flags().IntVar(&top, "top", 1, "Number of best-stocked elves to add up")

	return cmd
}

func runCalories(cmd *cobra.Command, flags *cli.Flags, top int, path string) error {
	run, err := cli.Start(appName, flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	text, err := run.ReadText(cmd, path)
	if err != nil {
		return run.Fail(err, "")
	}

	groups, err := calories.Parse(text)
	if err != nil {
		if errors.Is(err, calories.ErrOverflow) {
			return run.Fail(err, "overflow")
		}
		var pErr *calories.ParseError
		if errors.As(err, &pErr) {
			return run.Fail(err, "not_a_number")
		}
		return run.Fail(err, "")
	}
	for _, g := range groups {
		for range g.Items {
			run.Metrics.LineScored()
		}
	}

	best, err := calories.Largest(groups)
	if err != nil {
		return run.Fail(err, "")
	}
	run.Logger.Info().
		Int("elf", best.Index).
		Uint64("calories", best.Total).
		Int("elves", len(groups)).
		Msg("best-stocked elf")

	leaders := calories.TopN(groups, top)
	for rank, g := range leaders {
		run.Logger.Debug().Int("rank", rank+1).Int("elf", g.Index).Uint64("calories", g.Total).Msg("leader")
	}

	sum, err := calories.Sum(leaders)
	if err != nil {
		return run.Fail(err, "")
	}
	return run.Finish(cmd.OutOrStdout(), sum)
}
