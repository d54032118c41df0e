package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/fireflycons/lineprogress"
	"github.com/fireflycons/lineprogress/internal/config"
)

func newBarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Run simulated work behind a progress bar",
		Args:  cobra.NoArgs,
		RunE:  runBar,
	}

	addWorkFlags(cmd, "begin, fill and end characters of the bar")

	return cmd
}

func addWorkFlags(cmd *cobra.Command, formatUsage string) {
	cmd.Flags().Uint64("steps", 0, "number of simulated work steps")
	cmd.Flags().Duration("delay", 0, "time each step takes")
	cmd.Flags().String("format", "", formatUsage)
}

func runBar(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	logger.Debug().Str("label", cfg.Label).Uint64("steps", cfg.Steps).Dur("delay", cfg.Delay).Msg("starting")

	bar, err := lineprogress.NewProgressBarWithFormat(cfg.Label, cfg.Steps, cfg.Format, barOptions(cmd, cfg, logger)...)
	if err != nil {
		return err
	}

	if err := simulate(cmd.Context(), cfg, bar.Increment, func(step uint64) {
		if step == cfg.Steps/2 {
			bar.SetLabel(cfg.Label + " (half way there)")
		}
	}); err != nil {
		bar.Free()
		cmd.PrintErrln()
		return err
	}

	bar.Finish()
	logger.Info().Uint64("steps", cfg.Steps).Msg("done")

	return nil
}

// simulate calls step cfg.Steps times, cfg.Delay apart, then after for the step just taken.
func simulate(ctx context.Context, cfg config.Config, step func(), after func(uint64)) error {
	for i := uint64(1); i <= cfg.Steps; i++ {
		if err := sleep(ctx, cfg.Delay); err != nil {
			return err
		}

		step()
		after(i)
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
