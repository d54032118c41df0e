package main

import (
	"github.com/spf13/cobra"

	"github.com/fireflycons/lineprogress"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Run simulated work behind a spinner",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}

	addWorkFlags(cmd, "characters the spinner cycles through")

	return cmd
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)

	status, err := lineprogress.NewStatusBarWithFormat(cfg.Label, cfg.StatusFormat, barOptions(cmd, cfg, logger)...)
	if err != nil {
		return err
	}

	status.Draw()
	if err := simulate(cmd.Context(), cfg, status.Increment, func(uint64) {}); err != nil {
		status.Free()
		cmd.PrintErrln()
		return err
	}

	status.Finish()
	logger.Info().Uint64("steps", cfg.Steps).Msg("done")

	return nil
}
