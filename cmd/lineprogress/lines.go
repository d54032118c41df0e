package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fireflycons/lineprogress"
	"github.com/fireflycons/lineprogress/internal/config"
)

// maxLineLength bounds a single line read from stdin.
const maxLineLength = 16 * 1024 * 1024

func newLinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Copy stdin to stdout, advancing a progress line for every line",
		Long: `Copy stdin to stdout line by line. With --total the progress line is a bar with an ETA,
without it a spinner:

  lineprogress lines --total "$(wc -l < big.csv)" < big.csv | gzip > big.csv.gz`,
		Args: cobra.NoArgs,
		RunE: runLines,
	}

	cmd.Flags().Uint64("total", 0, "expected number of lines (0 for a spinner)")
	cmd.Flags().String("format", "", "begin, fill and end characters of the bar")

	return cmd
}

func runLines(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	total, _ := cmd.Flags().GetUint64("total")
	if cfg.Label == config.Default().Label {
		cfg.Label = "Lines"
	}

	// stdout carries the copied data here, so there is nowhere to log to.
	opts := barOptions(cmd, cfg, zerolog.Nop())

	var tick, finish, free func()
	if total > 0 {
		bar, err := lineprogress.NewProgressBarWithFormat(cfg.Label, total, cfg.Format, opts...)
		if err != nil {
			return err
		}
		tick, finish, free = bar.Increment, bar.Finish, bar.Free
	} else {
		status, err := lineprogress.NewStatusBarWithFormat(cfg.Label, cfg.StatusFormat, opts...)
		if err != nil {
			return err
		}
		status.Draw()
		tick, finish, free = status.Increment, status.Finish, status.Free
	}

	if err := copyLines(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), tick); err != nil {
		free()
		cmd.PrintErrln()
		return err
	}

	finish()

	return nil
}

// copyLines copies r to w one line at a time, calling tick after each line.
func copyLines(ctx context.Context, r io.Reader, w io.Writer, tick func()) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineLength)

	out := bufio.NewWriter(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := out.Write(scanner.Bytes()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := out.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		tick()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
