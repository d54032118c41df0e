package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fireflycons/lineprogress"
	"github.com/fireflycons/lineprogress/internal/config"
	"github.com/fireflycons/lineprogress/internal/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lineprogress",
		Short:         "Single-line terminal progress bars",
		Long:          `Draws a self-overwriting progress line on stderr, either for simulated work or for lines flowing through a pipe.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.BoolP("verbose", "v", false, "log debug events")
	flags.String("label", "", "label printed before the bar")
	flags.Int("width", 0, "screen width in columns (0 measures the terminal)")

	root.AddCommand(newBarCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newLinesCmd())

	return root
}

// loadConfig layers flags that were set over the config file over the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return config.Config{}, err
		}
	}

	if flags.Changed("label") {
		cfg.Label, _ = flags.GetString("label")
	}
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("steps") {
		cfg.Steps, _ = flags.GetUint64("steps")
	}
	if flags.Changed("delay") {
		cfg.Delay, _ = flags.GetDuration("delay")
	}
	if flags.Changed("format") {
		f, _ := flags.GetString("format")
		if cmd.Name() == "status" {
			cfg.StatusFormat = f
		} else {
			cfg.Format = f
		}
	}

	return cfg, cfg.Validate()
}

// newLogger writes to the command's stdout; stderr carries the progress line.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(cmd.OutOrStdout(), verbose)
}

// barOptions points a bar at the command's stderr with the configured width.
func barOptions(cmd *cobra.Command, cfg config.Config, logger zerolog.Logger) []lineprogress.Option {
	return []lineprogress.Option{
		lineprogress.WithWriter(cmd.ErrOrStderr()),
		lineprogress.WithWidthProvider(cfg.WidthProvider()),
		lineprogress.WithLogger(logger),
		lineprogress.WithHiddenCursor(),
	}
}
