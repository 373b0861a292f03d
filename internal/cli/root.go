package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-genesis/logger"
)

// options holds the flag values for the root command.
type options struct {
	cfgFile  string
	level    string
	mode     string
	color    string
	wrap     bool
	useSlog  bool
	workers  int
	messages int
}

// NewRootCommand builds the genesis demo command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&options{})
}

func newRootCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Print sample log lines with the genesis console renderer",
		Long: `Installs the console renderer and logs one line per severity.
Settings come from --config (YAML), then LOGGER_* environment variables, then flags.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := resolveSettings(cmd, opts)
			if err != nil {
				return err
			}
			if err := logger.InitWith(settings.Level, settings.Config); err != nil {
				return errors.Wrap(err, "install renderer")
			}
			return runDemo(cmd.ErrOrStderr(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.cfgFile, "config", "", "YAML settings file")
	f.StringVar(&opts.level, "level", "", "threshold: error, warn, info, debug or trace")
	f.StringVar(&opts.mode, "mode", "", "severity display: bars or text")
	f.StringVar(&opts.color, "color", "", "color output: auto, always or never")
	f.BoolVar(&opts.wrap, "wrap", false, "wrap long lines (reserved)")
	f.BoolVar(&opts.useSlog, "slog", false, "log through log/slog instead of the logger functions")
	f.IntVar(&opts.workers, "workers", 0, "goroutines logging concurrently after the demo")
	f.IntVar(&opts.messages, "messages", 10, "messages per worker")
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// resolveSettings layers explicitly set flags over the file and environment.
func resolveSettings(cmd *cobra.Command, opts *options) (logger.Settings, error) {
	settings, err := logger.LoadFile(opts.cfgFile)
	if err != nil {
		return settings, err
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		level, err := logger.ParseLevel(opts.level)
		if err != nil {
			return settings, errors.Wrap(err, "--level")
		}
		settings.Level = level
	}

	b := logger.NewBuilder().
		DisplayMode(settings.Config.DisplayMode()).
		Wrap(settings.Config.Wrap()).
		Colors(settings.Config.Colors())
	if flags.Changed("mode") {
		mode, err := logger.ParseDisplayMode(opts.mode)
		if err != nil {
			return settings, errors.Wrap(err, "--mode")
		}
		b.DisplayMode(mode)
	}
	if flags.Changed("color") {
		mode, err := logger.ParseColorMode(opts.color)
		if err != nil {
			return settings, errors.Wrap(err, "--color")
		}
		b.Colors(mode)
	}
	if flags.Changed("wrap") {
		b.Wrap(opts.wrap)
	}
	settings.Config = b.Build()
	return settings, nil
}

func runDemo(stderr io.Writer, opts *options) error {
	if !logger.Enabled(logger.TraceLevel) {
		fmt.Fprintln(stderr, "To see the full demo, try --level trace.")
	}

	if opts.useSlog {
		sl := slog.New(logger.NewHandler(nil)).With("demo", "slog")
		sl.Log(context.Background(), slog.LevelDebug-4, "test trace")
		sl.Debug("test debug")
		sl.Info("test info")
		sl.Warn("test warn")
		sl.Error("test error", "err", errors.New("boom"))
	} else {
		deep()
		logger.Debugf("test debug")
		logger.Infof("test info")
		logger.Warnln("test warn")
		logger.ErrorKV("test error", "err", "boom")
	}

	if opts.workers > 0 {
		var wg sync.WaitGroup
		wg.Add(opts.workers)
		for i := 0; i < opts.workers; i++ {
			go func(id int) {
				defer wg.Done()
				for j := 0; j < opts.messages; j++ {
					logger.Infof("worker-%d message-%d", id, j)
				}
			}(i)
		}
		wg.Wait()
	}

	logger.Flush()
	return nil
}

func deep() {
	logger.Tracef("test trace")
}
