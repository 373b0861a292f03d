// Package logger renders log records as single colored console lines.
//
// # Console Output
//
// Every accepted record becomes one line on stdout:
//
//	█████ 14:07 (main.go:42) connecting to database
//	 WARN 14:07 disk at 90%
//
// The first column is the severity, drawn as five colored bars (Bars mode,
// the default) or as a padded five-character label (Text mode). Trace, Debug
// and Error lines carry the caller's file basename and line; Info and Warn
// lines don't.
//
// Colors follow the severity: ERROR red, WARN yellow, INFO green, DEBUG cyan,
// TRACE magenta. ColorAuto (the default) only colors a terminal and honors
// NO_COLOR.
//
// # Usage
//
// Install the renderer once at startup:
//
//	if err := logger.Init(); err != nil {
//	    // another sink was installed first
//	}
//
// or with options:
//
//	cfg := logger.NewBuilder().DisplayMode(logger.Text).Build()
//	logger.InitWith(logger.DebugLevel, cfg)
//
// Then log with the package-level functions:
//
//	logger.Infof("server started on port %d", 8080)
//	logger.ErrorKV("query failed", "table", "users", "retry", 3)
//
// Only the first Init* call succeeds; later ones return ErrAlreadyRegistered
// and leave the first renderer in place.
//
// # Settings File
//
// InitFromFile reads YAML with the keys level, display_mode, wrap and color.
// LOGGER_LEVEL, LOGGER_DISPLAY_MODE and LOGGER_COLOR override the file.
//
// # log/slog
//
// NewHandler adapts any Sink to slog.Handler:
//
//	slog.SetDefault(slog.New(logger.NewHandler(nil)))
//
// Lines from concurrent goroutines never interleave.
package logger
