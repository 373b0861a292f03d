package logger

// InitWith installs a Renderer with the given threshold and Configuration as
// the process-wide sink and opens the global filter to TraceLevel. It returns
// ErrAlreadyRegistered if a sink was installed before.
func InitWith(level Level, config Configuration) error {
	if err := SetSink(NewRenderer(level, config)); err != nil {
		return err
	}
	// The renderer filters by its own threshold as well.
	SetMaxLevel(TraceLevel)
	return nil
}

// Init installs a Renderer with all defaults: TraceLevel threshold, Bars mode.
func Init() error {
	return InitWith(TraceLevel, DefaultConfiguration())
}

// InitLevel installs a Renderer with the given threshold and the default Configuration.
func InitLevel(level Level) error {
	return InitWith(level, DefaultConfiguration())
}

// InitConfig installs a Renderer with a TraceLevel threshold and the given Configuration.
func InitConfig(config Configuration) error {
	return InitWith(TraceLevel, config)
}
