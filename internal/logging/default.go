package logging

// defaultLogger backs GetLogger until the CLI installs a configured one.
var defaultLogger Logger = NewLogrusAdapterFromLogger(nil)

// GetLogger returns the process-wide default logger. Packages capture it
// in a package-level variable and expose SetLogger so the root command
// can swap in the configured logger at startup.
func GetLogger() Logger {
	return defaultLogger
}

// SetDefaultLogger replaces the logger returned by GetLogger.
// A nil logger is ignored.
func SetDefaultLogger(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}
