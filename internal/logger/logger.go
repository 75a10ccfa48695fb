package logger

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// New returns a logger configured with the provided level. One logger is
// constructed at startup and passed explicitly to each component; there
// is no package-level instance.
func New(level string) *Logger {
	return newZapLogger(level)
}
