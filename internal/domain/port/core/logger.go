package core

// LogLevel represents logging severity levels
type LogLevel int

const (
	// LogLevelDebug for detailed debug information
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for general operational information
	LogLevelInfo
	// LogLevelWarn for warnings
	LogLevelWarn
	// LogLevelError for errors information
	LogLevelError
)

// Logger defines structured logging operations used across the domain
type Logger interface {
	SetLevel(level LogLevel)
	GetLevel() LogLevel
	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}

// LogFielder is implemented by errors that carry their own structured log fields
type LogFielder interface {
	LogFields() map[string]any
}

// Fields merges the given field maps into a new map. Later maps win on key collisions.
func Fields(maps ...map[string]any) map[string]any {
	size := 0
	for _, m := range maps {
		size += len(m)
	}
	merged := make(map[string]any, size)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

// ErrorFields returns the structured fields for err, including its own LogFields when present
func ErrorFields(err error, extra map[string]any) map[string]any {
	if err == nil {
		return Fields(extra)
	}
	base := map[string]any{"error": err.Error()}
	if lf, ok := err.(LogFielder); ok {
		return Fields(base, lf.LogFields(), extra)
	}
	return Fields(base, extra)
}
