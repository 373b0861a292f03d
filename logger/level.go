package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Level defines log severity. Lower values are more severe, so a record
// passes a threshold when its level is less than or equal to it.
type Level int

const (
	// OffLevel disables all logging when used as a threshold.
	OffLevel Level = iota
	// ErrorLevel is for failures that need attention.
	ErrorLevel
	// WarnLevel is for unexpected conditions that don't stop the program.
	WarnLevel
	// InfoLevel is for routine operational messages.
	InfoLevel
	// DebugLevel is for diagnostic output.
	DebugLevel
	// TraceLevel is the most verbose level.
	TraceLevel
)

// AllLevels returns every severity a record can carry, most severe first.
func AllLevels() []Level {
	return []Level{
		ErrorLevel,
		WarnLevel,
		InfoLevel,
		DebugLevel,
		TraceLevel,
	}
}

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case OffLevel:
		return "OFF"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// valid reports whether l is one of the record severities.
func (l Level) valid() bool {
	return l >= ErrorLevel && l <= TraceLevel
}

// ParseLevel parses a level name (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OFF", "NONE":
		return OffLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "TRACE":
		return TraceLevel, nil
	}
	return OffLevel, errors.Errorf("unknown log level %q", s)
}
