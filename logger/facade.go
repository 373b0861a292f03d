package logger

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrAlreadyRegistered is returned when a sink is installed after another
// one already has been. The first sink stays active.
var ErrAlreadyRegistered = errors.New("logger: a sink is already registered")

// Record is a single log event handed to a Sink. File and Line are optional:
// an empty File or a zero Line means the location is unknown.
type Record struct {
	Level   Level
	File    string
	Line    int
	Message string
}

// Sink consumes records that passed the global level filter.
// Implementations must be safe for concurrent use.
type Sink interface {
	// Enabled reports whether records at level would be emitted.
	Enabled(level Level) bool
	// Log emits a record.
	Log(rec *Record)
	// Flush writes out anything buffered.
	Flush()
}

type sinkSlot struct {
	sink Sink
}

// global state
var (
	// active holds the process-wide sink. It is set at most once.
	active atomic.Pointer[sinkSlot]

	// maxLevel is the global filter checked before a record is built.
	maxLevel atomic.Int32
)

// SetSink installs s as the process-wide sink. Only the first call succeeds;
// later calls return ErrAlreadyRegistered and leave the first sink in place.
func SetSink(s Sink) error {
	if s == nil {
		return errors.New("logger: nil sink")
	}
	if !active.CompareAndSwap(nil, &sinkSlot{sink: s}) {
		return errors.WithStack(ErrAlreadyRegistered)
	}
	return nil
}

// SetMaxLevel sets the global threshold. Records less severe than level are
// dropped before they reach the sink.
func SetMaxLevel(level Level) {
	maxLevel.Store(int32(level))
}

// MaxLevel returns the global threshold.
func MaxLevel() Level {
	return Level(maxLevel.Load())
}

func currentSink() Sink {
	if slot := active.Load(); slot != nil {
		return slot.sink
	}
	return nil
}

// Enabled reports whether a record at level would currently be emitted.
func Enabled(level Level) bool {
	if !level.valid() || level > MaxLevel() {
		return false
	}
	s := currentSink()
	return s != nil && s.Enabled(level)
}

// Flush flushes the active sink, if any.
func Flush() {
	if s := currentSink(); s != nil {
		s.Flush()
	}
}

// logAt hands msg to the active sink, tagged with the source location
// calldepth frames up the stack.
func logAt(calldepth int, level Level, msg string) {
	s := currentSink()
	if s == nil {
		return
	}
	rec := Record{Level: level, Message: msg}
	if _, file, line, ok := runtime.Caller(calldepth); ok {
		rec.File = file
		rec.Line = line
	}
	s.Log(&rec)
}

// encodeFields formats key-value pairs as "key=value" strings.
func encodeFields(keyvals ...any) string {
	if len(keyvals) == 0 {
		return ""
	}
	parts := make([]string, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", key, keyvals[i+1]))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

// Logf logs a message at level formatted with fmt.Sprintf.
func Logf(level Level, format string, v ...any) {
	if !Enabled(level) {
		return
	}
	logAt(2, level, fmt.Sprintf(format, v...))
}

// --- Formatted logging methods (fmt.Sprintf style) ---

// Tracef logs a trace message formatted with fmt.Sprintf.
// The caller's file and line are attached to the record.
func Tracef(format string, v ...any) {
	if !Enabled(TraceLevel) {
		return
	}
	logAt(2, TraceLevel, fmt.Sprintf(format, v...))
}

// Debugf logs a debug message formatted with fmt.Sprintf.
// The caller's file and line are attached to the record.
func Debugf(format string, v ...any) {
	if !Enabled(DebugLevel) {
		return
	}
	logAt(2, DebugLevel, fmt.Sprintf(format, v...))
}

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) {
	if !Enabled(InfoLevel) {
		return
	}
	logAt(2, InfoLevel, fmt.Sprintf(format, v...))
}

// Warnf logs a warning message formatted with fmt.Sprintf.
func Warnf(format string, v ...any) {
	if !Enabled(WarnLevel) {
		return
	}
	logAt(2, WarnLevel, fmt.Sprintf(format, v...))
}

// Errorf logs an error message formatted with fmt.Sprintf.
// The caller's file and line are attached to the record.
func Errorf(format string, v ...any) {
	if !Enabled(ErrorLevel) {
		return
	}
	logAt(2, ErrorLevel, fmt.Sprintf(format, v...))
}

// --- Plain logging methods (Println style) ---

// Traceln logs a trace message by joining arguments with fmt.Sprint.
func Traceln(v ...any) {
	if !Enabled(TraceLevel) {
		return
	}
	logAt(2, TraceLevel, fmt.Sprint(v...))
}

// Debugln logs a debug message by joining arguments with fmt.Sprint.
func Debugln(v ...any) {
	if !Enabled(DebugLevel) {
		return
	}
	logAt(2, DebugLevel, fmt.Sprint(v...))
}

// Infoln logs an informational message by joining arguments with fmt.Sprint.
func Infoln(v ...any) {
	if !Enabled(InfoLevel) {
		return
	}
	logAt(2, InfoLevel, fmt.Sprint(v...))
}

// Warnln logs a warning message by joining arguments with fmt.Sprint.
func Warnln(v ...any) {
	if !Enabled(WarnLevel) {
		return
	}
	logAt(2, WarnLevel, fmt.Sprint(v...))
}

// Errorln logs an error message by joining arguments with fmt.Sprint.
func Errorln(v ...any) {
	if !Enabled(ErrorLevel) {
		return
	}
	logAt(2, ErrorLevel, fmt.Sprint(v...))
}

// --- Key-value logging methods ---

// TraceKV logs a trace message followed by key=value pairs.
func TraceKV(msg string, keyvals ...any) {
	if !Enabled(TraceLevel) {
		return
	}
	logAt(2, TraceLevel, msg+encodeFields(keyvals...))
}

// DebugKV logs a debug message followed by key=value pairs.
func DebugKV(msg string, keyvals ...any) {
	if !Enabled(DebugLevel) {
		return
	}
	logAt(2, DebugLevel, msg+encodeFields(keyvals...))
}

// InfoKV logs an info message followed by key=value pairs.
//
// Example:
//
//	logger.InfoKV("request completed", "status", 200, "path", "/api/users")
func InfoKV(msg string, keyvals ...any) {
	if !Enabled(InfoLevel) {
		return
	}
	logAt(2, InfoLevel, msg+encodeFields(keyvals...))
}

// WarnKV logs a warning message followed by key=value pairs.
func WarnKV(msg string, keyvals ...any) {
	if !Enabled(WarnLevel) {
		return
	}
	logAt(2, WarnLevel, msg+encodeFields(keyvals...))
}

// ErrorKV logs an error message followed by key=value pairs.
func ErrorKV(msg string, keyvals ...any) {
	if !Enabled(ErrorLevel) {
		return
	}
	logAt(2, ErrorLevel, msg+encodeFields(keyvals...))
}
