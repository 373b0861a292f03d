package logger

import (
	"bytes"
	"io"
	"testing"
	"time"
)

// fixedTime is the clock used by tests: 14:07 local time.
var fixedTime = time.Date(2024, time.March, 1, 14, 7, 30, 0, time.Local)

// captureOutput points stdout at a buffer, freezes the clock and clears the
// global sink. Everything is restored when the test ends.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldStdout, oldStderr, oldClock := outStdout, outStderr, clock
	outStdout = &buf
	outStderr = io.Discard
	clock = func() time.Time { return fixedTime }
	resetRegistration()
	t.Cleanup(func() {
		outStdout, outStderr, clock = oldStdout, oldStderr, oldClock
		resetRegistration()
	})
	return &buf
}

// resetRegistration undoes SetSink and SetMaxLevel. Only tests may do this.
func resetRegistration() {
	active.Store(nil)
	maxLevel.Store(int32(OffLevel))
}

func plainConfig(mode DisplayMode) Configuration {
	return NewBuilder().DisplayMode(mode).Colors(ColorNever).Build()
}
