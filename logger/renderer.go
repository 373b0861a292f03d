package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// timeLayout is the 24-hour HH:MM timestamp shown on every line.
const timeLayout = "15:04"

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = colorable.NewColorableStdout()
	outStderr io.Writer = os.Stderr

	clock = time.Now

	// logMutex serializes writes from every Renderer so lines sharing a
	// destination reach it in one piece.
	logMutex sync.Mutex
)

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// Renderer is a Sink that prints one colored line per record to stdout:
//
//	<severity> <HH:MM> [(<file>:<line>) ]<message>
//
// Its threshold and Configuration never change after NewRenderer.
type Renderer struct {
	threshold Level
	config    Configuration
	colored   bool
	out       io.Writer
	now       func() time.Time
}

// SetOutput redirects renderers created afterwards to w instead of stdout.
// Call it before Init; a nil w restores stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	outStdout = w
}

// NewRenderer returns a Renderer that emits records at least as severe as threshold.
func NewRenderer(threshold Level, config Configuration) *Renderer {
	return &Renderer{
		threshold: threshold,
		config:    config,
		colored:   useColor(config.Colors(), outStdout),
		out:       outStdout,
		now:       clock,
	}
}

// useColor resolves a ColorMode against the destination writer.
func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if color.NoColor {
		return false
	}
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	// Other writers (colorable's console wrapper on Windows) follow the
	// stdout detection fatih/color did at startup.
	return true
}

// Threshold returns the least severe level the Renderer emits.
func (r *Renderer) Threshold() Level { return r.threshold }

// Configuration returns the Configuration the Renderer was built with.
func (r *Renderer) Configuration() Configuration { return r.config }

// Enabled reports whether level is one of the five severities and at least
// as severe as the threshold.
func (r *Renderer) Enabled(level Level) bool {
	return level.valid() && level <= r.threshold
}

// Log renders rec as a single line. Records below the threshold are ignored.
// Safe for concurrent use.
func (r *Renderer) Log(rec *Record) {
	if rec == nil || !r.Enabled(rec.Level) {
		return
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	r.severityStage(buf, rec)
	r.timeStage(buf)
	if showsFileInfo(rec.Level) {
		r.fileInfoStage(buf, rec)
	}
	r.messageStage(buf, rec)
	buf.WriteByte('\n')

	logMutex.Lock()
	defer logMutex.Unlock()
	if _, err := r.out.Write(buf.Bytes()); err != nil {
		fmt.Fprintf(outStderr, "logger: failed to write log line: %v\n", err)
	}
}

// Flush is a no-op: every line is written as soon as it is rendered.
func (r *Renderer) Flush() {}

func (r *Renderer) severityStage(buf *bytes.Buffer, rec *Record) {
	var text string
	switch r.config.DisplayMode() {
	case Text:
		text = LabelOf(rec.Level)
	default:
		text = MarkerOf(rec.Level)
	}
	buf.WriteString(colorize(text, rec.Level, r.colored))
	buf.WriteByte(' ')
}

func (r *Renderer) timeStage(buf *bytes.Buffer) {
	buf.WriteString(r.now().Format(timeLayout))
	buf.WriteByte(' ')
}

// showsFileInfo keeps Info and Warn lines free of source locations.
func showsFileInfo(level Level) bool {
	switch level {
	case TraceLevel, DebugLevel, ErrorLevel:
		return true
	default:
		return false
	}
}

// fileInfoStage writes "(basename:line) " when both file and line are known.
func (r *Renderer) fileInfoStage(buf *bytes.Buffer, rec *Record) {
	if rec.File == "" || rec.Line <= 0 {
		return
	}
	buf.WriteByte('(')
	buf.WriteString(baseName(rec.File))
	buf.WriteByte(':')
	buf.WriteString(strconv.Itoa(rec.Line))
	buf.WriteString(") ")
}

// messageStage writes the message verbatim. The wrap flag has no effect yet.
func (r *Renderer) messageStage(buf *bytes.Buffer, rec *Record) {
	buf.WriteString(rec.Message)
}

// baseName returns the last '/'-separated segment of path.
func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
