package logger

import (
	"strings"

	"github.com/fatih/color"
)

// Color is one of the terminal colors a severity renders in.
type Color int

const (
	Red Color = iota
	Yellow
	Green
	Cyan
	Magenta
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Cyan:
		return "cyan"
	case Magenta:
		return "magenta"
	default:
		return "unknown"
	}
}

func (c Color) attribute() color.Attribute {
	switch c {
	case Red:
		return color.FgRed
	case Yellow:
		return color.FgYellow
	case Green:
		return color.FgGreen
	case Cyan:
		return color.FgCyan
	default:
		return color.FgMagenta
	}
}

// barGlyph is repeated markerWidth times for the Bars display mode.
const (
	barGlyph    = '█'
	markerWidth = 5
)

type levelStyle struct {
	color  Color
	label  string
	marker string
	paint  *color.Color
}

// styles is indexed by Level. Its length follows TraceLevel so a new
// severity gets a slot here; init panics if that slot is left empty.
var styles = [TraceLevel + 1]levelStyle{
	ErrorLevel: {color: Red, label: "ERROR"},
	WarnLevel:  {color: Yellow, label: " WARN"},
	InfoLevel:  {color: Green, label: " INFO"},
	DebugLevel: {color: Cyan, label: "DEBUG"},
	TraceLevel: {color: Magenta, label: "TRACE"},
}

func init() {
	marker := strings.Repeat(string(barGlyph), markerWidth)
	for _, level := range AllLevels() {
		s := &styles[level]
		if len(s.label) != markerWidth {
			panic("logger: missing presentation for level " + level.String())
		}
		s.marker = marker
		s.paint = color.New(s.color.attribute())
		s.paint.EnableColor()
	}
}

// styleOf returns the presentation for level, clamping out-of-range values
// to the nearest severity.
func styleOf(level Level) *levelStyle {
	switch {
	case level < ErrorLevel:
		return &styles[ErrorLevel]
	case level > TraceLevel:
		return &styles[TraceLevel]
	}
	return &styles[level]
}

// ColorOf returns the color a level renders in.
func ColorOf(level Level) Color {
	return styleOf(level).color
}

// LabelOf returns the five-character text label for a level.
func LabelOf(level Level) string {
	return styleOf(level).label
}

// MarkerOf returns the five-glyph bar used in Bars mode.
func MarkerOf(level Level) string {
	return styleOf(level).marker
}

// colorize wraps text in the level's color when enabled is set.
func colorize(text string, level Level, enabled bool) string {
	if !enabled {
		return text
	}
	return styleOf(level).paint.Sprint(text)
}
