package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// DisplayMode selects how the severity of a line is shown.
type DisplayMode int

const (
	// Bars renders five colored block glyphs.
	Bars DisplayMode = iota
	// Text renders a five-character colored label such as " WARN".
	Text
)

// String returns the lowercase mode name.
func (m DisplayMode) String() string {
	if m == Text {
		return "text"
	}
	return "bars"
}

// ParseDisplayMode parses "bars" or "text" (case-insensitive).
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bars", "bar":
		return Bars, nil
	case "text", "label":
		return Text, nil
	}
	return Bars, errors.Errorf("unknown display mode %q", s)
}

// ColorMode controls whether ANSI colors are emitted.
type ColorMode int

const (
	// ColorAuto colors output only when it goes to a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = iota
	// ColorAlways forces ANSI colors.
	ColorAlways
	// ColorNever disables ANSI colors.
	ColorNever
)

// String returns the lowercase mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode parses "auto", "always" or "never" (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on", "true":
		return ColorAlways, nil
	case "never", "off", "false":
		return ColorNever, nil
	}
	return ColorAuto, errors.Errorf("unknown color mode %q", s)
}

// Configuration describes how a line looks. It is immutable once built;
// use a Builder to create one.
type Configuration struct {
	displayMode DisplayMode
	wrap        bool
	colors      ColorMode
}

// DefaultConfiguration returns Bars mode with wrapping off and automatic colors.
func DefaultConfiguration() Configuration {
	return Configuration{}
}

// DisplayMode returns the severity display mode.
func (c Configuration) DisplayMode() DisplayMode { return c.displayMode }

// Wrap reports whether long lines should wrap. The flag is stored but
// messages are currently emitted verbatim.
func (c Configuration) Wrap() bool { return c.wrap }

// Colors returns the color mode.
func (c Configuration) Colors() ColorMode { return c.colors }

// Builder collects partial overrides for a Configuration. Options left unset
// take their defaults in Build.
type Builder struct {
	displayMode *DisplayMode
	wrap        *bool
	colors      *ColorMode
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// DisplayMode overrides the display mode.
func (b *Builder) DisplayMode(m DisplayMode) *Builder {
	b.displayMode = &m
	return b
}

// Wrap overrides the wrap flag.
func (b *Builder) Wrap(wrap bool) *Builder {
	b.wrap = &wrap
	return b
}

// Colors overrides the color mode.
func (b *Builder) Colors(m ColorMode) *Builder {
	b.colors = &m
	return b
}

// Build returns the Configuration. It never fails.
func (b *Builder) Build() Configuration {
	cfg := DefaultConfiguration()
	if b.displayMode != nil {
		cfg.displayMode = *b.displayMode
	}
	if b.wrap != nil {
		cfg.wrap = *b.wrap
	}
	if b.colors != nil {
		cfg.colors = *b.colors
	}
	return cfg
}
