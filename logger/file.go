package logger

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values read from a settings file.
const (
	EnvLevel       = "LOGGER_LEVEL"
	EnvDisplayMode = "LOGGER_DISPLAY_MODE"
	EnvColor       = "LOGGER_COLOR"
)

// Settings is a threshold plus the Configuration to render with.
type Settings struct {
	Level  Level
	Config Configuration
}

// fileSettings mirrors the YAML layout:
//
//	level: debug
//	display_mode: text
//	wrap: false
//	color: auto
type fileSettings struct {
	Level       string `yaml:"level"`
	DisplayMode string `yaml:"display_mode"`
	Wrap        *bool  `yaml:"wrap"`
	Color       string `yaml:"color"`
}

// DefaultSettings returns a TraceLevel threshold with the default Configuration.
func DefaultSettings() Settings {
	return Settings{Level: TraceLevel, Config: DefaultConfiguration()}
}

// LoadFile reads settings from a YAML file and applies LOGGER_* environment
// overrides. An empty path skips the file and only applies the environment.
func LoadFile(path string) (Settings, error) {
	var fs fileSettings
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return DefaultSettings(), errors.Wrapf(err, "read logger settings %s", path)
		}
		if err := yaml.Unmarshal(data, &fs); err != nil {
			return DefaultSettings(), errors.Wrapf(err, "parse logger settings %s", path)
		}
	}
	if v := os.Getenv(EnvLevel); v != "" {
		fs.Level = v
	}
	if v := os.Getenv(EnvDisplayMode); v != "" {
		fs.DisplayMode = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		fs.Color = v
	}
	return fs.resolve()
}

func (fs fileSettings) resolve() (Settings, error) {
	s := DefaultSettings()
	b := NewBuilder()
	if fs.Level != "" {
		level, err := ParseLevel(fs.Level)
		if err != nil {
			return s, errors.Wrap(err, "level")
		}
		s.Level = level
	}
	if fs.DisplayMode != "" {
		mode, err := ParseDisplayMode(fs.DisplayMode)
		if err != nil {
			return s, errors.Wrap(err, "display_mode")
		}
		b.DisplayMode(mode)
	}
	if fs.Wrap != nil {
		b.Wrap(*fs.Wrap)
	}
	if fs.Color != "" {
		mode, err := ParseColorMode(fs.Color)
		if err != nil {
			return s, errors.Wrap(err, "color")
		}
		b.Colors(mode)
	}
	s.Config = b.Build()
	return s, nil
}

// InitFromFile loads settings with LoadFile and installs a Renderer built from them.
func InitFromFile(path string) error {
	s, err := LoadFile(path)
	if err != nil {
		return err
	}
	return InitWith(s.Level, s.Config)
}
