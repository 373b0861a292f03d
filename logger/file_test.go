package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvLevel, "")
	t.Setenv(EnvDisplayMode, "")
	t.Setenv(EnvColor, "")
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logger.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	clearSettingsEnv(t)
	path := writeSettings(t, "level: debug\ndisplay_mode: text\nwrap: true\ncolor: never\n")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.Level != DebugLevel {
		t.Errorf("level = %s, want DEBUG", s.Level)
	}
	if s.Config.DisplayMode() != Text || !s.Config.Wrap() || s.Config.Colors() != ColorNever {
		t.Errorf("unexpected configuration %+v", s.Config)
	}
}

func TestLoadFile_PartialUsesDefaults(t *testing.T) {
	clearSettingsEnv(t)
	path := writeSettings(t, "display_mode: text\n")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.Level != TraceLevel || s.Config.Wrap() || s.Config.Colors() != ColorAuto {
		t.Fatalf("omitted keys should keep defaults, got %s %+v", s.Level, s.Config)
	}
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	clearSettingsEnv(t)
	path := writeSettings(t, "level: debug\ndisplay_mode: text\n")
	t.Setenv(EnvLevel, "error")
	t.Setenv(EnvDisplayMode, "bars")
	t.Setenv(EnvColor, "always")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.Level != ErrorLevel || s.Config.DisplayMode() != Bars || s.Config.Colors() != ColorAlways {
		t.Fatalf("environment should override file, got %s %+v", s.Level, s.Config)
	}
}

func TestLoadFile_NoPath(t *testing.T) {
	clearSettingsEnv(t)
	s, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile(\"\") failed: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	clearSettingsEnv(t)

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	bad := writeSettings(t, "level: [unterminated\n")
	if _, err := LoadFile(bad); err == nil || !strings.Contains(err.Error(), "parse logger settings") {
		t.Fatalf("expected parse error, got %v", err)
	}

	unknown := writeSettings(t, "level: loud\n")
	if _, err := LoadFile(unknown); err == nil || !strings.Contains(err.Error(), "level") {
		t.Fatalf("expected level error, got %v", err)
	}
}

func TestInitFromFile(t *testing.T) {
	clearSettingsEnv(t)
	buf := captureOutput(t)
	path := writeSettings(t, "level: warn\ndisplay_mode: text\ncolor: never\n")

	if err := InitFromFile(path); err != nil {
		t.Fatalf("InitFromFile failed: %v", err)
	}
	Infof("hidden")
	Warnf("shown")

	if got, want := buf.String(), " WARN 14:07 shown\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
