package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Quiz.Questions != nil || cfg.Notify.Max != nil || cfg.UI.Accent != nil {
		t.Fatalf("missing file should yield empty config: %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("empty path accepted")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[quiz]
questions = 5
options = 3

[notify]
max = 50
reminder-delay-ms = 800

[ui]
accent = "#FF0000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Quiz.Questions == nil || *cfg.Quiz.Questions != 5 {
		t.Fatalf("quiz.questions not parsed: %+v", cfg.Quiz)
	}
	if cfg.Quiz.Options == nil || *cfg.Quiz.Options != 3 {
		t.Fatalf("quiz.options not parsed: %+v", cfg.Quiz)
	}
	if cfg.Notify.Max == nil || *cfg.Notify.Max != 50 {
		t.Fatalf("notify.max not parsed: %+v", cfg.Notify)
	}
	if cfg.Notify.ReminderDelayMs == nil || *cfg.Notify.ReminderDelayMs != 800 {
		t.Fatalf("notify.reminder-delay-ms not parsed: %+v", cfg.Notify)
	}
	if cfg.UI.Accent == nil || *cfg.UI.Accent != "#FF0000" {
		t.Fatalf("ui.accent not parsed: %+v", cfg.UI)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[quiz\nbad"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed config accepted")
	}
}
