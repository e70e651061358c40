// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Quiz   QuizConfig   `toml:"quiz"`
	Notify NotifyConfig `toml:"notify"`
	UI     UIConfig     `toml:"ui"`
}

// QuizConfig maps quiz-related settings.
type QuizConfig struct {
	Questions *int `toml:"questions"`
	Options   *int `toml:"options"`
}

// NotifyConfig maps notification-related settings.
type NotifyConfig struct {
	Max             *int `toml:"max"`
	ReminderDelayMs *int `toml:"reminder-delay-ms"`
}

// UIConfig maps appearance settings.
type UIConfig struct {
	Accent *string `toml:"accent"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
