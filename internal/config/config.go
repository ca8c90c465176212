// Package config loads the specdev tool configuration from defaults, user
// and project config files, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds the specdev CLI tool settings.
type Configuration struct {
	// TemplatesDir is an optional directory of user templates that extend
	// and shadow the embedded ones.
	TemplatesDir string `koanf:"templates_dir"`
	// CheckDocuments makes document reference resolution the default for
	// validate and lint runs.
	CheckDocuments bool `koanf:"check_documents"`
	// DefaultStage is the lifecycle stage assumed when --stage is not given.
	DefaultStage string `koanf:"default_stage" validate:"required,oneof=bootstrap post-init post-scaffold"`
	// Color enables colored terminal output.
	Color   bool          `koanf:"color"`
	History HistoryConfig `koanf:"history"`
}

// HistoryConfig controls run-history recording.
type HistoryConfig struct {
	Enabled    bool `koanf:"enabled"`
	MaxEntries int  `koanf:"max_entries" validate:"min=0,max=10000"`
}

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > project config > user config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".specdev", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load user config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load project config: %w", err)
			}
		}
	}

	k.Load(env.Provider("SPECDEV_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.TemplatesDir = expandHomePath(cfg.TemplatesDir)

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: SPECDEV_CHECK_DOCUMENTS -> check_documents,
// SPECDEV_HISTORY__MAX_ENTRIES -> history.max_entries.
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "SPECDEV_"))
	return strings.ReplaceAll(key, "__", ".")
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
