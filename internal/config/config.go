package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"mailcorpus/internal/stats"
)

// EnvPrefix prefixes every environment variable the configuration reads,
// e.g. MAILCORPUS_OUTPUT_DIR.
const EnvPrefix = "MAILCORPUS"

// Config holds all configuration for the application.
type Config struct {
	OutputDir        string
	SourceDir        string
	LogLevel         slog.Level
	LogFormat        string
	LogToFile        bool
	BodyPreviewChars int
	TopSenders       int
}

// ValidationError reports a configuration value that is out of range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// fileConfig mirrors Config with the types viper decodes into.
type fileConfig struct {
	OutputDir        string `mapstructure:"output_dir"`
	SourceDir        string `mapstructure:"source_dir"`
	LogLevel         string `mapstructure:"log_level"`
	LogFormat        string `mapstructure:"log_format"`
	LogToFile        bool   `mapstructure:"log_to_file"`
	BodyPreviewChars int    `mapstructure:"body_preview_chars"`
	TopSenders       int    `mapstructure:"top_senders"`
}

// Load reads configuration and returns a Config struct.
// Values come from, in increasing precedence: built-in defaults, the YAML
// file at path (optional; "" skips it and a missing file is not an error),
// and MAILCORPUS_* environment variables. If a .env file exists in the
// current directory or a parent, it is loaded first; variables already set
// take precedence over .env values.
func Load(path string) (*Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("output_dir", "./metadata")
	v.SetDefault("source_dir", "./data")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("log_to_file", true)
	v.SetDefault("body_preview_chars", 1000)
	v.SetDefault("top_senders", 10)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			var pathErr *os.PathError
			if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var raw fileConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw.LogLevel)); err != nil {
		return nil, &ValidationError{Field: "log_level", Message: "must be one of debug, info, warn, error"}
	}

	cfg := &Config{
		OutputDir:        raw.OutputDir,
		SourceDir:        raw.SourceDir,
		LogLevel:         level,
		LogFormat:        strings.ToLower(raw.LogFormat),
		LogToFile:        raw.LogToFile,
		BodyPreviewChars: raw.BodyPreviewChars,
		TopSenders:       raw.TopSenders,
	}

	// Validate
	if cfg.OutputDir == "" {
		return nil, &ValidationError{Field: "output_dir", Message: "is required"}
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, &ValidationError{Field: "log_format", Message: fmt.Sprintf("must be text or json, got %q", raw.LogFormat)}
	}
	if cfg.BodyPreviewChars == 0 {
		return nil, &ValidationError{Field: "body_preview_chars", Message: "must be positive, or negative for no limit"}
	}
	if cfg.TopSenders <= 0 || cfg.TopSenders > stats.DefaultTopSenders {
		return nil, &ValidationError{Field: "top_senders", Message: fmt.Sprintf("must be between 1 and %d", stats.DefaultTopSenders)}
	}

	return cfg, nil
}

// loadDotEnv loads .env from the current directory, then walks up a few
// levels to find one at the project root.
func loadDotEnv() {
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}
