// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Default values applied by Defaults and MergeWithDefaults.
const (
	DefaultPort             = 8080
	DefaultUploadsDir       = "uploads"
	DefaultStorePath        = "data/portfolios.db"
	DefaultMaxUploadBytes   = 10 << 20
	DefaultParseConcurrency = 4
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Server
	Port           int    `json:"port,omitempty"`             // HTTP listen port
	UploadsDir     string `json:"uploads_dir,omitempty"`      // Directory for uploaded documents
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty"` // Upload size limit

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty selects the SQLite store
	StorePath   string `json:"store_path,omitempty"`   // SQLite file used when no database URL is set

	// Behavior
	APIKey           string `json:"api_key,omitempty"`           // Gemini API key
	Verbose          bool   `json:"verbose,omitempty"`           // Print detailed debug information
	ParseConcurrency int    `json:"parse_concurrency,omitempty"` // Parallel documents in batch parsing
	ChromePath       string `json:"chrome_path,omitempty"`       // Chrome executable for PDF rendering
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:             DefaultPort,
		UploadsDir:       DefaultUploadsDir,
		MaxUploadBytes:   DefaultMaxUploadBytes,
		StorePath:        DefaultStorePath,
		ParseConcurrency: DefaultParseConcurrency,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables.
// Unset or malformed variables leave the field at its zero value.
func FromEnv() Config {
	cfg := Config{
		UploadsDir:  os.Getenv("UPLOADS_DIR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StorePath:   os.Getenv("STORE_PATH"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		ChromePath:  os.Getenv("CHROME_PATH"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.ParseConcurrency < 0 {
		return fmt.Errorf("config error: 'parse_concurrency' must be non-negative")
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome executable not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file and environment values beneath CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.UploadsDir == "" {
		result.UploadsDir = defaults.UploadsDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.StorePath == "" {
		result.StorePath = defaults.StorePath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.ParseConcurrency == 0 {
		result.ParseConcurrency = defaults.ParseConcurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Resolve layers a config file (optional), the environment and the built-in
// defaults, in that order of precedence.
func Resolve(path string) (Config, error) {
	cfg := Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = *loaded
	}

	env := FromEnv()
	cfg = cfg.MergeWithDefaults(env)
	cfg = cfg.MergeWithDefaults(Defaults())

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
