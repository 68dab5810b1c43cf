// Package config reads environment configuration, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	EnvDebug       = "WORKFLOW_TUI_DEBUG"
	EnvNoColor     = "WORKFLOW_TUI_NO_COLOR"
	EnvLogFormat   = "WORKFLOW_TUI_LOG_FORMAT"
	EnvMetricsFile = "WORKFLOW_TUI_METRICS_FILE"
	EnvResultsDir  = "WORKFLOW_TUI_RESULTS_DIR"

	// EnvNoColorStandard is the cross-tool convention (https://no-color.org).
	EnvNoColorStandard = "NO_COLOR"

	// DefaultEnvFile is read from the working directory when no path is given.
	DefaultEnvFile = ".env"
)

// Config holds the settings that can come from the environment.
// Command-line flags take precedence over every field.
type Config struct {
	Debug       bool
	NoColor     bool
	LogFormat   string
	MetricsFile string
	ResultsDir  string
}

// LoadEnv loads variables from the given .env files (default: ./.env).
// Missing files are not an error. Variables already set in the process win.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// FromEnv reads the configuration from process environment variables.
func FromEnv() Config {
	cfg := Config{
		Debug:       envBool(EnvDebug),
		NoColor:     envBool(EnvNoColor),
		LogFormat:   strings.TrimSpace(os.Getenv(EnvLogFormat)),
		MetricsFile: strings.TrimSpace(os.Getenv(EnvMetricsFile)),
		ResultsDir:  strings.TrimSpace(os.Getenv(EnvResultsDir)),
	}
	// NO_COLOR disables colour when present with any non-empty value.
	if os.Getenv(EnvNoColorStandard) != "" {
		cfg.NoColor = true
	}
	return cfg
}

// Load is LoadEnv followed by FromEnv.
func Load(paths ...string) (Config, error) {
	if err := LoadEnv(paths...); err != nil {
		return Config{}, err
	}
	return FromEnv(), nil
}

// envBool treats unparsable values as false.
func envBool(key string) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}
