// Package config loads gradecast settings from the environment, an optional
// dotenv file and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/engine"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const envPrefix = "GRADECAST"

// ErrInvalidConfig is returned when a configured value cannot be parsed or
// is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds process-wide settings. Program and Bias are optional: when
// set they take precedence over the persisted preferences for this run.
type Config struct {
	DBPath   string
	Program  domain.Program
	Bias     float64
	LogCalls bool
	LogLevel log.Level
}

// Load reads GRADECAST_* variables. A dotenv file named by GRADECAST_ENV_FILE
// (or ./.env when present) is loaded first; real environment variables win
// over values in the file.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	// bias and log_calls are read as text and parsed below so malformed
	// values are reported.
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	defaultDB, err := defaultDBPath()
	if err != nil {
		return nil, err
	}
	v.SetDefault("db", defaultDB)
	v.SetDefault("program", "")
	v.SetDefault("bias", "")
	v.SetDefault("log_calls", "false")
	v.SetDefault("log_level", "info")

	cfg := &Config{DBPath: expandHome(v.GetString("db"))}

	if raw := strings.TrimSpace(v.GetString("bias")); raw != "" {
		cfg.Bias, err = cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s_BIAS must be a number, got %q", ErrInvalidConfig, envPrefix, raw)
		}
		if cfg.Bias < engine.MinBias || cfg.Bias > engine.MaxBias {
			return nil, fmt.Errorf("%w: %s_BIAS must be between %.1f and %.1f, got %v",
				ErrInvalidConfig, envPrefix, engine.MinBias, engine.MaxBias, cfg.Bias)
		}
	}
	if raw := strings.TrimSpace(v.GetString("log_calls")); raw != "" {
		cfg.LogCalls, err = cast.ToBoolE(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s_LOG_CALLS must be a boolean, got %q", ErrInvalidConfig, envPrefix, raw)
		}
	}

	if p := v.GetString("program"); p != "" {
		cfg.Program, err = domain.ParseProgram(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s_PROGRAM: %v", ErrInvalidConfig, envPrefix, err)
		}
	}
	cfg.LogLevel, err = log.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s_LOG_LEVEL: %v", ErrInvalidConfig, envPrefix, err)
	}

	return cfg, nil
}

func loadDotEnv() error {
	path := os.Getenv(envPrefix + "_ENV_FILE")
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func defaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".gradecast", "gradecast.db"), nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
