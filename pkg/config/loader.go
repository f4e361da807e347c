package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read fleet.yaml from configDir (optional — defaults apply without it)
//  2. Expand environment variables
//  3. Parse YAML into the Config struct
//  4. Merge built-in defaults for any unset values
//  5. Resolve the state directory and project path
//  6. Validate the result
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)

	cfg := &Config{}

	path := filepath.Join(configDir, "fleet.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Info("No fleet.yaml found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		log.Info("Loaded configuration", "path", path)
	}

	if err := mergo.Merge(cfg, defaultConfig()); err != nil {
		return nil, fmt.Errorf("failed to merge defaults: %w", err)
	}

	if err := resolvePaths(cfg); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolvePaths fills StateDir and ProjectPath with absolute values.
func resolvePaths(cfg *Config) error {
	if cfg.ProjectPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
		cfg.ProjectPath = wd
	}
	abs, err := filepath.Abs(cfg.ProjectPath)
	if err != nil {
		return fmt.Errorf("failed to resolve project path: %w", err)
	}
	cfg.ProjectPath = abs

	if cfg.StateDir == "" {
		dir, err := defaultStateDir()
		if err != nil {
			return err
		}
		cfg.StateDir = dir
	}
	abs, err = filepath.Abs(cfg.StateDir)
	if err != nil {
		return fmt.Errorf("failed to resolve state dir: %w", err)
	}
	cfg.StateDir = abs
	return nil
}

// validate rejects configurations that would misbehave at runtime.
func validate(cfg *Config) error {
	if cfg.Store.AppendBusyTimeout <= 0 {
		return fmt.Errorf("store.append_busy_timeout must be positive")
	}
	if cfg.Liveness.StaleThreshold <= 0 {
		return fmt.Errorf("liveness.stale_threshold must be positive")
	}
	if cfg.Locks.MaxTimeout < cfg.Locks.DefaultTimeout {
		return fmt.Errorf("locks.max_timeout must be >= locks.default_timeout")
	}
	if cfg.Checkpoint.MinKeep < 1 {
		return fmt.Errorf("checkpoint.min_keep must be at least 1")
	}
	if cfg.Checkpoint.MaxBytes < cfg.Checkpoint.WarnBytes {
		return fmt.Errorf("checkpoint.max_bytes must be >= checkpoint.warn_bytes")
	}
	for _, p := range cfg.Checkpoint.ProgressThresholds {
		if p <= 0 || p >= 100 {
			return fmt.Errorf("checkpoint.progress_thresholds must be within (0,100), got %d", p)
		}
	}
	if cfg.Compaction.ThresholdEvents <= 0 {
		return fmt.Errorf("compaction.threshold_events must be positive")
	}
	return nil
}

// defaultStateDir returns the OS-specific user data directory for fleetd.
func defaultStateDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to resolve state dir: %w", err)
		}
		base = home
	}
	return filepath.Join(base, "fleetd"), nil
}
