// Package config provides unified configuration loading for gutcheck.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mwinters/gutcheck/internal/constants"
)

// Config contains all gutcheck configuration settings.
type Config struct {
	// Simulation contains the caller-level simulation defaults.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Logging contains settings for operational and trace logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig holds the defaults the shell and CLI pass to the engine.
type SimulationConfig struct {
	// InitialEnergy is the starting resource level for every consultation.
	InitialEnergy float64 `json:"initial_energy" yaml:"initial_energy"`

	// Scenarios is the Monte Carlo ensemble size.
	Scenarios int `json:"scenarios" yaml:"scenarios"`
}

// LoggingConfig configures gutcheck's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables consultation tracing to .gutcheck/consultations.jsonl.
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			InitialEnergy: constants.DefaultInitialEnergy,
			Scenarios:     constants.DefaultScenarios,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.gutcheck/config.yaml -> environment variables
func Load() (*Config, error) {
	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".gutcheck", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			cfg = fileConfig
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Simulation.InitialEnergy <= 0 {
		return fmt.Errorf("initial_energy must be positive, got %f", c.Simulation.InitialEnergy)
	}

	if c.Simulation.Scenarios < 1 {
		return fmt.Errorf("scenarios must be at least 1, got %d", c.Simulation.Scenarios)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GUTCHECK_INITIAL_ENERGY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Simulation.InitialEnergy = f
		}
	}

	if v := os.Getenv("GUTCHECK_SCENARIOS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Scenarios = n
		}
	}

	if v := os.Getenv("GUTCHECK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
