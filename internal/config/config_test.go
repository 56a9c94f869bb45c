package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Simulation.InitialEnergy != 100.0 {
		t.Errorf("expected InitialEnergy 100.0, got %f", cfg.Simulation.InitialEnergy)
	}
	if cfg.Simulation.Scenarios != 1000 {
		t.Errorf("expected Scenarios 1000, got %d", cfg.Simulation.Scenarios)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
simulation:
  initial_energy: 250.5
  scenarios: 2000

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Simulation.InitialEnergy != 250.5 {
		t.Errorf("expected InitialEnergy 250.5, got %f", cfg.Simulation.InitialEnergy)
	}
	if cfg.Simulation.Scenarios != 2000 {
		t.Errorf("expected Scenarios 2000, got %d", cfg.Simulation.Scenarios)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
logging:
  level: trace
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Simulation.InitialEnergy != 100.0 {
		t.Errorf("expected default InitialEnergy 100.0, got %f", cfg.Simulation.InitialEnergy)
	}
	if cfg.Logging.Level != "trace" {
		t.Errorf("expected Level 'trace', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("simulation: ["), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFromFile(configPath); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GUTCHECK_INITIAL_ENERGY", "42.5")
	t.Setenv("GUTCHECK_SCENARIOS", "314")
	t.Setenv("GUTCHECK_LOG_LEVEL", "debug")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.Simulation.InitialEnergy != 42.5 {
		t.Errorf("expected InitialEnergy 42.5, got %f", cfg.Simulation.InitialEnergy)
	}
	if cfg.Simulation.Scenarios != 314 {
		t.Errorf("expected Scenarios 314, got %d", cfg.Simulation.Scenarios)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestEnvOverrides_IgnoresMalformed(t *testing.T) {
	t.Setenv("GUTCHECK_SCENARIOS", "not-a-number")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.Simulation.Scenarios != 1000 {
		t.Errorf("expected default Scenarios 1000, got %d", cfg.Simulation.Scenarios)
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate_InvalidEnergy(t *testing.T) {
	cfg := Default()
	cfg.Simulation.InitialEnergy = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-positive initial_energy")
	}
}

func TestValidate_InvalidScenarios(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Scenarios = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero scenarios")
	}
}

func TestValidate_InvalidLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
}
