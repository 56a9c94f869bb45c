// Package constants provides named constants used throughout the gutcheck codebase.
// This centralizes magic numbers for better maintainability and documentation.
package constants

// Simulation dynamics constants
const (
	// BaseDecayRate is the baseline fraction of current energy lost per
	// time step when no action is taken.
	BaseDecayRate = 0.05

	// NoiseScale sets the standard deviation of per-step noise relative
	// to initial energy: sigma = NoiseScale * initialEnergy * riskFrac.
	NoiseScale = 0.1
)

// Caller-level defaults
const (
	// DefaultInitialEnergy is the starting resource level assumed by the
	// interactive shell and CLI when no override is given.
	DefaultInitialEnergy = 100.0

	// DefaultScenarios is the ensemble size used when no override is given.
	DefaultScenarios = 1000
)

// Decision rule constants
const (
	// SurvivalMargin is the minimum survival-rate gap (1 percentage
	// point) before one policy is preferred outright. Gaps at or below
	// the margin fall through to the average-energy tiebreak.
	SurvivalMargin = 0.01
)
