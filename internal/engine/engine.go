// Package engine implements the Monte Carlo core of gutcheck.
//
// A single call simulates many independent "energy" trajectories under two
// alternative policies — take the action or decline it — against one shared
// noise realization, and reduces each ensemble to a survival rate and a
// mean terminal energy. The PRNG seed is derived deterministically from the
// parameters, so identical inputs always reproduce identical outputs.
package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/mwinters/gutcheck/internal/constants"
)

// ErrInvalidParams is returned by Simulate when a parameter violates the
// engine's preconditions. Check with errors.Is.
var ErrInvalidParams = errors.New("invalid simulation parameters")

// Params holds the inputs to one simulation.
//
// CostFrac, BenefitFrac and RiskFrac are expected in [0,1] but are not
// range-checked; out-of-range values flow through the arithmetic unchanged
// (e.g. BenefitFrac > 1 clamps the effective decay rate at zero).
type Params struct {
	// InitialEnergy is the starting energy of every trajectory. Must be > 0.
	InitialEnergy float64

	// CostFrac is the upfront cost of the action as a fraction of
	// InitialEnergy, charged only on the action branch.
	CostFrac float64

	// BenefitFrac reduces the per-step decay rate on the action branch:
	// effective decay = max(0, base * (1 - BenefitFrac)).
	BenefitFrac float64

	// RiskFrac scales environmental noise: per-step perturbations are
	// drawn from Normal(0, 0.1 * InitialEnergy * RiskFrac).
	RiskFrac float64

	// Horizon is the number of time steps to simulate. Must be >= 0.
	Horizon int

	// Scenarios is the ensemble size. Must be >= 1.
	Scenarios int
}

func (p Params) validate() error {
	switch {
	case p.InitialEnergy <= 0:
		return fmt.Errorf("%w: initial energy must be positive, got %v", ErrInvalidParams, p.InitialEnergy)
	case p.Horizon < 0:
		return fmt.Errorf("%w: horizon must be non-negative, got %d", ErrInvalidParams, p.Horizon)
	case p.Scenarios < 1:
		return fmt.Errorf("%w: scenarios must be at least 1, got %d", ErrInvalidParams, p.Scenarios)
	}
	return nil
}

// Outcome summarizes one simulation: the survival rate and mean terminal
// energy of each policy ensemble. Dead trajectories contribute zero energy.
type Outcome struct {
	SurvivalYes  float64 `json:"survival_yes"`
	SurvivalNo   float64 `json:"survival_no"`
	AvgEnergyYes float64 `json:"avg_energy_yes"`
	AvgEnergyNo  float64 `json:"avg_energy_no"`
}

// Simulate evaluates both policies against a shared noise matrix and
// returns the four summary scalars.
//
// Both policy runs consume the identical noise realization, so the
// comparison isolates the structural effect of the action from sampling
// differences.
func Simulate(p Params) (Outcome, error) {
	if err := p.validate(); err != nil {
		return Outcome{}, err
	}

	sigma := constants.NoiseScale * p.InitialEnergy * p.RiskFrac
	rng := rand.New(rand.NewSource(int64(Seed(p))))
	noise := noiseMatrix(rng, p.Scenarios, p.Horizon, sigma)

	survivalYes, avgYes := runPolicy(p, true, noise, sigma)
	survivalNo, avgNo := runPolicy(p, false, noise, sigma)

	return Outcome{
		SurvivalYes:  survivalYes,
		SurvivalNo:   survivalNo,
		AvgEnergyYes: avgYes,
		AvgEnergyNo:  avgNo,
	}, nil
}

// runPolicy evolves one ensemble under a single policy and reduces it.
//
// Death is absorbing: a trajectory whose energy reaches <= 0 is clamped to
// exactly 0 and excluded from every later update, so it can never re-cross
// the survival threshold on a positive noise draw.
func runPolicy(p Params, takeAction bool, noise [][]float64, sigma float64) (survivalRate, avgEnergy float64) {
	energy := make([]float64, p.Scenarios)
	alive := make([]bool, p.Scenarios)
	for i := range energy {
		energy[i] = p.InitialEnergy
		alive[i] = true
	}

	decay := constants.BaseDecayRate
	if takeAction {
		cost := p.InitialEnergy * p.CostFrac
		for i := range energy {
			energy[i] -= cost
			if energy[i] <= 0 {
				energy[i] = 0
				alive[i] = false
			}
		}
		decay = math.Max(0, constants.BaseDecayRate*(1-p.BenefitFrac))
	}

	for t := 0; t < p.Horizon; t++ {
		if !anyAlive(alive) {
			break
		}
		for i, ok := range alive {
			if !ok {
				continue
			}
			energy[i] *= 1 - decay
			if sigma > 0 {
				energy[i] += noise[i][t]
			}
			if energy[i] <= 0 {
				energy[i] = 0
				alive[i] = false
			}
		}
	}

	survived := 0
	total := 0.0
	for _, e := range energy {
		if e > 0 {
			survived++
		}
		total += e
	}
	n := float64(p.Scenarios)
	return float64(survived) / n, total / n
}

func anyAlive(alive []bool) bool {
	for _, ok := range alive {
		if ok {
			return true
		}
	}
	return false
}
