package engine

import "math/rand"

// noiseMatrix draws the scenarios x horizon table of per-step
// perturbations from Normal(0, sigma). The matrix is generated exactly
// once per simulation and shared by both policy runs.
//
// With sigma = 0 the noise is identically zero and no draws are consumed.
func noiseMatrix(rng *rand.Rand, scenarios, horizon int, sigma float64) [][]float64 {
	m := make([][]float64, scenarios)
	for i := range m {
		row := make([]float64, horizon)
		if sigma > 0 {
			for t := range row {
				row[t] = rng.NormFloat64() * sigma
			}
		}
		m[i] = row
	}
	return m
}
