package engine

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"strings"
)

// Seed derives the deterministic 32-bit PRNG seed for p.
//
// The five scalars are formatted canonically in a fixed order, joined into
// a key, hashed with SHA-256, and the digest — read as a big-endian
// integer — is reduced modulo 2^32. Scenarios is deliberately excluded:
// growing the ensemble extends the same noise realization rather than
// resampling it.
func Seed(p Params) uint32 {
	sum := sha256.Sum256([]byte(seedKey(p)))
	// A big-endian integer mod 2^32 is its low four bytes.
	return binary.BigEndian.Uint32(sum[len(sum)-4:])
}

// seedKey builds the canonical key string for seed derivation. Floats use
// the shortest decimal representation that round-trips.
func seedKey(p Params) string {
	return strings.Join([]string{
		formatScalar(p.InitialEnergy),
		formatScalar(p.CostFrac),
		formatScalar(p.BenefitFrac),
		formatScalar(p.RiskFrac),
		strconv.Itoa(p.Horizon),
	}, "-")
}

func formatScalar(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
