// Package decision reduces a simulation outcome to a binary recommendation.
//
// Survival is prioritized over ending energy: a policy wins outright when
// its survival rate leads by more than one percentage point, and only a
// near-tie falls through to the average-energy comparison.
package decision

import (
	"github.com/mwinters/gutcheck/internal/constants"
	"github.com/mwinters/gutcheck/internal/engine"
)

// Recommendation is the binary verdict of the decision rule.
type Recommendation string

const (
	Yes Recommendation = "YES"
	No  Recommendation = "NO"
)

// String returns the recommendation as its display token.
func (r Recommendation) String() string {
	return string(r)
}

// Decide applies the three-branch rule to an outcome. Survival gaps above
// the margin decide directly; otherwise the higher average energy wins,
// with exact ties going to Yes.
func Decide(o engine.Outcome) Recommendation {
	switch {
	case o.SurvivalYes-o.SurvivalNo > constants.SurvivalMargin:
		return Yes
	case o.SurvivalNo-o.SurvivalYes > constants.SurvivalMargin:
		return No
	case o.AvgEnergyYes >= o.AvgEnergyNo:
		return Yes
	default:
		return No
	}
}
