package service

// ---------------------------------------------------------------------------
// PolicyEngine – score-band approval rules
// ---------------------------------------------------------------------------

// RateBand is one row of the approval policy: it matches scores strictly
// greater than MinScore and requires the requested rate to be strictly
// greater than MinRate (a MinRate of zero accepts any rate).
type RateBand struct {
	MinScore float64
	MinRate  float64
}

// DefaultRateBands is the production policy table, evaluated top-down with
// first match winning.
var DefaultRateBands = []RateBand{
	{MinScore: 50, MinRate: 0},
	{MinScore: 30, MinRate: 12},
	{MinScore: 10, MinRate: 16},
}

// DefaultFloorRate is the corrected rate reported for scores that match no
// band and are never approved.
const DefaultFloorRate = 16.0

// PolicyEngine decides approval and the corrected interest rate for a credit
// score and requested rate.
type PolicyEngine struct {
	bands     []RateBand
	floorRate float64
}

// NewPolicyEngine returns an engine over the given ordered band table.
func NewPolicyEngine(bands []RateBand, floorRate float64) *PolicyEngine {
	return &PolicyEngine{bands: bands, floorRate: floorRate}
}

// Decide evaluates the band table top-down. For the first band whose score
// bound is satisfied:
//
//   - a band with no minimum rate approves at the requested rate
//   - a band with a minimum rate approves only when the requested rate
//     exceeds it; otherwise the request is rejected and the band minimum is
//     surfaced as the corrected rate for the client to display
//
// A score matching no band is never approved and reports the floor rate.
// Band bounds are strict, so a score sitting exactly on a bound falls into
// the band below it.
func (e *PolicyEngine) Decide(score, requestedRate float64) (approved bool, correctedRate float64) {
	for _, band := range e.bands {
		if score <= band.MinScore {
			continue
		}
		if band.MinRate == 0 || requestedRate > band.MinRate {
			return true, requestedRate
		}
		return false, band.MinRate
	}
	return false, e.floorRate
}
