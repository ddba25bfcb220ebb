package solver

import (
	"math"
	"math/rand"
)

// DemandModel is the discretized Normal demand law shared by the Bellman
// backup (closed-form expectation) and the episode simulator (sampling).
type DemandModel struct {
	Mean float64
	Std  float64
}

// Prob returns the Normal density evaluated at integer demand d, or 0 for
// negative d. The density is used as a probability mass directly, without
// renormalizing over the integer grid, so the masses inside the truncation
// window sum to slightly less than 1. The solved tables depend on this exact
// form; renormalizing changes them.
func (m DemandModel) Prob(d int) float64 {
	if d < 0 {
		return 0
	}
	z := (float64(d) - m.Mean) / m.Std
	return math.Exp(-0.5*z*z) / (m.Std * math.Sqrt(2*math.Pi))
}

// MaxDemand returns the truncation bound floor(mean + 4·std). Expectation
// sums in the backup run over demands 0..MaxDemand.
func (m DemandModel) MaxDemand() int {
	return int(m.Mean + 4*m.Std)
}

// Sample draws one period's demand: a Normal variate rounded to the nearest
// integer and clamped at zero.
func (m DemandModel) Sample(rng *rand.Rand) int {
	val := rng.NormFloat64()*m.Std + m.Mean
	d := int(math.Round(val))
	if d < 0 {
		return 0
	}
	return d
}
