package solver

import "math"

// BellmanUpdate evaluates every feasible order quantity for one state and
// returns the maximizing expected discounted value together with the
// maximizing action. Feasible actions are 0..MaxInventory-state; ties keep
// the smallest action because only a strictly greater expectation displaces
// the incumbent. Expected values for every evaluated (state, action) pair
// are retained in the Q-value table.
//
// The expectation reads the live value table: states already refreshed
// earlier in the current sweep contribute their new values. This
// Gauss-Seidel ordering is intentional and must not be replaced with a
// snapshot of the previous sweep; the solved tables and the convergence
// trajectory both depend on the in-place ordering.
func (s *Solver) BellmanUpdate(state int) (float64, int) {
	maxValue := math.Inf(-1)
	bestAction := 0
	maxAction := s.cfg.MaxInventory - state
	maxDemand := s.demand.MaxDemand()

	for action := 0; action <= maxAction; action++ {
		expected := 0.0
		for demand := 0; demand <= maxDemand; demand++ {
			prob := s.demand.Prob(demand)
			reward := s.ImmediateReward(state, action, demand)
			next := s.clampState(state + action - demand)
			expected += prob * (reward + s.cfg.Gamma*s.valueFn[next])
		}
		s.qValues[state][action] = expected
		if expected > maxValue {
			maxValue = expected
			bestAction = action
		}
	}
	return maxValue, bestAction
}
