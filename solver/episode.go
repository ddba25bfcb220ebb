package solver

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SimulationStep records one simulated period.
type SimulationStep struct {
	Step      int
	State     int // inventory at the start of the period
	Action    int // units ordered per the learned policy
	Demand    int // sampled demand
	Reward    float64
	NextState int
}

// SimulationResult is one episode's full trajectory with reward aggregates.
type SimulationResult struct {
	Trajectory    []SimulationStep
	TotalReward   float64
	AverageReward float64
}

// SimulateEpisode plays the learned policy for the given number of periods,
// drawing demand from the solver's seeded RNG stream. When an order is
// placed and transportMode names a cataloged mode, that mode's flat cost is
// charged against the period's reward; names outside the catalog ship free
// rather than failing the episode. Ordered stock arrives within the period
// regardless of the mode's listed lead time.
//
// Typically called after Solve. Running against unsolved tables is legal and
// plays the all-zeros policy.
func (s *Solver) SimulateEpisode(initialState, steps int, transportMode string) (*SimulationResult, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("steps must be positive, got %d", steps)
	}
	if initialState < 0 || initialState > s.cfg.MaxInventory {
		return nil, fmt.Errorf("initial state %d outside [0, %d]", initialState, s.cfg.MaxInventory)
	}

	surcharge := 0.0
	if mode, ok := s.modes[transportMode]; ok {
		surcharge = mode.Cost
	} else {
		logrus.Debugf("transport mode %q not in catalog; no surcharge applied", transportMode)
	}

	result := &SimulationResult{Trajectory: make([]SimulationStep, 0, steps)}
	state := initialState
	for step := 0; step < steps; step++ {
		action := s.policy[state]
		demand := s.demand.Sample(s.rng)
		reward := s.ImmediateReward(state, action, demand)
		if action > 0 {
			reward -= surcharge
		}
		next := s.clampState(state + action - demand)

		result.Trajectory = append(result.Trajectory, SimulationStep{
			Step:      step,
			State:     state,
			Action:    action,
			Demand:    demand,
			Reward:    reward,
			NextState: next,
		})
		result.TotalReward += reward
		state = next
	}
	result.AverageReward = result.TotalReward / float64(steps)
	return result, nil
}
