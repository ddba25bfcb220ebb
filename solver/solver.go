package solver

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Status names the solve driver's position in its state machine. Runs move
// from StatusRunning to exactly one of the two terminal states.
type Status string

const (
	// StatusRunning means sweeps are still being applied.
	StatusRunning Status = "running"
	// StatusConverged means the last sweep's delta fell below epsilon.
	StatusConverged Status = "converged"
	// StatusExhausted means the sweep budget ran out before convergence.
	StatusExhausted Status = "exhausted"
)

// Solve-time defaults.
const (
	DefaultEpsilon       = 0.01
	DefaultMaxIterations = 1000
)

// ConvergenceInfo is the record of one Solve call.
type ConvergenceInfo struct {
	Converged    bool
	Iterations   int     // sweeps actually applied
	FinalDelta   float64 // max per-state change of the last sweep
	DeltaHistory []float64
	Status       Status
}

// Solver owns the value, policy and Q-value tables of a single-product
// inventory MDP, plus the RNG stream that episode simulation draws demand
// from. Zero-valued tables at construction; Solve fills them in place.
// Not safe for concurrent use.
type Solver struct {
	cfg    Config
	demand DemandModel
	modes  map[string]TransportMode

	valueFn []float64
	policy  []int
	qValues [][]float64

	rng    *rand.Rand
	status Status
}

// New builds a Solver for the given configuration. The seed fixes the demand
// sample stream so episodes replay identically across runs. Construction
// fails fast on invalid parameters.
func New(cfg Config, seed int64) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid solver config: %w", err)
	}
	size := cfg.MaxInventory + 1
	qValues := make([][]float64, size)
	for i := range qValues {
		qValues[i] = make([]float64, size)
	}
	return &Solver{
		cfg:     cfg,
		demand:  DemandModel{Mean: cfg.DemandMean, Std: cfg.DemandStd},
		modes:   defaultTransportModes(),
		valueFn: make([]float64, size),
		policy:  make([]int, size),
		qValues: qValues,
		rng:     rand.New(rand.NewSource(seed)),
		status:  StatusRunning,
	}, nil
}

// Solve runs value-iteration sweeps until the largest per-state change in a
// sweep drops below epsilon, or maxIterations sweeps have been applied.
// Each sweep walks states 0..MaxInventory in order, writing refreshed values
// back immediately so later states in the same sweep see them.
//
// Non-convergence is not an error: the tables hold the best estimate either
// way. Callers decide via Converged on the returned record.
func (s *Solver) Solve(epsilon float64, maxIterations int) ConvergenceInfo {
	s.status = StatusRunning
	info := ConvergenceInfo{Status: StatusRunning}

	for iteration := 0; iteration < maxIterations; iteration++ {
		delta := 0.0
		for state := 0; state <= s.cfg.MaxInventory; state++ {
			newValue, bestAction := s.BellmanUpdate(state)
			delta = math.Max(delta, math.Abs(s.valueFn[state]-newValue))
			s.valueFn[state] = newValue
			s.policy[state] = bestAction
		}
		info.DeltaHistory = append(info.DeltaHistory, delta)
		info.Iterations = iteration + 1
		info.FinalDelta = delta

		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			lo, hi := s.valueBounds()
			logrus.Debugf("sweep %d: delta=%.6f value range [%.2f, %.2f]", info.Iterations, delta, lo, hi)
		}

		if delta < epsilon {
			info.Converged = true
			break
		}
	}

	if info.Converged {
		s.status = StatusConverged
		logrus.Infof("value iteration converged after %d sweeps (final delta %.6f)", info.Iterations, info.FinalDelta)
	} else {
		s.status = StatusExhausted
		logrus.Warnf("value iteration stopped after %d sweeps without converging (final delta %.6f)", info.Iterations, info.FinalDelta)
	}
	info.Status = s.status
	return info
}

// clampState bounds a post-transition inventory level to [0, MaxInventory].
// Excess deliveries are lost at the cap; backorders do not carry over.
func (s *Solver) clampState(level int) int {
	if level < 0 {
		return 0
	}
	if level > s.cfg.MaxInventory {
		return s.cfg.MaxInventory
	}
	return level
}

// valueBounds returns the smallest and largest entries of the value table.
func (s *Solver) valueBounds() (float64, float64) {
	lo, hi := s.valueFn[0], s.valueFn[0]
	for _, v := range s.valueFn[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Config returns the construction parameters.
func (s *Solver) Config() Config { return s.cfg }

// Demand returns the demand model backing both solve and simulation.
func (s *Solver) Demand() DemandModel { return s.demand }

// Status reports where the solve driver currently stands.
func (s *Solver) Status() Status { return s.status }

// Value returns the current value estimate for one state.
func (s *Solver) Value(state int) float64 { return s.valueFn[state] }

// Action returns the current policy's order quantity for one state.
func (s *Solver) Action(state int) int { return s.policy[state] }

// QValue returns the expected discounted value recorded for (state, action)
// during the most recent Bellman evaluation of that state.
func (s *Solver) QValue(state, action int) float64 { return s.qValues[state][action] }

// Values returns a copy of the value table indexed by state.
func (s *Solver) Values() []float64 {
	out := make([]float64, len(s.valueFn))
	copy(out, s.valueFn)
	return out
}

// PolicyActions returns a copy of the policy table indexed by state.
func (s *Solver) PolicyActions() []int {
	out := make([]int, len(s.policy))
	copy(out, s.policy)
	return out
}
