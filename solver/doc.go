// Package solver computes an optimal single-product replenishment policy by
// value iteration over a discounted inventory MDP, and checks the result by
// Monte-Carlo episode simulation.
//
// # Reading Guide
//
// Start with these files to understand the solve kernel:
//   - config.go: construction parameters, YAML loading, validation
//   - bellman.go: the one-state backup over feasible order quantities
//   - solver.go: the sweep driver, convergence record, table accessors
//   - sspolicy.go: reduction of the policy table to an (s, S) pair
//   - episode.go: policy rollout under sampled demand
//
// Text and chart rendering of finished tables lives in solver/report, which
// reads through the accessors and writes nothing back.
//
// # Numerical Contract
//
// Two numerical choices are load-bearing and deliberate:
//
//   - The demand law is a Normal density evaluated on the integer grid
//     without renormalization, truncated at mean + 4·std. The masses do not
//     sum to 1.
//   - Sweeps update the value table in place, so later states read values
//     refreshed earlier in the same sweep (Gauss-Seidel ordering rather than
//     synchronous value iteration).
//
// Both shape the convergence trajectory and the solved tables. Treat them as
// part of the output contract, not as bugs to fix.
package solver
