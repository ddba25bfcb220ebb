package report

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/GoodbyeKittyy/mdp-inventory-control/solver"
)

// PrintConvergence echoes the solve outcome to stdout.
func PrintConvergence(info solver.ConvergenceInfo) {
	fmt.Println("\nConvergence Information:")
	if info.Converged {
		fmt.Printf("  Converged: %s\n", aurora.Green("Yes"))
	} else {
		fmt.Printf("  Converged: %s\n", aurora.Red("No"))
	}
	fmt.Printf("  Iterations: %d\n", info.Iterations)
	fmt.Printf("  Final Delta: %.6f\n", info.FinalDelta)
}

// PrintSSPolicy prints the (s, S) summary pair.
func PrintSSPolicy(reorder, upTo int) {
	fmt.Println("\nOptimal (s,S) Policy:")
	fmt.Printf("  s (reorder point): %d\n", reorder)
	fmt.Printf("  S (order-up-to level): %d\n", upTo)
}

// PrintPolicy renders the head of the policy table to stdout. Rows whose
// state still orders are green, hold rows blue.
func PrintPolicy(sv *solver.Solver, maxStates int) {
	limit := min(maxStates, sv.Config().MaxInventory+1)
	fmt.Printf("\nOptimal Policy (first %d states):\n", limit)
	fmt.Printf("%8s%12s%15s\n", "State", "Action", "Value")
	fmt.Println(strings.Repeat("-", 35))
	for state := 0; state < limit; state++ {
		action := sv.Action(state)
		row := fmt.Sprintf("%8d%12d%15.2f", state, action, sv.Value(state))
		if action > 0 {
			fmt.Println(aurora.Green(row))
		} else {
			fmt.Println(aurora.Blue(row))
		}
	}
}

// PrintSimulation prints an episode's reward aggregates.
func PrintSimulation(res *solver.SimulationResult) {
	fmt.Printf("\nSimulation Results (%d steps):\n", len(res.Trajectory))
	fmt.Printf("  Total Reward: $%.2f\n", res.TotalReward)
	fmt.Printf("  Average Reward: $%.2f\n", res.AverageReward)
}
