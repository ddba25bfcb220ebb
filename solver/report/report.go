// Package report renders solved inventory policies as text reports, colored
// console output, and HTML charts. Everything here reads the solver through
// its accessors; nothing writes back.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GoodbyeKittyy/mdp-inventory-control/solver"
)

// policyTableLimit caps the states listed in the file report.
const policyTableLimit = 30

// RenderText writes the full results report: configuration block, the
// (s, S) summary, a fixed-width State/Action/Value table for states
// 0..min(30, MaxInventory), and the transport catalog sorted by name.
func RenderText(w io.Writer, sv *solver.Solver) {
	cfg := sv.Config()
	reorder, upTo := sv.ComputeSSPolicy()

	fmt.Fprintf(w, "MDP Inventory Control - Results\n")
	fmt.Fprintf(w, "================================\n\n")

	fmt.Fprintf(w, "Configuration:\n")
	fmt.Fprintf(w, "  Max Inventory: %d\n", cfg.MaxInventory)
	fmt.Fprintf(w, "  Order Cost: $%.2f\n", cfg.OrderCost)
	fmt.Fprintf(w, "  Holding Cost: $%.2f per unit\n", cfg.HoldingCost)
	fmt.Fprintf(w, "  Stockout Cost: $%.2f per unit\n", cfg.StockoutCost)
	fmt.Fprintf(w, "  Selling Price: $%.2f\n", cfg.SellingPrice)
	fmt.Fprintf(w, "  Demand Mean: %.2f\n", cfg.DemandMean)
	fmt.Fprintf(w, "  Demand Std: %.2f\n", cfg.DemandStd)
	fmt.Fprintf(w, "  Discount Factor: %.2f\n\n", cfg.Gamma)

	fmt.Fprintf(w, "Optimal (s,S) Policy:\n")
	fmt.Fprintf(w, "  s (reorder point): %d\n", reorder)
	fmt.Fprintf(w, "  S (order-up-to): %d\n\n", upTo)

	fmt.Fprintf(w, "Policy (State -> Action):\n")
	fmt.Fprintf(w, "%8s%12s%15s\n", "State", "Action", "Value")
	fmt.Fprintln(w, strings.Repeat("-", 35))
	for state := 0; state <= min(policyTableLimit, cfg.MaxInventory); state++ {
		fmt.Fprintf(w, "%8d%12d%15.2f\n", state, sv.Action(state), sv.Value(state))
	}

	fmt.Fprintf(w, "\nTransport Modes:\n")
	for _, mode := range sv.TransportModes() {
		fmt.Fprintf(w, "  %s: Cost=$%.2f, Time=%d days\n", mode.Name, mode.Cost, mode.LeadTimeDays)
	}
}

// WriteText renders the report to a file at path. Failures come back as
// errors for the caller to log; a failed export never invalidates the solve.
func WriteText(path string, sv *solver.Solver) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	w := bufio.NewWriter(f)
	RenderText(w, sv)
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing report file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}
	return nil
}
