package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GoodbyeKittyy/mdp-inventory-control/solver"
	"github.com/GoodbyeKittyy/mdp-inventory-control/solver/report"
)

var (
	// CLI flags for MDP construction
	configPath   string  // Optional YAML config file; explicit flags override it
	maxInventory int     // Warehouse capacity in units
	orderCost    float64 // Fixed cost per order placed
	holdingCost  float64 // Cost per unit held at the start of a period
	stockoutCost float64 // Penalty per unit of unmet demand
	sellingPrice float64 // Revenue per unit sold
	demandMean   float64 // Mean of the Normal demand law
	demandStd    float64 // Std deviation of the Normal demand law
	gamma        float64 // Discount factor

	// CLI flags for solving and simulation
	seed          int64   // Seed for demand sampling during simulation
	epsilon       float64 // Convergence threshold on the per-sweep max delta
	maxIterations int     // Sweep budget for value iteration
	initialState  int     // Starting inventory for the simulated episode
	simSteps      int     // Number of periods to simulate
	transportMode string  // Transport mode surcharged on each order

	// CLI flags for output
	logLevel         string // Log verbosity level
	policyRows       int    // Policy table rows printed to the console
	reportPath       string // Text report destination, empty disables
	convergenceChart string // HTML convergence chart destination, empty disables
	valueChart       string // HTML value/policy chart destination, empty disables
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mdp-inventory-control",
	Short: "Value-iteration solver for single-product inventory control",
}

// runCmd solves the MDP, simulates the learned policy, and exports reports
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve the inventory MDP and simulate the resulting policy",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("Could not load configuration: %v", err)
		}

		sv, err := solver.New(cfg, seed)
		if err != nil {
			logrus.Fatalf("Could not construct solver: %v", err)
		}

		logrus.Infof("Starting value iteration over %d states (epsilon=%g, budget %d sweeps)",
			cfg.MaxInventory+1, epsilon, maxIterations)
		info := sv.Solve(epsilon, maxIterations)
		report.PrintConvergence(info)

		reorder, upTo := sv.ComputeSSPolicy()
		report.PrintSSPolicy(reorder, upTo)
		report.PrintPolicy(sv, policyRows)

		fmt.Printf("\nRunning simulation (%d steps)...\n", simSteps)
		result, err := sv.SimulateEpisode(initialState, simSteps, transportMode)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		report.PrintSimulation(result)

		if reportPath != "" {
			if err := report.WriteText(reportPath, sv); err != nil {
				logrus.Errorf("Report export failed: %v", err)
			} else {
				fmt.Printf("\nResults exported to %s\n", reportPath)
			}
		}
		if convergenceChart != "" {
			if err := report.WriteConvergenceChart(convergenceChart, info); err != nil {
				logrus.Errorf("Convergence chart export failed: %v", err)
			}
		}
		if valueChart != "" {
			if err := report.WriteValueChart(valueChart, sv); err != nil {
				logrus.Errorf("Value chart export failed: %v", err)
			}
		}
	},
}

// buildConfig assembles the solver configuration. Without --config the flag
// values are taken as-is (their defaults are the reference parameter set).
// With --config the file is the base and only explicitly-set flags override.
func buildConfig(cmd *cobra.Command) (solver.Config, error) {
	fromFlags := solver.Config{
		MaxInventory: maxInventory,
		OrderCost:    orderCost,
		HoldingCost:  holdingCost,
		StockoutCost: stockoutCost,
		SellingPrice: sellingPrice,
		DemandMean:   demandMean,
		DemandStd:    demandStd,
		Gamma:        gamma,
	}
	if configPath == "" {
		return fromFlags, nil
	}

	cfg, err := solver.LoadConfig(configPath)
	if err != nil {
		return solver.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("max-inventory") {
		cfg.MaxInventory = maxInventory
	}
	if flags.Changed("order-cost") {
		cfg.OrderCost = orderCost
	}
	if flags.Changed("holding-cost") {
		cfg.HoldingCost = holdingCost
	}
	if flags.Changed("stockout-cost") {
		cfg.StockoutCost = stockoutCost
	}
	if flags.Changed("selling-price") {
		cfg.SellingPrice = sellingPrice
	}
	if flags.Changed("demand-mean") {
		cfg.DemandMean = demandMean
	}
	if flags.Changed("demand-std") {
		cfg.DemandStd = demandStd
	}
	if flags.Changed("gamma") {
		cfg.Gamma = gamma
	}
	return cfg, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := solver.DefaultConfig()

	// MDP construction
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML solver configuration file (explicit flags override file values)")
	runCmd.Flags().IntVar(&maxInventory, "max-inventory", defaults.MaxInventory, "Warehouse capacity in units")
	runCmd.Flags().Float64Var(&orderCost, "order-cost", defaults.OrderCost, "Fixed cost per order placed")
	runCmd.Flags().Float64Var(&holdingCost, "holding-cost", defaults.HoldingCost, "Holding cost per unit of starting stock")
	runCmd.Flags().Float64Var(&stockoutCost, "stockout-cost", defaults.StockoutCost, "Penalty per unit of unmet demand")
	runCmd.Flags().Float64Var(&sellingPrice, "selling-price", defaults.SellingPrice, "Revenue per unit sold")
	runCmd.Flags().Float64Var(&demandMean, "demand-mean", defaults.DemandMean, "Mean of the Normal demand law")
	runCmd.Flags().Float64Var(&demandStd, "demand-std", defaults.DemandStd, "Std deviation of the Normal demand law")
	runCmd.Flags().Float64Var(&gamma, "gamma", defaults.Gamma, "Discount factor in [0, 1)")

	// Solving and simulation
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for demand sampling during simulation")
	runCmd.Flags().Float64Var(&epsilon, "epsilon", solver.DefaultEpsilon, "Convergence threshold on the per-sweep max delta")
	runCmd.Flags().IntVar(&maxIterations, "max-iterations", solver.DefaultMaxIterations, "Sweep budget for value iteration")
	runCmd.Flags().IntVar(&initialState, "initial-state", 50, "Starting inventory for the simulated episode")
	runCmd.Flags().IntVar(&simSteps, "steps", 30, "Number of periods to simulate")
	runCmd.Flags().StringVar(&transportMode, "transport", "truck", "Transport mode surcharged on each order (truck, ship, rail, air)")

	// Output
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&policyRows, "policy-rows", 20, "Number of policy table rows printed to the console")
	runCmd.Flags().StringVar(&reportPath, "report", "mdp_results.txt", "Text report destination (empty disables export)")
	runCmd.Flags().StringVar(&convergenceChart, "convergence-chart", "", "HTML convergence chart destination (empty disables export)")
	runCmd.Flags().StringVar(&valueChart, "value-chart", "", "HTML value/policy chart destination (empty disables export)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
