package solver

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full parameter set for a single-product inventory MDP.
// Loaded from YAML via LoadConfig(path) or assembled directly; either way
// it passes through Validate before a Solver is built.
type Config struct {
	MaxInventory int     `yaml:"max_inventory"` // warehouse capacity, states run 0..MaxInventory
	OrderCost    float64 `yaml:"order_cost"`    // fixed cost charged once per order placed
	HoldingCost  float64 `yaml:"holding_cost"`  // per unit of beginning-of-period stock
	StockoutCost float64 `yaml:"stockout_cost"` // per unit of unmet demand
	SellingPrice float64 `yaml:"selling_price"` // revenue per unit sold
	DemandMean   float64 `yaml:"demand_mean"`
	DemandStd    float64 `yaml:"demand_std"`
	Gamma        float64 `yaml:"gamma"` // discount factor, must sit in [0, 1)
}

// DefaultConfig returns the reference parameter set. The solved policy for
// these values is the fixture most tests assert against.
func DefaultConfig() Config {
	return Config{
		MaxInventory: 100,
		OrderCost:    50.0,
		HoldingCost:  2.0,
		StockoutCost: 20.0,
		SellingPrice: 15.0,
		DemandMean:   10.0,
		DemandStd:    3.0,
		Gamma:        0.95,
	}
}

// LoadConfig reads and parses a YAML solver configuration file.
// Uses strict parsing: unrecognized keys (typos) are rejected. Fields the
// file omits stay zero and are caught by Validate, not defaulted.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading solver config: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing solver config: %w", err)
	}
	return cfg, nil
}

// Validate checks that all construction parameters are in range. The solver
// fails fast here; nothing downstream clamps or repairs bad values.
func (c Config) Validate() error {
	if c.MaxInventory <= 0 {
		return fmt.Errorf("max_inventory must be positive, got %d", c.MaxInventory)
	}
	if err := validateFiniteNonNegative("order_cost", c.OrderCost); err != nil {
		return err
	}
	if err := validateFiniteNonNegative("holding_cost", c.HoldingCost); err != nil {
		return err
	}
	if err := validateFiniteNonNegative("stockout_cost", c.StockoutCost); err != nil {
		return err
	}
	if err := validateFiniteNonNegative("selling_price", c.SellingPrice); err != nil {
		return err
	}
	if err := validateFiniteNonNegative("demand_mean", c.DemandMean); err != nil {
		return err
	}
	if math.IsNaN(c.DemandStd) || math.IsInf(c.DemandStd, 0) || c.DemandStd <= 0 {
		return fmt.Errorf("demand_std must be a finite positive number, got %f", c.DemandStd)
	}
	if math.IsNaN(c.Gamma) || c.Gamma < 0 || c.Gamma >= 1 {
		return fmt.Errorf("gamma must be in [0, 1), got %f", c.Gamma)
	}
	return nil
}

func validateFiniteNonNegative(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 {
		return fmt.Errorf("%s must be non-negative, got %f", name, val)
	}
	return nil
}
