package solver

import "sort"

// TransportMode is one entry of the fixed shipping catalog. Cost is a flat
// per-order surcharge applied by the episode simulator. Lead time is carried
// for reporting only: ordered stock still arrives within the period.
type TransportMode struct {
	Name         string
	Cost         float64
	LeadTimeDays int
}

// defaultTransportModes builds the built-in catalog. The set is fixed; the
// simulator treats names outside it as surcharge-free rather than erroring.
func defaultTransportModes() map[string]TransportMode {
	return map[string]TransportMode{
		"truck": {Name: "truck", Cost: 100.0, LeadTimeDays: 1},
		"ship":  {Name: "ship", Cost: 50.0, LeadTimeDays: 3},
		"rail":  {Name: "rail", Cost: 75.0, LeadTimeDays: 2},
		"air":   {Name: "air", Cost: 200.0, LeadTimeDays: 0},
	}
}

// TransportModes returns the catalog as a slice sorted by mode name, the
// order the results report lists it in.
func (s *Solver) TransportModes() []TransportMode {
	out := make([]TransportMode, 0, len(s.modes))
	for _, m := range s.modes {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
