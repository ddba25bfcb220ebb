package solver

// ComputeSSPolicy reduces the policy table to an (s, S) summary: the reorder
// point is the highest state that still orders, and the order-up-to level is
// the mean of state+action over all ordering states, truncated to an
// integer. When no state orders, the fallbacks MaxInventory/3 and
// 2·MaxInventory/3 stand in.
//
// This is a descriptive heuristic over a table that need not be monotonic in
// state. The pair can misrepresent individual states, and reorder <= upTo is
// not guaranteed. Reports render it alongside the table, never instead of it.
func (s *Solver) ComputeSSPolicy() (reorder, upTo int) {
	var orderingStates []int
	var orderUpToLevels []int
	for state := 0; state <= s.cfg.MaxInventory; state++ {
		if action := s.policy[state]; action > 0 {
			orderingStates = append(orderingStates, state)
			orderUpToLevels = append(orderUpToLevels, state+action)
		}
	}

	reorder = s.cfg.MaxInventory / 3
	if len(orderingStates) > 0 {
		// states were scanned ascending, so the last entry is the max
		reorder = orderingStates[len(orderingStates)-1]
	}

	upTo = 2 * s.cfg.MaxInventory / 3
	if len(orderUpToLevels) > 0 {
		sum := 0
		for _, level := range orderUpToLevels {
			sum += level
		}
		upTo = sum / len(orderUpToLevels)
	}
	return reorder, upTo
}
