package solver

// perUnitOrderCost is the marginal cost per ordered unit, charged on top of
// the fixed OrderCost whenever an order is placed.
const perUnitOrderCost = 5.0

// ImmediateReward computes one period's realized profit for a
// (state, action, demand) triple: sales revenue, minus holding cost on the
// beginning-of-period stock, minus ordering cost (fixed plus per-unit,
// charged only when action > 0), minus the stockout penalty on unmet demand.
// Sales are capped at the stock on hand; the ordered units sell only in
// later periods.
func (s *Solver) ImmediateReward(state, action, demand int) float64 {
	sales := min(state, demand)
	revenue := float64(sales) * s.cfg.SellingPrice
	holding := float64(state) * s.cfg.HoldingCost
	ordering := 0.0
	if action > 0 {
		ordering = s.cfg.OrderCost + float64(action)*perUnitOrderCost
	}
	stockout := float64(max(0, demand-state)) * s.cfg.StockoutCost
	return revenue - holding - ordering - stockout
}

// TransitionProbability returns the probability mass of moving from state to
// nextState under action, accumulated over the demand truncation window.
// Inspection helper for tests and tooling; the Bellman backup folds the same
// sum inline instead of materializing a transition matrix.
func (s *Solver) TransitionProbability(state, action, nextState int) float64 {
	total := 0.0
	for d := 0; d <= s.demand.MaxDemand(); d++ {
		if s.clampState(state+action-d) == nextState {
			total += s.demand.Prob(d)
		}
	}
	return total
}
