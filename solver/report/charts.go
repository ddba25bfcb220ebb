package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/GoodbyeKittyy/mdp-inventory-control/solver"
)

// WriteConvergenceChart renders the per-sweep delta history as an HTML line
// chart at path.
func WriteConvergenceChart(path string, info solver.ConvergenceInfo) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Value Iteration Convergence",
			Subtitle: fmt.Sprintf("%d sweeps, final delta %.6f", info.Iterations, info.FinalDelta),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	sweeps := make([]string, len(info.DeltaHistory))
	deltas := make([]opts.LineData, len(info.DeltaHistory))
	for i, delta := range info.DeltaHistory {
		sweeps[i] = fmt.Sprintf("%d", i+1)
		deltas[i] = opts.LineData{Value: delta}
	}
	line.SetXAxis(sweeps).AddSeries("max delta", deltas)

	return renderPage(path, line)
}

// WriteValueChart renders the value function and the policy's order
// quantities over all states as an HTML line chart at path.
func WriteValueChart(path string, sv *solver.Solver) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Value Function and Policy",
			Subtitle: fmt.Sprintf("states 0..%d", sv.Config().MaxInventory),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	values := sv.Values()
	actions := sv.PolicyActions()
	states := make([]string, len(values))
	valueItems := make([]opts.LineData, len(values))
	actionItems := make([]opts.LineData, len(actions))
	for i := range values {
		states[i] = fmt.Sprintf("%d", i)
		valueItems[i] = opts.LineData{Value: values[i]}
		actionItems[i] = opts.LineData{Value: actions[i]}
	}
	line.SetXAxis(states).
		AddSeries("value", valueItems).
		AddSeries("order quantity", actionItems)

	return renderPage(path, line)
}

func renderPage(path string, line *charts.Line) error {
	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
