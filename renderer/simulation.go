package renderer

import (
	"fmt"

	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
)

// SimulationMarkdown renders a what-if scenario next to its baseline.
func SimulationMarkdown(sc gestao.Scenario, res gestao.ScenarioResult, derived bool) string {
	r := newRenderer()

	r.Printf("# Scenario Simulation\n\n")

	r.Printf("Adjustments: volume %s, price %s, cost %s.\n\n",
		pct(sc.VolumePct), pct(sc.PricePct), pct(sc.CostPct))
	if !derived {
		r.Printf("*No sale history: assuming a %.0f%% contribution margin ratio.*\n\n",
			100*gestao.DefaultMarginRatio)
	}

	baseVariable := sc.BaselineRevenue.Sub(sc.BaselineRevenue.Mul(sc.MarginRatio))
	baseProfit := sc.BaselineProfit()

	r.Header("lrrr", "", "Baseline", "Scenario", "Delta")
	r.Row("Revenue", sc.BaselineRevenue.String(), res.Revenue.String(),
		res.Revenue.Sub(sc.BaselineRevenue).SignedString())
	r.Row("Variable Costs", baseVariable.String(), res.VariableCost.String(),
		res.VariableCost.Sub(baseVariable).SignedString())
	r.Row("Fixed Costs", sc.FixedCosts.String(), sc.FixedCosts.String(), "-")
	r.BoldRow("Profit", baseProfit.String(), res.Profit.String(),
		res.Profit.Sub(baseProfit).SignedString())
	r.Row("Net Margin", "", res.NetMargin.String(), "")

	return r.String()
}

func pct(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}
