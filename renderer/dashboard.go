package renderer

import (
	"time"

	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
)

// DashboardMarkdown renders the monthly overview: headline figures,
// breakeven position, target attainment and the year's revenue series.
func DashboardMarkdown(d gestao.Dashboard) string {
	r := newRenderer()

	r.Printf("# Dashboard — %s %d\n\n", d.Month, d.Year)

	r.Header("lr", "", "")
	r.BoldRow("Revenue", d.Revenue.String())
	r.Row("Variable Costs", d.VariableCost.Neg().SignedString())
	r.Row("Fixed Costs", d.FixedCost.Neg().SignedString())
	r.BoldRow("Profit", d.Profit.String())
	r.Row("Net Margin", d.NetMargin.String())
	r.Printf("\n")

	r.Printf("## Breakeven\n\n")
	if d.Breakeven.Achievable {
		r.Printf("Breakeven revenue: **%s**", d.Breakeven.Value)
		if d.AboveBreakeven.IsNegative() {
			r.Printf(" (%s below breakeven)\n\n", d.AboveBreakeven.Neg())
		} else {
			r.Printf(" (%s above breakeven)\n\n", d.AboveBreakeven)
		}
	} else {
		r.Printf("Breakeven is not reachable: the contribution margin is zero or negative.\n\n")
	}

	r.Printf("## Revenue Target\n\n")
	r.Header("lr", "", "")
	r.Row("Target", d.Target.String())
	r.Row("Realized", d.Revenue.String())
	r.BoldRow("Attainment", d.TargetAttainment.String())
	r.Printf("\n")

	r.Printf("## Revenue by Month — %d\n\n", d.Year)
	r.Header("lrr", "Month", "Revenue", "vs Target")
	for i, revenue := range d.MonthlyRevenue {
		month := time.Month(i + 1)
		r.Row(month.String(), revenue.String(), revenue.Sub(d.Target).SignedString())
	}

	return r.String()
}
