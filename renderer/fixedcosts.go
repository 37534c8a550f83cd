package renderer

import (
	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
)

// FixedCostsMarkdown renders the standing cost report: the ranking of
// monthly expenses with the committed monthly and annual totals.
func FixedCostsMarkdown(a gestao.FixedCostAnalysis) string {
	r := newRenderer()

	r.Printf("# Fixed Costs\n\n")

	if len(a.Ranking) == 0 {
		r.Printf("*No fixed costs registered.*\n")
		return r.String()
	}

	r.Header("lrr", "Description", "Monthly", "Share")
	for _, fc := range a.Ranking {
		share := gestao.Percent(0)
		if a.MonthlyTotal.IsPositive() {
			share = gestao.Percent(100 * fc.MonthlyAmount.AsFloat() / a.MonthlyTotal.AsFloat())
		}
		r.Row(fc.Description, fc.MonthlyAmount.String(), share.String())
	}
	r.BoldRow("Total", a.MonthlyTotal.String(), "")
	r.Printf("\n")

	r.Printf("Annual commitment: **%s**\n", a.AnnualTotal)

	return r.String()
}
