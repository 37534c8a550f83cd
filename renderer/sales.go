package renderer

import (
	"fmt"
	"time"

	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
)

// SalesMarkdown renders the sale history of a period, its aggregated
// totals and the per-product contribution table.
func SalesMarkdown(sales []gestao.Sale, year int, month time.Month) string {
	r := newRenderer()

	switch {
	case year == 0:
		r.Printf("# Sales — Full History\n\n")
	case month == 0:
		r.Printf("# Sales — %d\n\n", year)
	default:
		r.Printf("# Sales — %s %d\n\n", month, year)
	}

	if len(sales) == 0 {
		r.Printf("*No sales in the period.*\n")
		return r.String()
	}

	r.Header("llrrrr", "Date", "Product", "Qty", "Unit Price", "Revenue", "Margin")
	for _, s := range sales {
		r.Row(s.Date.String(),
			s.Product,
			fmt.Sprintf("%d", s.Quantity),
			s.UnitPrice.String(),
			s.Revenue.String(),
			s.GrossMargin.String())
	}
	totals := gestao.AggregateTotals(sales)
	r.BoldRow("Total", "", "", "", totals.Revenue.String(), totals.Margin.String())
	r.Printf("\n")

	r.Printf("## By Product\n\n")
	r.Header("lrrrr", "Product", "Qty", "Revenue", "Margin", "Margin %")
	for _, g := range gestao.AggregateByProduct(sales) {
		r.Row(g.Product,
			fmt.Sprintf("%d", g.Quantity),
			g.Revenue.String(),
			g.Margin.String(),
			g.MarginPct.String())
	}

	return r.String()
}
