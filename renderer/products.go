package renderer

import (
	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
)

// ProductsMarkdown renders the catalog: one row per product with its
// derived unit cost and margin, and the cost breakdown of each entry.
func ProductsMarkdown(products []gestao.Product) string {
	r := newRenderer()

	r.Printf("# Catalog\n\n")

	if len(products) == 0 {
		r.Printf("*The catalog is empty.*\n")
		return r.String()
	}

	r.Header("lrrrr", "Product", "Price", "Unit Cost", "Margin", "Margin %")
	for _, p := range products {
		marginPct := gestao.Percent(0)
		if p.SalePrice.IsPositive() {
			marginPct = gestao.Percent(100 * p.UnitMargin.AsFloat() / p.SalePrice.AsFloat())
		}
		r.Row(p.Name, p.SalePrice.String(), p.TotalUnitCost.String(), p.UnitMargin.String(), marginPct.String())
	}
	r.Printf("\n")

	for _, p := range products {
		if len(p.CostLines) == 0 {
			continue
		}
		r.Printf("## %s — Cost Breakdown\n\n", p.Name)
		r.Header("lr", "Item", "Amount")
		for _, line := range p.CostLines {
			r.Row(line.Item, line.Amount.String())
		}
		r.BoldRow("Total", p.TotalUnitCost.String())
		r.Printf("\n")
	}

	return r.String()
}
