package renderer

import (
	"fmt"

	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
)

// BreakevenMarkdown renders the per-product breakeven table: for each
// catalog entry, the units and revenue needed to cover the fixed costs.
func BreakevenMarkdown(entries []gestao.ProductBreakeven, fixedCosts gestao.Money) string {
	r := newRenderer()

	r.Printf("# Breakeven by Product\n\n")
	r.Printf("Monthly fixed costs to cover: **%s**\n\n", fixedCosts)

	if len(entries) == 0 {
		r.Printf("*The catalog is empty.*\n")
		return r.String()
	}

	r.Header("lrrrrl", "Product", "Price", "Unit Margin", "Units", "Revenue", "Difficulty")
	for _, e := range entries {
		if !e.Achievable {
			r.Row(e.Product, e.SalePrice.String(), e.UnitMargin.String(), "—", "—", e.Difficulty.String())
			continue
		}
		r.Row(e.Product,
			e.SalePrice.String(),
			e.UnitMargin.String(),
			fmt.Sprintf("%.1f", e.Units.AsFloat()),
			e.RevenueTarget.String(),
			e.Difficulty.String())
	}

	return r.String()
}
