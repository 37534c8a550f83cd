package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
	"github.com/rogerbarbosa001-svg/GestaoApp/renderer"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	periodFlags
	volume float64
	price  float64
	cost   float64
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "simulate a what-if scenario over a baseline month" }
func (*simulateCmd) Usage() string {
	return `gapp simulate [-y <year>] [-m <month>] [-volume <pct>] [-price <pct>] [-cost <pct>]

  Recomputes the month under percentage adjustments of sales volume,
  selling price and operating cost. The contribution margin ratio is
  derived from the month's sales, or assumed at 40% without history.

Usage Examples:
$ gapp simulate -volume 10
$ gapp simulate -price 5 -cost -10
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.periodFlags.SetFlags(f)
	f.Float64Var(&c.volume, "volume", 0, "Sales volume adjustment in percent.")
	f.Float64Var(&c.price, "price", 0, "Selling price adjustment in percent.")
	f.Float64Var(&c.cost, "cost", 0, "Operating cost adjustment in percent.")
}

func (c *simulateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sales := store.Sales()
	if c.year != 0 {
		sales = gestao.FilterByPeriod(sales, c.year, c.Month())
	}
	totals := gestao.AggregateTotals(sales)
	ratio, derived := gestao.DeriveMarginRatio(totals)

	sc := gestao.Scenario{
		BaselineRevenue: totals.Revenue,
		MarginRatio:     ratio,
		FixedCosts:      store.TotalFixedCost(),
		VolumePct:       c.volume,
		PricePct:        c.price,
		CostPct:         c.cost,
	}
	printMarkdown(renderer.SimulationMarkdown(sc, sc.Simulate(), derived))
	return subcommands.ExitSuccess
}
