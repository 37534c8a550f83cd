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

// breakevenCmd holds the flags for the 'breakeven' subcommand.
type breakevenCmd struct{}

func (*breakevenCmd) Name() string     { return "breakeven" }
func (*breakevenCmd) Synopsis() string { return "display the breakeven analysis by product" }
func (*breakevenCmd) Usage() string {
	return `gapp breakeven

  For each product, displays how many units must be sold to cover the
  whole monthly fixed cost structure, with a difficulty label.
`
}

func (*breakevenCmd) SetFlags(_ *flag.FlagSet) {}

func (c *breakevenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fixed := store.TotalFixedCost()
	entries := gestao.BreakevenByProduct(store.Products(), fixed)
	printMarkdown(renderer.BreakevenMarkdown(entries, fixed))
	return subcommands.ExitSuccess
}
