package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
	"github.com/rogerbarbosa001-svg/GestaoApp/renderer"
)

// addFixedCmd holds the flags for the 'add-fixed' subcommand.
type addFixedCmd struct{}

func (*addFixedCmd) Name() string     { return "add-fixed" }
func (*addFixedCmd) Synopsis() string { return "add or update a monthly fixed cost" }
func (*addFixedCmd) Usage() string {
	return `gapp add-fixed <description> <monthly amount>

  Adds a recurring monthly expense. An existing entry with the same
  description is overwritten.

Usage Examples:
$ gapp add-fixed Rent 1200
$ gapp add-fixed "Cleaning service" 350.50
`
}

func (*addFixedCmd) SetFlags(_ *flag.FlagSet) {}

func (c *addFixedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a description and a monthly amount.")
		return subcommands.ExitUsageError
	}
	amount, err := strconv.ParseFloat(f.Arg(1), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.AddFixedCost(f.Arg(0), gestao.M(amount)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := saveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Fixed cost %q registered. Monthly total: %s\n", f.Arg(0), store.TotalFixedCost())
	return subcommands.ExitSuccess
}

// delFixedCmd holds the flags for the 'del-fixed' subcommand.
type delFixedCmd struct{}

func (*delFixedCmd) Name() string     { return "del-fixed" }
func (*delFixedCmd) Synopsis() string { return "delete a monthly fixed cost" }
func (*delFixedCmd) Usage() string {
	return `gapp del-fixed <description>

  Deletes the fixed cost with the given description.
`
}

func (*delFixedCmd) SetFlags(_ *flag.FlagSet) {}

func (c *delFixedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected the description of the fixed cost to delete.")
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.DeleteFixedCost(f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if err := saveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Fixed cost %q deleted. Monthly total: %s\n", f.Arg(0), store.TotalFixedCost())
	return subcommands.ExitSuccess
}

// fixedCostsCmd holds the flags for the 'fixed-costs' subcommand.
type fixedCostsCmd struct{}

func (*fixedCostsCmd) Name() string     { return "fixed-costs" }
func (*fixedCostsCmd) Synopsis() string { return "display the fixed cost structure report" }
func (*fixedCostsCmd) Usage() string {
	return `gapp fixed-costs

  Displays the fixed costs ranked by amount, with the committed monthly
  and annual totals.
`
}

func (*fixedCostsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fixedCostsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.FixedCostsMarkdown(store.BuildFixedCostAnalysis()))
	return subcommands.ExitSuccess
}
