package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
)

// targetCmd holds the flags for the 'target' subcommand.
type targetCmd struct{}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "show or set the monthly revenue goal" }
func (*targetCmd) Usage() string {
	return `gapp target [<amount>]

  Shows the monthly revenue goal, or sets it when an amount is given.
`
}

func (*targetCmd) SetFlags(_ *flag.FlagSet) {}

func (c *targetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Printf("Monthly revenue goal: %s\n", store.Target())
		return subcommands.ExitSuccess
	}

	amount, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	if err := store.SetTarget(gestao.M(amount)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := saveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Monthly revenue goal set to %s\n", store.Target())
	return subcommands.ExitSuccess
}
