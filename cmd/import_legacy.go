package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
)

// importLegacyCmd holds the flags for the 'import-legacy' subcommand.
type importLegacyCmd struct{}

func (*importLegacyCmd) Name() string     { return "import-legacy" }
func (*importLegacyCmd) Synopsis() string { return "import a backup from the old application" }
func (*importLegacyCmd) Usage() string {
	return `gapp import-legacy <backup file>

  Converts a backup document produced by the old application into the
  current snapshot format and replaces the whole store with it.
`
}

func (*importLegacyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importLegacyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected the path of the legacy backup file.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup file %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	snap, err := gestao.ImportLegacy(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	store := gestao.NewStore()
	store.FromSnapshot(snap)
	if err := saveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d fixed costs, %d products and %d sales into %s\n",
		len(snap.FixedCosts), len(snap.Products), len(snap.Sales), *snapshotFile)
	return subcommands.ExitSuccess
}
