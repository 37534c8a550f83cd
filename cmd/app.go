// Package cmd implements the CLI application to manage the business numbers.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
)

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&targetCmd{},
	&addFixedCmd{},
	&delFixedCmd{},
	&fixedCostsCmd{},
	&saveProductCmd{},
	&delProductCmd{},
	&productsCmd{},
	&sellCmd{},
	&delSaleCmd{},
	&salesCmd{},
	&dashboardCmd{},
	&dreCmd{},
	&breakevenCmd{},
	&simulateCmd{},
	&importLegacyCmd{},
	&resetCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("f", "gestao.json", "Path to the snapshot file holding the business data")

// loadStore reads the snapshot file into a fresh store.
func loadStore() (*gestao.Store, error) {
	store := gestao.NewStore()
	f, err := os.Open(*snapshotFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, snapshot file does not exist, starting from an empty one instead")
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot file %q: %w", *snapshotFile, err)
	}
	defer f.Close()

	snap, err := gestao.DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot file %q: %w", *snapshotFile, err)
	}
	store.FromSnapshot(snap)
	return store, nil
}

// saveStore writes the store back to the snapshot file.
func saveStore(store *gestao.Store) error {
	f, err := os.Create(*snapshotFile)
	if err != nil {
		return fmt.Errorf("cannot create snapshot file %q: %w", *snapshotFile, err)
	}
	defer f.Close()
	return gestao.EncodeSnapshot(f, store.ToSnapshot())
}

// printMarkdown renders a markdown report on the terminal, falling back to
// the raw text when the renderer cannot be built.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// periodFlags is the common (year, month) pair of the reporting commands.
type periodFlags struct {
	year  int
	month int
}

func (p *periodFlags) SetFlags(f *flag.FlagSet) {
	today := gestao.Today()
	f.IntVar(&p.year, "y", today.Year(), "Year to report on. Zero means the full history.")
	f.IntVar(&p.month, "m", int(today.Month()), "Month to report on (1-12). Zero means the whole year.")
}

func (p *periodFlags) Month() time.Month { return time.Month(p.month) }

func (p *periodFlags) validate() error {
	if p.month < 0 || p.month > 12 {
		return fmt.Errorf("invalid month %d, want 1-12 or 0 for the whole year", p.month)
	}
	return nil
}
