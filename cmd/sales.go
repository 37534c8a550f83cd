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

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	date string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of a catalog product" }
func (*sellCmd) Usage() string {
	return `gapp sell [-d <date>] <product> <quantity>

  Records a sale. The product's current price and unit cost are frozen
  into the record: later catalog edits never change it.

Usage Examples:
$ gapp sell "Kids Party" 2
$ gapp sell -d 2025-03-15 Wedding 1
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", gestao.Today().String(), "Date of the sale.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a product name and a quantity.")
		return subcommands.ExitUsageError
	}
	quantity, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}
	day, err := gestao.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	sale, err := store.RecordSale(f.Arg(0), quantity, day)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := saveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sale recorded: %d × %s on %s, revenue %s, margin %s\n",
		sale.Quantity, sale.Product, sale.Date, sale.Revenue, sale.GrossMargin)
	return subcommands.ExitSuccess
}

// delSaleCmd holds the flags for the 'del-sale' subcommand.
type delSaleCmd struct{}

func (*delSaleCmd) Name() string     { return "del-sale" }
func (*delSaleCmd) Synopsis() string { return "delete the most recently recorded sale" }
func (*delSaleCmd) Usage() string {
	return `gapp del-sale

  Deletes the last recorded sale. The history is append-only: only the
  most recent record can be removed, to undo a mistyped sale.
`
}

func (*delSaleCmd) SetFlags(_ *flag.FlagSet) {}

func (c *delSaleCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	sale, err := store.DeleteLastSale()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := saveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted sale: %d × %s on %s (%s)\n", sale.Quantity, sale.Product, sale.Date, sale.Revenue)
	return subcommands.ExitSuccess
}

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct {
	periodFlags
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales of a period with totals" }
func (*salesCmd) Usage() string {
	return `gapp sales [-y <year>] [-m <month>]

  Lists the sales of the period with aggregated totals and the
  per-product contribution. Defaults to the current month; -m 0 covers
  the whole year, -y 0 the full history.
`
}

func (c *salesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.SalesMarkdown(sales, c.year, c.Month()))
	return subcommands.ExitSuccess
}
