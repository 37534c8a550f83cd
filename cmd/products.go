package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
	"github.com/rogerbarbosa001-svg/GestaoApp/renderer"
)

// costLinesFlag accumulates repeated -c "item=amount" flags into a cost breakdown.
type costLinesFlag []gestao.CostLine

func (c *costLinesFlag) String() string { return fmt.Sprint(*c) }

func (c *costLinesFlag) Set(value string) error {
	item, amount, found := strings.Cut(value, "=")
	if !found {
		return fmt.Errorf("invalid cost line %q, want \"item=amount\"", value)
	}
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return fmt.Errorf("invalid cost line amount %q: %w", amount, err)
	}
	*c = append(*c, gestao.CostLine{Item: strings.TrimSpace(item), Amount: gestao.M(v)})
	return nil
}

// saveProductCmd holds the flags for the 'save-product' subcommand.
type saveProductCmd struct {
	rename string
	lines  costLinesFlag
}

func (*saveProductCmd) Name() string     { return "save-product" }
func (*saveProductCmd) Synopsis() string { return "create or update a product in the catalog" }
func (*saveProductCmd) Usage() string {
	return `gapp save-product [-rename <old name>] [-c <item>=<amount> ...] <name> <sale price>

  Creates or fully replaces a product. The cost breakdown is given as
  repeated -c flags; the unit cost and margin are derived from it.

Usage Examples:
$ gapp save-product -c Cake=150 -c Decoration=100 "Kids Party" 800
$ gapp save-product -rename "Kids Party" "Teen Party" 900
`
}

func (c *saveProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rename, "rename", "", "Current name of the product to update, when renaming it.")
	f.Var(&c.lines, "c", "Cost line as \"item=amount\". Repeat for each line.")
}

func (c *saveProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a product name and a sale price.")
		return subcommands.ExitUsageError
	}
	price, err := strconv.ParseFloat(f.Arg(1), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sale price %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	name := f.Arg(0)
	prior := c.rename
	if prior == "" {
		if _, exists := store.Product(name); exists {
			prior = name // plain update of an existing product
		}
	}
	draft := gestao.ProductDraft{
		PriorName: prior,
		Name:      name,
		SalePrice: gestao.M(price),
		CostLines: c.lines,
	}
	if err := store.SaveProduct(draft); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := saveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p, _ := store.Product(name)
	fmt.Printf("Product %q saved: price %s, unit cost %s, margin %s\n",
		p.Name, p.SalePrice, p.TotalUnitCost, p.UnitMargin)
	return subcommands.ExitSuccess
}

// delProductCmd holds the flags for the 'del-product' subcommand.
type delProductCmd struct{}

func (*delProductCmd) Name() string     { return "del-product" }
func (*delProductCmd) Synopsis() string { return "delete a product from the catalog" }
func (*delProductCmd) Usage() string {
	return `gapp del-product <name>

  Deletes a product. Recorded sales of the product are kept: they carry
  their own frozen price and cost.
`
}

func (*delProductCmd) SetFlags(_ *flag.FlagSet) {}

func (c *delProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected the name of the product to delete.")
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.DeleteProduct(f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if err := saveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Product %q deleted from the catalog.\n", f.Arg(0))
	return subcommands.ExitSuccess
}

// productsCmd holds the flags for the 'products' subcommand.
type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "display the catalog with costs and margins" }
func (*productsCmd) Usage() string {
	return `gapp products

  Displays every product with its sale price, derived unit cost, margin
  and cost breakdown.
`
}

func (*productsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *productsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProductsMarkdown(store.Products()))
	return subcommands.ExitSuccess
}
