package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// resetCmd holds the flags for the 'reset' subcommand.
type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase all fixed costs, products and sales" }
func (*resetCmd) Usage() string {
	return `gapp reset [-force]

  Erases the whole store: fixed costs, catalog and sale history. The
  monthly revenue goal is kept. Asks for confirmation unless -force.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Do not ask for confirmation.")
}

func (c *resetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !c.force {
		fmt.Printf("This erases %d fixed costs, %d products and %d sales. Type 'yes' to confirm: ",
			len(store.FixedCosts()), len(store.Products()), len(store.Sales()))
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println("Reset cancelled.")
			return subcommands.ExitSuccess
		}
	}

	store.Reset()
	if err := saveStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Store erased. The monthly revenue goal was kept.")
	return subcommands.ExitSuccess
}
