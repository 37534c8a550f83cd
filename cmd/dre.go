package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rogerbarbosa001-svg/GestaoApp/renderer"
)

// dreCmd holds the flags for the 'dre' subcommand.
type dreCmd struct {
	periodFlags
}

func (*dreCmd) Name() string     { return "dre" }
func (*dreCmd) Synopsis() string { return "display the managerial income statement" }
func (*dreCmd) Usage() string {
	return `gapp dre [-y <year>] [-m <month>]

  Displays the five-line income statement of the period, with the
  vertical analysis of each line against gross revenue. Defaults to the
  current month; -m 0 covers the whole year, -y 0 the full history.
`
}

func (c *dreCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	st := store.Statement(c.year, c.Month())
	printMarkdown(renderer.StatementMarkdown(st, c.year, c.Month()))
	return subcommands.ExitSuccess
}
