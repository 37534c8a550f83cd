package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rogerbarbosa001-svg/GestaoApp/renderer"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	periodFlags
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the monthly business overview" }
func (*dashboardCmd) Usage() string {
	return `gapp dashboard [-y <year>] [-m <month>]

  Displays the month's headline figures: revenue, costs, profit,
  breakeven position and revenue target attainment. Defaults to the
  current month.
`
}

func (c *dashboardCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.year == 0 || c.month == 0 {
		fmt.Fprintln(os.Stderr, "Error: the dashboard is a monthly report, -y and -m must name a month.")
		return subcommands.ExitUsageError
	}
	store, err := loadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(store.BuildDashboard(c.year, c.Month())))
	return subcommands.ExitSuccess
}
