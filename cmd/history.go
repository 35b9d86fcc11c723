package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lusw/portfolio"
	"github.com/lusw/portfolio/renderer"
)

type historyCmd struct {
	currency string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the month-by-month record of the portfolio" }
func (*historyCmd) Usage() string {
	return `rsap history [-c <currency>]

  Fetches the portfolio from the server and displays the monthly record,
  split between the Taiwanese and US sub-ledgers, with the gain and the
  annualized return of each month.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency to report values in (USD or TWD).")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, _, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}

	display, err := displayCurrency(settings, c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err.Error())
		return subcommands.ExitUsageError
	}

	snap, err := fetchSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := portfolio.NewHistoryReport(snap, display, settings.LastRate)
	printMarkdown(renderer.HistoryMarkdown(report))

	return subcommands.ExitSuccess
}
