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

type showCmd struct {
	currency string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the current positions and portfolio totals" }
func (*showCmd) Usage() string {
	return `rsap show [-c <currency>]

  Fetches the portfolio from the server and displays every position with
  its value, cost and gain, followed by the portfolio totals. Values are
  reported in the display currency from the settings unless -c overrides
  it.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency to report values in (USD or TWD).")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := portfolio.NewPositionsReport(snap, display, settings.LastRate)
	printMarkdown(renderer.PositionsMarkdown(report) + "\n" + renderer.SummaryMarkdown(report))

	return subcommands.ExitSuccess
}
