package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lusw/portfolio"
	"github.com/lusw/portfolio/api"
	"github.com/lusw/portfolio/renderer"
)

type updateCmd struct {
	currency string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh quotes and the exchange rate, then show positions" }
func (*updateCmd) Usage() string {
	return `rsap update [-c <currency>]

  Fetches the portfolio, refreshes the quote of every position and the
  TWD/USD exchange rate, and displays the refreshed positions. The new
  rate is remembered in the settings. Positions whose quote could not be
  fetched keep their previous prices.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency to report values in (USD or TWD).")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, path, err := loadSettings()
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

	rate, err := api.Refresh(ctx, newClient(), snap, settings.LastRate)
	if err != nil {
		// Partial failures are reported but the refreshed snapshot is
		// still displayed.
		fmt.Fprintf(os.Stderr, "Warning: some quotes could not be refreshed:\n%v\n", err)
	}

	settings.LastRate = rate
	if err := portfolio.SaveSettings(path, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
		return subcommands.ExitFailure
	}

	report := portfolio.NewPositionsReport(snap, display, rate)
	printMarkdown(renderer.PositionsMarkdown(report) + "\n" + renderer.SummaryMarkdown(report))

	return subcommands.ExitSuccess
}
