package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lusw/portfolio"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	ticker   string
	name     string
	quantity string
	cost     string
	color    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new position to the portfolio" }
func (*addCmd) Usage() string {
	return `rsap add -ticker <ticker> -name <name> -quantity <quantity> -cost <cost> [-color <#RRGGBB>]

  Adds a new position and uploads the portfolio:
  - ticker: the ticker symbol (e.g. "2330" or "QQQ"). A ticker containing
    a digit is a Taiwanese security, otherwise a US one.
  - name: the human readable name of the security.
  - quantity: number of shares held.
  - cost: total cost, in the currency of the ticker's market.

Usage Examples:
# Adds 10 shares of TSMC bought for 6000 TWD.
$ rsap add -ticker 2330 -name "TSMC" -quantity 10 -cost 6000
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol (required)")
	f.StringVar(&c.name, "name", "", "Security name (required)")
	f.StringVar(&c.quantity, "quantity", "", "Number of shares held (required)")
	f.StringVar(&c.cost, "cost", "", "Total cost in the market currency (required)")
	f.StringVar(&c.color, "color", "#888888", "Display color as #RRGGBB")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.name == "" || c.quantity == "" || c.cost == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker, -name, -quantity and -cost flags are required.")
		return subcommands.ExitUsageError
	}

	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", c.quantity, err)
		return subcommands.ExitUsageError
	}
	cost, err := decimal.NewFromString(c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid cost %q: %v\n", c.cost, err)
		return subcommands.ExitUsageError
	}

	snap, err := fetchSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if _, exists := snap.PositionByTicker(c.ticker); exists {
		fmt.Fprintf(os.Stderr, "Error: ticker %q already exists in the portfolio.\n", c.ticker)
		return subcommands.ExitFailure
	}

	pos := portfolio.NewPosition(c.ticker, c.name, quantity, cost, c.color)
	snap.AddPosition(pos)

	if err := uploadSnapshot(ctx, snap); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully added %s (%s) to the portfolio.\n", c.ticker, pos.Currency())
	return subcommands.ExitSuccess
}
