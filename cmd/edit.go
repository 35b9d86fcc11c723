package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type editCmd struct {
	ticker   string
	name     string
	quantity string
	cost     string
	color    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing position" }
func (*editCmd) Usage() string {
	return `rsap edit -ticker <ticker> [-name <name>] [-quantity <quantity>] [-cost <cost>] [-color <#RRGGBB>]

  Edits the fields of an existing position and uploads the portfolio.
  Only the given flags are changed. Editing does not change the market
  currency of the position, it was fixed when the position was added.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker of the position to edit (required)")
	f.StringVar(&c.name, "name", "", "New security name")
	f.StringVar(&c.quantity, "quantity", "", "New number of shares held")
	f.StringVar(&c.cost, "cost", "", "New total cost in the market currency")
	f.StringVar(&c.color, "color", "", "New display color as #RRGGBB")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker flag is required.")
		return subcommands.ExitUsageError
	}
	if c.name == "" && c.quantity == "" && c.cost == "" && c.color == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to edit, give at least one of -name, -quantity, -cost, -color.")
		return subcommands.ExitUsageError
	}

	snap, err := fetchSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	pos, ok := snap.PositionByTicker(c.ticker)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no position with ticker %q in the portfolio.\n", c.ticker)
		return subcommands.ExitFailure
	}

	if c.name != "" {
		pos.Name = c.name
	}
	if c.quantity != "" {
		quantity, err := decimal.NewFromString(c.quantity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", c.quantity, err)
			return subcommands.ExitUsageError
		}
		pos.Quantity = quantity
	}
	if c.cost != "" {
		cost, err := decimal.NewFromString(c.cost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid cost %q: %v\n", c.cost, err)
			return subcommands.ExitUsageError
		}
		pos.Cost = cost
	}
	if c.color != "" {
		pos.Color = c.color
	}

	if err := snap.UpdatePosition(pos); err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err.Error())
		return subcommands.ExitFailure
	}

	if err := uploadSnapshot(ctx, snap); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully updated %s.\n", c.ticker)
	return subcommands.ExitSuccess
}
