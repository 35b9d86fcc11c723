package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	ticker string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a position from the portfolio" }
func (*rmCmd) Usage() string {
	return `rsap rm -ticker <ticker>

  Removes the position with the given ticker and uploads the portfolio.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker of the position to remove (required)")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker flag is required.")
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

	if err := snap.RemovePosition(pos.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err.Error())
		return subcommands.ExitFailure
	}

	if err := uploadSnapshot(ctx, snap); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully removed %s from the portfolio.\n", c.ticker)
	return subcommands.ExitSuccess
}
