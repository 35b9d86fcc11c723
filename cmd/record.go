package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lusw/portfolio"
	"github.com/lusw/portfolio/month"
	"github.com/shopspring/decimal"
)

type recordCmd struct {
	date      string
	usCost    string
	usBalance string
	twCost    string
	twBalance string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record the monthly state of both sub-ledgers" }
func (*recordCmd) Usage() string {
	return `rsap record [-d <month>] -us-cost <n> -us-balance <n> -tw-cost <n> -tw-balance <n>

  Records the cost and balance of the US sub-ledger (in USD) and of the
  Taiwanese sub-ledger (in TWD) for a month, then uploads the portfolio.
  The month defaults to the current one and accepts both "2024-05" and
  "May 2024". Recording an already recorded month overwrites it.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Month to record, current month by default")
	f.StringVar(&c.usCost, "us-cost", "", "Cost of the US sub-ledger in USD (required)")
	f.StringVar(&c.usBalance, "us-balance", "", "Balance of the US sub-ledger in USD (required)")
	f.StringVar(&c.twCost, "tw-cost", "", "Cost of the Taiwanese sub-ledger in TWD (required)")
	f.StringVar(&c.twBalance, "tw-balance", "", "Balance of the Taiwanese sub-ledger in TWD (required)")
}

func (c *recordCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.usCost == "" || c.usBalance == "" || c.twCost == "" || c.twBalance == "" {
		fmt.Fprintln(os.Stderr, "Error: -us-cost, -us-balance, -tw-cost and -tw-balance flags are required.")
		return subcommands.ExitUsageError
	}

	date := month.This()
	if c.date != "" {
		var err error
		date, err = month.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid month %q: %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
	}

	amounts := make([]decimal.Decimal, 4)
	for i, v := range []string{c.usCost, c.usBalance, c.twCost, c.twBalance} {
		var err error
		amounts[i], err = decimal.NewFromString(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", v, err)
			return subcommands.ExitUsageError
		}
	}

	snap, err := fetchSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	record := portfolio.NewHistory(date, amounts[0], amounts[1], amounts[2], amounts[3])
	if existing, ok := snap.HistoryByDate(date); ok {
		record.ID = existing.ID
		if err := snap.UpdateHistory(record); err != nil {
			fmt.Fprintln(os.Stderr, "Error: ", err.Error())
			return subcommands.ExitFailure
		}
	} else {
		snap.AddHistory(record)
	}

	if err := uploadSnapshot(ctx, snap); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully recorded %s.\n", date)
	return subcommands.ExitSuccess
}
