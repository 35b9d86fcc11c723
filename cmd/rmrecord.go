package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lusw/portfolio/month"
)

type rmrecordCmd struct {
	date string
}

func (*rmrecordCmd) Name() string     { return "rmrecord" }
func (*rmrecordCmd) Synopsis() string { return "remove a monthly record" }
func (*rmrecordCmd) Usage() string {
	return `rsap rmrecord -d <month>

  Removes the record of the given month and uploads the portfolio. The
  month accepts both "2024-05" and "May 2024".
`
}

func (c *rmrecordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Month to remove (required)")
}

func (c *rmrecordCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: -d flag is required.")
		return subcommands.ExitUsageError
	}
	date, err := month.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid month %q: %v\n", c.date, err)
		return subcommands.ExitUsageError
	}

	snap, err := fetchSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	record, ok := snap.HistoryByDate(date)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no record for %s in the portfolio.\n", date)
		return subcommands.ExitFailure
	}

	if err := snap.RemoveHistory(record.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err.Error())
		return subcommands.ExitFailure
	}

	if err := uploadSnapshot(ctx, snap); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully removed the record of %s.\n", date)
	return subcommands.ExitSuccess
}
