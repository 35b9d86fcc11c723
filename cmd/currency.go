package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lusw/portfolio"
)

type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show or switch the display currency" }
func (*currencyCmd) Usage() string {
	return `rsap currency [USD|TWD]

  Without argument, prints the current display currency. With an argument,
  switches the display currency used by the report commands.
`
}

func (*currencyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, path, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Println(settings.DisplayCurrency)
		return subcommands.ExitSuccess
	}

	cur, err := portfolio.ParseCurrency(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err.Error())
		return subcommands.ExitUsageError
	}

	settings.DisplayCurrency = cur
	if err := portfolio.SaveSettings(path, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Display currency set to %s.\n", cur)
	return subcommands.ExitSuccess
}
