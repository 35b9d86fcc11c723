package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lusw/portfolio"
)

type loginCmd struct {
	account  string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "open a session on the sync server" }
func (*loginCmd) Usage() string {
	return `rsap login -u <account> -p <password>

  Opens a session on the sync server and stores the session cookie for the
  other commands. The account name is remembered in the settings.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "u", "", "Account name (required)")
	f.StringVar(&c.password, "p", "", "Account password (required)")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: both -u and -p flags are required.")
		return subcommands.ExitUsageError
	}

	client := newClient()
	if err := client.Login(ctx, c.account, c.password); err != nil {
		fmt.Fprintf(os.Stderr, "Error: login failed: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveSession(client.Session()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to store session: %v\n", err)
		return subcommands.ExitFailure
	}

	settings, path, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}
	settings.Account = c.account
	if err := portfolio.SaveSettings(path, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Logged in as %s.\n", c.account)
	return subcommands.ExitSuccess
}
