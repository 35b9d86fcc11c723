package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "close the session on the sync server" }
func (*logoutCmd) Usage() string {
	return `rsap logout

  Tells the server to close the session and forgets the stored cookie. The
  server response is not checked, the local cookie is removed regardless.
`
}

func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	newClient().Logout(ctx)

	if err := clearSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to remove stored session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Logged out.")
	return subcommands.ExitSuccess
}
