package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/lusw/portfolio/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion. Complete()
// only acts when the shell asks for completions, otherwise it is a no-op.
func completion() {
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"login":    {Flags: map[string]complete.Predictor{"u": predict.Nothing, "p": predict.Nothing}},
			"logout":   {},
			"show":     {Flags: map[string]complete.Predictor{"c": predict.Set{"USD", "TWD"}}},
			"history":  {Flags: map[string]complete.Predictor{"c": predict.Set{"USD", "TWD"}}},
			"update":   {Flags: map[string]complete.Predictor{"c": predict.Set{"USD", "TWD"}}},
			"add":      {},
			"edit":     {},
			"rm":       {},
			"record":   {},
			"rmrecord": {},
			"currency": {Args: predict.Set{"USD", "TWD"}},
			"topic":    {},
			"assist":   {},
		},
		Flags: map[string]complete.Predictor{
			"server": predict.Nothing,
		},
	}
	c.Complete("rsap")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
