package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/valuation/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{Flags: map[string]complete.Predictor{
			"json": predict.Nothing,
		}}
	}
	// Install shell completion when invoked by the completion hooks; a
	// regular run falls through.
	complete.Complete(path.Base(os.Args[0]), &complete.Command{Sub: sub})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
