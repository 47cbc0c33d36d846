package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/kolocmil/store/cmd"
)

func main() {
	// Shell completion. Complete returns immediately when not running as
	// a completion hook.
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{Flags: map[string]complete.Predictor{}}
	}
	completer := &complete.Command{
		Sub:   sub,
		Flags: map[string]complete.Predictor{"store-path": predict.Dirs("*")},
	}
	completer.Complete("kolo")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
