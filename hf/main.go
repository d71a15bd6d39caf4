// Command hf tracks the accounts of a short-term rental portfolio.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/hostfolio/cmd"
	"github.com/google/subcommands"
)

func main() {
	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Exits when invoked by the shell for completion.
	cmd.Completion(commander, flag.CommandLine).Complete("hf")

	flag.Parse()

	if name := flag.Arg(0); name != "" && !known(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			cmd.SyncLogger()
			os.Exit(code)
		}
	}

	status := commander.Execute(context.Background())
	cmd.SyncLogger()
	os.Exit(int(status))
}

// known reports whether name is a registered subcommand.
func known(c *subcommands.Commander, name string) (ok bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		ok = ok || cmd.Name() == name
	})
	return ok
}
