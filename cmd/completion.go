package cmd

import (
	"flag"

	"github.com/etnz/hostfolio"
	"github.com/etnz/hostfolio/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagValues predicts the values of flags by name.
var flagValues = map[string]complete.Predictor{
	"ledger-file": predict.Files("*.jsonl"),
	"input":       predict.Files("*.json"),
	"system":      predict.Set{"sac", "price"},
	"p":           predict.Set{"day", "week", "month", "quarter", "year"},
	"c":           predict.Set{hostfolio.Variable, hostfolio.Fixed, hostfolio.Financial, hostfolio.Tax, hostfolio.Other},
	"currency":    predict.Set{"BRL", "USD", "EUR"},
}

// Completion returns the shell completion of the global flags and of every
// subcommand registered in c, with their own flags.
//
// It is run by the shell, with COMP_LINE set, before the command line is parsed.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		root.Sub[cmd.Name()] = &complete.Command{Flags: flagPredictors(f)}
		names = append(names, cmd.Name())
	})

	if topic, ok := root.Sub["topic"]; ok {
		topics, err := docs.GetAllTopics()
		if err == nil {
			topic.Args = predict.Set(append(topics, "readme", "*"))
		}
	}
	if query, ok := root.Sub["query"]; ok {
		query.Args = predict.Set(queryReports)
	}
	if help, ok := root.Sub["help"]; ok {
		help.Args = predict.Set(names)
	}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		if p, ok := flagValues[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}
