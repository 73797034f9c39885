package cmd

import (
	"flag"

	"github.com/etnz/stockplan"
	"github.com/etnz/stockplan/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors predicts flag values by flag name, whatever the command.
var flagPredictors = map[string]complete.Predictor{
	"portfolio": predict.Files("*.json"),
	"config":    predict.Files("*.toml"),
	"log-level": predict.Set{"debug", "info", "warn", "error"},
	"o":         predict.Files("*.png"),
	"reason":    predict.Set{string(stockplan.Voluntary), string(stockplan.LoanPayoff), string(stockplan.TaxPayment)},
}

// argPredictors predicts the positional arguments of some commands.
var argPredictors = map[string]complete.Predictor{
	"loan-status":   predict.Set{string(stockplan.Active), string(stockplan.Refinanced), string(stockplan.PaidOff)},
	"delete":        predict.Set{"grant", "loan", "exchange", "sale", "price", "program"},
	"merge":         predict.Files("*.json"),
	"import-prices": predict.Files("*.json"),
}

// Completion describes the commands registered in c, and their flags, for
// shell completion.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flags(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		root.Sub[cmd.Name()] = &complete.Command{
			Flags: flags(fs),
			Args:  argPredictors[cmd.Name()],
		}
	})
	if topics, err := docs.GetAllTopics(); err == nil {
		if t, ok := root.Sub["topic"]; ok {
			t.Args = predict.Set(topics)
		}
	}
	return root
}

func flags(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case isBool(f):
			m[f.Name] = predict.Nothing
		case flagPredictors[f.Name] != nil:
			m[f.Name] = flagPredictors[f.Name]
		default:
			m[f.Name] = predict.Something
		}
	})
	return m
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
