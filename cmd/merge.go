package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplan"
	"github.com/google/subcommands"
)

type mergeCmd struct{}

func (*mergeCmd) Name() string     { return "merge" }
func (*mergeCmd) Synopsis() string { return "import the records of other portfolio files" }
func (*mergeCmd) Usage() string {
	return `esp merge <file>...

  Imports every record of the given portfolio files. Records with a known
  id replace the existing ones, prices replace the price of the same day
  and programs the program of the same year.
`
}

func (c *mergeCmd) SetFlags(f *flag.FlagSet) {}

func (c *mergeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expecting at least one file to merge")
		return subcommands.ExitUsageError
	}
	var actions []stockplan.Action
	for _, path := range f.Args() {
		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		from, err := stockplan.DecodePortfolio(file)
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		actions = append(actions, stockplan.Merge{From: from})
	}
	return Apply(actions...)
}
