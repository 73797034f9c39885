package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplan/date"
	"github.com/etnz/stockplan/renderer"
	"github.com/google/subcommands"
)

type interestCmd struct {
	from, to int
}

func (*interestCmd) Name() string     { return "interest" }
func (*interestCmd) Synopsis() string { return "display the interest expense of every year" }
func (*interestCmd) Usage() string {
	return `esp interest [-from <year>] [-to <year>]

  Computes the interest paid on the active loans every year. The interest
  of a year is deductible the following year.
`
}

func (c *interestCmd) SetFlags(f *flag.FlagSet) {
	year := date.Today().Year()
	f.IntVar(&c.from, "from", year-1, "First year")
	f.IntVar(&c.to, "to", year, "Last year")
}

func (c *interestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.to < c.from {
		fmt.Fprintf(os.Stderr, "Error: -to %d is before -from %d\n", c.to, c.from)
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderInterest(renderer.NewInterest(p, c.from, c.to)))
	return subcommands.ExitSuccess
}
