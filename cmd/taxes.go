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

type taxesCmd struct {
	year int
}

func (*taxesCmd) Name() string     { return "taxes" }
func (*taxesCmd) Synopsis() string { return "display the taxable events of a year" }
func (*taxesCmd) Usage() string {
	return `esp taxes [-y <year>]

  Lists the tranches vested during the year, split by tax treatment, and
  the realized gains of the sales of the year.
`
}

func (c *taxesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", date.Today().Year(), "Tax year")
}

func (c *taxesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderTaxes(renderer.NewTaxes(p, c.year)))
	return subcommands.ExitSuccess
}
