package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplan"
	"github.com/etnz/stockplan/date"
	"github.com/etnz/stockplan/renderer"
	"github.com/google/subcommands"
)

type valueCmd struct {
	date string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display the net value of the portfolio on a given date" }
func (*valueCmd) Usage() string {
	return `esp value [-d <date>]

  Values every grant at the latest known stock price, and deducts the
  principal and the interest accrued this year of the active loans.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the valuation")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	report := stockplan.CalculateNetValue(p, on)
	if report.StockPrice == nil {
		logger.Warn().Stringer("date", on).Msg("no stock price known, shares are valued at zero")
	}
	printMarkdown(renderer.RenderNetValue(&report))
	return subcommands.ExitSuccess
}
