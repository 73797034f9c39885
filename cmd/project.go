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

// projection holds the flags shared by the project and chart commands.
type projection struct {
	growth   float64
	from, to int
}

func (c *projection) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.growth, "growth", -1, "Yearly stock price growth, e.g. 0.05 (default from config)")
	f.IntVar(&c.from, "from", date.Today().Year(), "First projected year")
	f.IntVar(&c.to, "to", 0, "Last projected year (default from the configured horizon)")
}

// resolve applies the configured defaults.
func (c *projection) resolve() (growth stockplan.Rate, from, to int, err error) {
	g := c.growth
	if g == -1 {
		g = config.Growth
	}
	to = c.to
	if to == 0 {
		to = c.from + config.Horizon - 1
	}
	if to < c.from {
		return growth, 0, 0, fmt.Errorf("-to %d is before -from %d", to, c.from)
	}
	return stockplan.R(g), c.from, to, nil
}

type projectCmd struct {
	projection
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the value of the portfolio year by year" }
func (*projectCmd) Usage() string {
	return `esp project [-growth <rate>] [-from <year>] [-to <year>]

  Simulates the portfolio at the end of every year, the stock price growing
  from the latest known price. Loans are repaid at maturity by selling
  shares at the projected price.
`
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	growth, from, to, err := c.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	r := renderer.NewProjection(p, growth, from, to)
	if len(r.Years) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no stock price in the portfolio, nothing to project from")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderProjection(r))
	return subcommands.ExitSuccess
}
