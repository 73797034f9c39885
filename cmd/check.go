package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplan"
	"github.com/etnz/stockplan/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate every record of the portfolio" }
func (*checkCmd) Usage() string {
	return `esp check

  Lists invalid records and dangling references. Fails when at least one
  record is invalid, warnings alone do not fail.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := stockplan.LoadPortfolio(PortfolioPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	issues := p.Check()
	printMarkdown(renderer.CheckMarkdown(issues))
	if stockplan.HasErrors(issues) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
