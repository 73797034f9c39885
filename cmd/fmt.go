package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the portfolio file in its canonical form"
}
func (*fmtCmd) Usage() string {
	return `esp fmt

  Reads and rewrites the portfolio file, after a manual edit for instance.
  Missing ids are not generated, use esp check to find them.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if st := Apply(); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Fprintf(os.Stderr, "Formatted %s\n", PortfolioPath())
	return subcommands.ExitSuccess
}
