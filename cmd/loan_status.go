package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplan"
	"github.com/google/subcommands"
)

type loanStatusCmd struct{}

func (*loanStatusCmd) Name() string     { return "loan-status" }
func (*loanStatusCmd) Synopsis() string { return "change the status of a loan" }
func (*loanStatusCmd) Usage() string {
	return `esp loan-status <loan id> <active|refinanced|paid_off>

  Only active loans are valued, charged interest and repaid in projections.
`
}

func (c *loanStatusCmd) SetFlags(f *flag.FlagSet) {}

func (c *loanStatusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expecting a loan id and a status")
		return subcommands.ExitUsageError
	}
	status := stockplan.LoanStatus(f.Arg(1))
	if !status.Valid() {
		fmt.Fprintf(os.Stderr, "Error: invalid loan status %q\n", status)
		return subcommands.ExitUsageError
	}
	return Apply(stockplan.SetLoanStatus{ID: f.Arg(0), Status: status})
}
