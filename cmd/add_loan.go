package cmd

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplan"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type addLoanCmd struct {
	id          string
	typ         string
	principal   float64
	rate        float64
	origination string
	maturity    string
	years       int
	related     string
	parent      string
	refinanced  string
	notes       string
}

func (*addLoanCmd) Name() string     { return "add-loan" }
func (*addLoanCmd) Synopsis() string { return "add a loan" }
func (*addLoanCmd) Usage() string {
	return `esp add-loan -principal <amount> -rate <rate> [-d <date>] (-maturity <date> | -years <n>)

  Adds an active loan. Loan types are purchase, tax and interest.
  Refinancing a loan is adding the new loan with -refinances, and marking
  the old one as refinanced with esp loan-status.

Usage Examples:
$ esp add-loan -type purchase -principal 1600 -rate 0.035 -d 2023-06-15 -years 5 -grant <grant id>
`
}

func (c *addLoanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Loan id (generated when empty)")
	f.StringVar(&c.typ, "type", string(stockplan.PurchaseLoan), "Loan type")
	f.Float64Var(&c.principal, "principal", 0, "Principal amount")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate, e.g. 0.035")
	f.StringVar(&c.origination, "d", "", "Origination date (default today)")
	f.StringVar(&c.maturity, "maturity", "", "Maturity date")
	f.IntVar(&c.years, "years", 0, "Term in years, when no maturity date is given")
	f.StringVar(&c.related, "grant", "", "Id of the grant the loan finances")
	f.StringVar(&c.parent, "parent", "", "Id of the parent loan")
	f.StringVar(&c.refinanced, "refinances", "", "Id of the loan this one refinances")
	f.StringVar(&c.notes, "notes", "", "Free text")
}

func (c *addLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	origination, err := parseDate(c.origination)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing origination date: %v\n", err)
		return subcommands.ExitUsageError
	}
	maturity := origination.AddYears(c.years)
	if c.maturity != "" {
		if maturity, err = parseDate(c.maturity); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing maturity date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	l := stockplan.Loan{
		ID:                 cmp.Or(c.id, uuid.NewString()),
		Type:               stockplan.LoanType(c.typ),
		PrincipalAmount:    stockplan.M(c.principal, ""),
		AnnualInterestRate: stockplan.R(c.rate),
		OriginationDate:    origination,
		MaturityDate:       maturity,
		Status:             stockplan.Active,
		RelatedGrantID:     c.related,
		ParentLoanID:       c.parent,
		RefinancedFromID:   c.refinanced,
		Notes:              c.notes,
	}
	if err := l.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid loan: %v\n", err)
		return subcommands.ExitUsageError
	}
	if s := Apply(stockplan.AddLoan{Loan: l}); s != subcommands.ExitSuccess {
		return s
	}
	fmt.Printf("Added %s loan %s of %s until %s\n", l.Type, l.ID, l.PrincipalAmount, l.MaturityDate)
	return subcommands.ExitSuccess
}
