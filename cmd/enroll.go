package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplan"
	"github.com/google/subcommands"
)

type enrollCmd struct {
	year   int
	date   string
	shares float64
	price  float64
}

func (*enrollCmd) Name() string     { return "enroll" }
func (*enrollCmd) Synopsis() string { return "purchase shares under a yearly program" }
func (*enrollCmd) Usage() string {
	return `esp enroll -y <year> -shares <n> -price <price> [-d <date>]

  Applies the program of the year to a purchase: adds the purchase grant,
  the free and catch-up grants, and the loan financing the purchase.
`
}

func (c *enrollCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Program year (default the year of the grant date)")
	f.StringVar(&c.date, "d", "", "Grant date (default today)")
	f.Float64Var(&c.shares, "shares", 0, "Number of purchased shares")
	f.Float64Var(&c.price, "price", 0, "Purchase price per share")
}

func (c *enrollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	year := c.year
	if year == 0 {
		year = on.Year()
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	program, ok := p.Program(year)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no program for %d, see esp program\n", year)
		return subcommands.ExitFailure
	}
	e, err := program.Enroll(on, stockplan.Q(c.shares), stockplan.M(c.price, ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var actions []stockplan.Action
	for _, g := range e.Grants {
		actions = append(actions, stockplan.AddGrant{Grant: g})
	}
	for _, l := range e.Loans {
		actions = append(actions, stockplan.AddLoan{Loan: l})
	}
	if st := Apply(actions...); st != subcommands.ExitSuccess {
		return st
	}
	for _, g := range e.Grants {
		fmt.Printf("Added %s grant %s of %s shares\n", g.Type, g.ID, g.TotalShares)
	}
	for _, l := range e.Loans {
		fmt.Printf("Added %s loan %s of %s until %s\n", l.Type, l.ID, l.PrincipalAmount, l.MaturityDate)
	}
	return subcommands.ExitSuccess
}
