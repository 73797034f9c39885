package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplan"
	"github.com/etnz/stockplan/date"
	"github.com/google/subcommands"
)

type programCmd struct {
	year      int
	rate      float64
	term      int
	down      float64
	free      float64
	catchUp   float64
	templates templatesFlag
}

func (*programCmd) Name() string     { return "program" }
func (*programCmd) Synopsis() string { return "define the terms of a yearly stock program" }
func (*programCmd) Usage() string {
	return `esp program [-y <year>] -rate <rate> -term <years> -v <type:years:fraction:treatment>...

  Records the terms of the program of a year, replacing any existing one.
  Programs are only used by esp enroll.

Usage Examples:
$ esp program -y 2023 -rate 0.035 -term 5 -down 0.2 -free 0.25 -v purchase:1:0.5:capital_gains -v purchase:2:0.5:capital_gains -v free:3:1:income
`
}

func (c *programCmd) SetFlags(f *flag.FlagSet) {
	c.templates = make(templatesFlag)
	f.IntVar(&c.year, "y", date.Today().Year(), "Program year")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate of the purchase loans")
	f.IntVar(&c.term, "term", 0, "Term of the purchase loans, in years")
	f.Float64Var(&c.down, "down", 0, "Down payment, as a fraction of the purchase")
	f.Float64Var(&c.free, "free", 0, "Free shares per purchased share")
	f.Float64Var(&c.catchUp, "catchup", 0, "Catch-up shares per purchased share")
	f.Var(c.templates, "v", "Vesting template as type:years:fraction:treatment, repeatable")
}

func (c *programCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pc := stockplan.ProgramConfig{
		Year:              c.year,
		InterestRate:      stockplan.R(c.rate),
		LoanTermYears:     c.term,
		DownPaymentRate:   stockplan.R(c.down),
		FreeShareRatio:    stockplan.R(c.free),
		CatchUpShareRatio: stockplan.R(c.catchUp),
		VestingTemplates:  c.templates,
	}
	if err := pc.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid program: %v\n", err)
		return subcommands.ExitUsageError
	}
	return Apply(stockplan.SetProgram{Program: pc})
}
