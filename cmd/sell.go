package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplan"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type sellCmd struct {
	date      string
	grant     string
	shares    float64
	price     float64
	costBasis float64
	reason    string
	loan      string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of vested shares" }
func (*sellCmd) Usage() string {
	return `esp sell -grant <grant id> -shares <n> -price <price> [-reason <reason>] [-loan <loan id>] [-d <date>]

  Records a sale. The cost basis per share defaults to the grant price.
  Reasons are voluntary (the default), loan_payoff and tax_payment.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Sale date (default today)")
	f.StringVar(&c.grant, "grant", "", "Source grant id")
	f.Float64Var(&c.shares, "shares", 0, "Number of shares sold")
	f.Float64Var(&c.price, "price", 0, "Sale price per share")
	f.Float64Var(&c.costBasis, "cost", -1, "Cost basis per share (default the grant price)")
	f.StringVar(&c.reason, "reason", string(stockplan.Voluntary), "Reason of the sale")
	f.StringVar(&c.loan, "loan", "", "Id of the loan paid off with the proceeds")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	costBasis := stockplan.M(c.costBasis, "")
	if c.costBasis < 0 {
		p, err := DecodePortfolio()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
		g, ok := p.Grant(c.grant)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: grant %q not found, use -cost to set the cost basis\n", c.grant)
			return subcommands.ExitUsageError
		}
		costBasis = g.PricePerShareAtGrant
	}

	shares, price := stockplan.Q(c.shares), stockplan.M(c.price, "")
	s := stockplan.StockSale{
		ID:            uuid.NewString(),
		Date:          on,
		SourceGrantID: c.grant,
		SharesSold:    shares,
		PricePerShare: price,
		TotalProceeds: price.Mul(shares),
		CostBasis:     costBasis,
		Reason:        stockplan.SaleReason(c.reason),
		RelatedLoanID: c.loan,
	}
	if err := s.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid sale: %v\n", err)
		return subcommands.ExitUsageError
	}
	warnOverdraw(c.grant, on, shares)
	if st := Apply(stockplan.AddSale{Sale: s}); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Sold %s shares for %s, realized gain %s\n", s.SharesSold, s.TotalProceeds, s.Gain().SignedString())
	return subcommands.ExitSuccess
}
