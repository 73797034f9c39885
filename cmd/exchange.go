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

type exchangeCmd struct {
	date   string
	from   string
	to     string
	shares float64
	price  float64
}

func (*exchangeCmd) Name() string     { return "exchange" }
func (*exchangeCmd) Synopsis() string { return "use vested shares as down payment of a new purchase" }
func (*exchangeCmd) Usage() string {
	return `esp exchange -from <grant id> [-to <grant id>] -shares <n> -price <price> [-d <date>]

  Records a share exchange: the shares leave the source grant. It is not a
  taxable event.
`
}

func (c *exchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Exchange date (default today)")
	f.StringVar(&c.from, "from", "", "Source grant id")
	f.StringVar(&c.to, "to", "", "Target grant id")
	f.Float64Var(&c.shares, "shares", 0, "Number of shares exchanged")
	f.Float64Var(&c.price, "price", 0, "Price per share at exchange")
}

func (c *exchangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	shares, price := stockplan.Q(c.shares), stockplan.M(c.price, "")
	x := stockplan.ShareExchange{
		ID:                      uuid.NewString(),
		Date:                    on,
		SourceGrantID:           c.from,
		TargetGrantID:           c.to,
		SharesExchanged:         shares,
		PricePerShareAtExchange: price,
		ValueAtExchange:         price.Mul(shares),
	}
	if err := x.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid exchange: %v\n", err)
		return subcommands.ExitUsageError
	}
	warnOverdraw(c.from, on, shares)
	return Apply(stockplan.AddExchange{Exchange: x})
}
