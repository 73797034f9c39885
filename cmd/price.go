package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/stockplan"
	"github.com/google/subcommands"
)

type priceCmd struct {
	date   string
	delete bool
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "record the stock price of a day" }
func (*priceCmd) Usage() string {
	return `esp price [-d <date>] <price>
esp price -delete -d <date>

  Records the price per share on a date, replacing any price of that day.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the price (default today)")
	f.BoolVar(&c.delete, "delete", false, "Delete the price of that day instead")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.delete {
		return Apply(stockplan.DeletePrice{Date: on})
	}

	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting a single price")
		return subcommands.ExitUsageError
	}
	v, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := stockplan.StockPrice{Date: on, PricePerShare: stockplan.M(v, "")}
	if err := s.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price: %v\n", err)
		return subcommands.ExitUsageError
	}
	return Apply(stockplan.SetPrice{Price: s})
}
