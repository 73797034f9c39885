package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/stockplan"
	"github.com/google/subcommands"
)

type importPricesCmd struct {
	items string
	date  string
	price string
}

func (*importPricesCmd) Name() string { return "import-prices" }
func (*importPricesCmd) Synopsis() string {
	return "import stock prices from a JSON document"
}
func (*importPricesCmd) Usage() string {
	return `esp import-prices [-items <jsonpath>] [-date <jsonpath>] [-price <jsonpath>] [<file>]

  Reads a JSON document (a file, or stdin) and records every price found.
  The items path selects the list of price points, the date and price paths
  are evaluated on each of them.

Usage Examples:
$ curl -s https://example.com/history.json | esp import-prices -items '$.data[*]' -price '$.close'
`
}

func (c *importPricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.items, "items", "$[*]", "JSONPath to the list of price points")
	f.StringVar(&c.date, "date", "$.date", "JSONPath to the date, relative to a price point")
	f.StringVar(&c.price, "price", "$.price", "JSONPath to the price, relative to a price point")
}

func (c *importPricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if f.NArg() > 0 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	prices, err := stockplan.ImportPrices(r, c.items, c.date, c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing prices: %v\n", err)
		return subcommands.ExitFailure
	}
	actions := make([]stockplan.Action, 0, len(prices))
	for _, s := range prices {
		if err := s.Validate(); err != nil {
			logger.Warn().Stringer("date", s.Date).Err(err).Msg("skipping price")
			continue
		}
		actions = append(actions, stockplan.SetPrice{Price: s})
	}
	if st := Apply(actions...); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Imported %d prices\n", len(actions))
	return subcommands.ExitSuccess
}
