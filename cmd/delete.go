package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/stockplan"
	"github.com/etnz/stockplan/date"
	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete records from the portfolio" }
func (*deleteCmd) Usage() string {
	return `esp delete <kind> <id>...

  Deletes records by id. Kinds are grant, loan, exchange, sale, price (the
  id is the date) and program (the id is the year). Records referring to a
  deleted one are kept, see esp check.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: expecting a kind and at least one id")
		return subcommands.ExitUsageError
	}
	var actions []stockplan.Action
	for _, id := range f.Args()[1:] {
		a, err := deleteAction(f.Arg(0), id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		actions = append(actions, a)
	}
	return Apply(actions...)
}

func deleteAction(kind, id string) (stockplan.Action, error) {
	switch kind {
	case "grant":
		return stockplan.DeleteGrant{ID: id}, nil
	case "loan":
		return stockplan.DeleteLoan{ID: id}, nil
	case "exchange":
		return stockplan.DeleteExchange{ID: id}, nil
	case "sale":
		return stockplan.DeleteSale{ID: id}, nil
	case "price":
		on, err := date.Parse(id)
		if err != nil {
			return nil, err
		}
		return stockplan.DeletePrice{Date: on}, nil
	case "program":
		year, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("invalid program year %q", id)
		}
		return stockplan.DeleteProgram{Year: year}, nil
	}
	return nil, fmt.Errorf("unknown record kind %q", kind)
}
