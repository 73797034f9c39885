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

type addGrantCmd struct {
	id       string
	typ      string
	date     string
	price    float64
	related  string
	notes    string
	tranches tranchesFlag
}

func (*addGrantCmd) Name() string     { return "add-grant" }
func (*addGrantCmd) Synopsis() string { return "add a stock grant and its vesting schedule" }
func (*addGrantCmd) Usage() string {
	return `esp add-grant -type <type> [-d <date>] [-price <price>] -t <date:shares[:treatment]>...

  Adds a grant. Its total number of shares is the sum of its tranches.
  Grant types are purchase, free, catch_up and bonus. Tax treatments are
  income (the default), capital_gains and none.

Usage Examples:
$ esp add-grant -type purchase -d 2023-06-15 -price 20 -t 2024-06-15:50:capital_gains -t 2025-06-15:50:capital_gains
`
}

func (c *addGrantCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Grant id (generated when empty)")
	f.StringVar(&c.typ, "type", string(stockplan.Purchase), "Grant type")
	f.StringVar(&c.date, "d", "", "Grant date (default today)")
	f.Float64Var(&c.price, "price", 0, "Price per share paid at grant")
	f.StringVar(&c.related, "related", "", "Id of the grant this one derives from")
	f.StringVar(&c.notes, "notes", "", "Free text")
	f.Var(&c.tranches, "t", "Vesting tranche as date:shares[:treatment], repeatable")
}

func (c *addGrantCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	g := stockplan.StockGrant{
		ID:                   cmp.Or(c.id, uuid.NewString()),
		Type:                 stockplan.GrantType(c.typ),
		GrantDate:            on,
		PricePerShareAtGrant: stockplan.M(c.price, ""),
		VestingSchedule:      c.tranches,
		RelatedGrantID:       c.related,
		Notes:                c.notes,
	}
	g.TotalShares = g.ScheduledShares()
	if err := g.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid grant: %v\n", err)
		return subcommands.ExitUsageError
	}
	if s := Apply(stockplan.AddGrant{Grant: g}); s != subcommands.ExitSuccess {
		return s
	}
	fmt.Printf("Added %s grant %s of %s shares\n", g.Type, g.ID, g.TotalShares)
	return subcommands.ExitSuccess
}
