package stockplan

import (
	"errors"
	"fmt"
	"strconv"
)

// Issue is a problem found on a single record of a portfolio.
type Issue struct {
	Kind    string // grant, loan, price, exchange, sale, program
	ID      string // the record id, the date for prices, the year for programs
	Err     error
	Warning bool // the record is usable as is, the engine tolerates it.
}

func (i Issue) String() string {
	level := "error"
	if i.Warning {
		level = "warning"
	}
	return fmt.Sprintf("%s: %s %q: %v", level, i.Kind, i.ID, i.Err)
}

// Check validates every record of the portfolio and returns one Issue per
// offending record. It lets the caller decide whether to skip, warn or abort.
//
// Dangling references are only warnings.
func (p Portfolio) Check() []Issue {
	var issues []Issue
	add := func(kind, id string, err error, warning bool) {
		if err != nil {
			issues = append(issues, Issue{Kind: kind, ID: id, Err: err, Warning: warning})
		}
	}

	grants := make(map[string]bool)
	for _, g := range p.Grants {
		add("grant", g.ID, g.Validate(), false)
		if grants[g.ID] {
			add("grant", g.ID, errors.New("duplicate id"), false)
		}
		grants[g.ID] = true
	}
	loans := make(map[string]bool)
	for _, l := range p.Loans {
		add("loan", l.ID, l.Validate(), false)
		if loans[l.ID] {
			add("loan", l.ID, errors.New("duplicate id"), false)
		}
		loans[l.ID] = true
	}
	prices := make(map[string]bool)
	for _, s := range p.StockPrices {
		id := s.Date.String()
		add("price", id, s.Validate(), false)
		if prices[id] {
			add("price", id, errors.New("several prices on the same date, the last one wins"), true)
		}
		prices[id] = true
	}
	for _, x := range p.ShareExchanges {
		add("exchange", x.ID, x.Validate(), false)
	}
	for _, s := range p.StockSales {
		add("sale", s.ID, s.Validate(), false)
	}
	for _, c := range p.ProgramConfigs {
		add("program", strconv.Itoa(c.Year), c.Validate(), false)
	}

	// references
	ref := func(kind, id, field, target string, known map[string]bool) {
		if target != "" && !known[target] {
			add(kind, id, fmt.Errorf("%s %q does not exist", field, target), true)
		}
	}
	for _, g := range p.Grants {
		ref("grant", g.ID, "related grant", g.RelatedGrantID, grants)
	}
	for _, l := range p.Loans {
		ref("loan", l.ID, "related grant", l.RelatedGrantID, grants)
		ref("loan", l.ID, "parent loan", l.ParentLoanID, loans)
		ref("loan", l.ID, "refinanced loan", l.RefinancedFromID, loans)
	}
	for _, x := range p.ShareExchanges {
		ref("exchange", x.ID, "source grant", x.SourceGrantID, grants)
		ref("exchange", x.ID, "target grant", x.TargetGrantID, grants)
	}
	for _, s := range p.StockSales {
		ref("sale", s.ID, "source grant", s.SourceGrantID, grants)
		ref("sale", s.ID, "related loan", s.RelatedLoanID, loans)
	}
	return issues
}

// HasErrors reports whether at least one issue is not a warning.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if !i.Warning {
			return true
		}
	}
	return false
}
