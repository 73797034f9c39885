package renderer

import (
	"slices"

	"github.com/etnz/stockplan"
	"github.com/etnz/stockplan/date"
)

// Taxes is the tax view of a single year.
type Taxes struct {
	Year              int
	Income            []stockplan.TaxableEvent
	IncomeTotal       stockplan.Money
	CapitalGains      []stockplan.TaxableEvent
	CapitalGainsTotal stockplan.Money
	Sales             []stockplan.StockSale
	RealizedGains     stockplan.Money
}

// NewTaxes collects the taxable events and the sales of 'year'.
func NewTaxes(p stockplan.Portfolio, year int) *Taxes {
	end := date.EndOfYear(year)
	inYear := func(events []stockplan.TaxableEvent) []stockplan.TaxableEvent {
		return slices.DeleteFunc(events, func(e stockplan.TaxableEvent) bool { return e.Date.Year() != year })
	}
	t := &Taxes{
		Year:          year,
		Income:        inYear(stockplan.IncomeTaxableEvents(p, end)),
		CapitalGains:  inYear(stockplan.CapitalGainsTaxableEvents(p, end)),
		Sales:         []stockplan.StockSale{},
		RealizedGains: stockplan.M(0, p.Currency),
	}
	t.IncomeTotal = stockplan.TotalValue(t.Income).In(p.Currency)
	t.CapitalGainsTotal = stockplan.TotalValue(t.CapitalGains).In(p.Currency)
	for _, s := range p.StockSales {
		if s.Date.Year() != year {
			continue
		}
		t.Sales = append(t.Sales, s)
		t.RealizedGains = t.RealizedGains.Add(s.Gain())
	}
	return t
}

// Interest is the interest view of a range of years.
type Interest struct {
	From, To int
	Years    []stockplan.YearlyInterestExpense
	Total    stockplan.Money
}

// NewInterest computes the yearly interest expenses from 'from' to 'to'.
func NewInterest(p stockplan.Portfolio, from, to int) *Interest {
	r := &Interest{
		From:  from,
		To:    to,
		Years: stockplan.InterestExpenseByYear(p.Loans, from, to),
		Total: stockplan.M(0, p.Currency),
	}
	for i, y := range r.Years {
		y.TotalInterest = y.TotalInterest.In(p.Currency)
		r.Years[i] = y
		r.Total = r.Total.Add(y.TotalInterest)
	}
	return r
}

// Projection is a projection with the assumptions it was made with.
type Projection struct {
	Growth   stockplan.Rate
	From, To int
	Years    []stockplan.YearProjection
}

// NewProjection projects p from 'from' to 'to' at 'growth' a year.
func NewProjection(p stockplan.Portfolio, growth stockplan.Rate, from, to int) *Projection {
	return &Projection{
		Growth: growth,
		From:   from,
		To:     to,
		Years:  stockplan.ProjectFutureValue(p, growth, from, to),
	}
}
