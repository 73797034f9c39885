package stockplan

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/stockplan/date"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when an action refers to a record that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when adding a record whose id is already used.
	ErrDuplicate = errors.New("duplicate id")
)

// Action is a change to apply to a Portfolio, see Reduce.
type Action interface {
	apply(p *Portfolio) error
}

// Reduce returns the portfolio resulting from applying 'a' to 'p'.
//
// It is a pure function: 'p' is never modified, and on error the returned
// portfolio is 'p' itself. Persisting the result is the caller's business.
func Reduce(p Portfolio, a Action) (Portfolio, error) {
	next := p.clone()
	if err := a.apply(&next); err != nil {
		return p, err
	}
	return next, nil
}

// clone copies the collections so that actions can modify them freely.
// Records themselves are values and are replaced, never modified in place.
func (p Portfolio) clone() Portfolio {
	p.Grants = slices.Clone(p.Grants)
	p.Loans = slices.Clone(p.Loans)
	p.StockPrices = slices.Clone(p.StockPrices)
	p.ShareExchanges = slices.Clone(p.ShareExchanges)
	p.StockSales = slices.Clone(p.StockSales)
	p.ProgramConfigs = slices.Clone(p.ProgramConfigs)
	return p
}

// newID returns id, or a fresh random id when empty.
func newID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// add appends r to *list, refusing duplicate ids.
func add[T any](list *[]T, r T, id func(T) string, kind string) error {
	if slices.ContainsFunc(*list, func(x T) bool { return id(x) == id(r) }) {
		return fmt.Errorf("cannot add %s %q: %w", kind, id(r), ErrDuplicate)
	}
	*list = append(*list, r)
	return nil
}

// update replaces the record of *list with the same id as r.
func update[T any](list *[]T, r T, id func(T) string, kind string) error {
	i := slices.IndexFunc(*list, func(x T) bool { return id(x) == id(r) })
	if i < 0 {
		return fmt.Errorf("cannot update %s %q: %w", kind, id(r), ErrNotFound)
	}
	(*list)[i] = r
	return nil
}

// remove deletes the record of *list with the given id.
func remove[T any](list *[]T, key string, id func(T) string, kind string) error {
	i := slices.IndexFunc(*list, func(x T) bool { return id(x) == key })
	if i < 0 {
		return fmt.Errorf("cannot delete %s %q: %w", kind, key, ErrNotFound)
	}
	*list = slices.Delete(*list, i, i+1)
	return nil
}

// upsert replaces the record with the same id as r, or appends it.
func upsert[T any](list *[]T, r T, id func(T) string) {
	if i := slices.IndexFunc(*list, func(x T) bool { return id(x) == id(r) }); i >= 0 {
		(*list)[i] = r
		return
	}
	*list = append(*list, r)
}

func grantID(g StockGrant) string       { return g.ID }
func loanID(l Loan) string              { return l.ID }
func priceID(s StockPrice) string       { return s.Date.String() }
func exchangeID(x ShareExchange) string { return x.ID }
func saleID(s StockSale) string         { return s.ID }
func programID(c ProgramConfig) string  { return fmt.Sprint(c.Year) }

// AddGrant adds a new grant. Missing grant and tranche ids are generated.
type AddGrant struct{ Grant StockGrant }

func (a AddGrant) apply(p *Portfolio) error {
	g := a.Grant
	g.ID = newID(g.ID)
	g.VestingSchedule = slices.Clone(g.VestingSchedule)
	for i := range g.VestingSchedule {
		g.VestingSchedule[i].ID = newID(g.VestingSchedule[i].ID)
	}
	return add(&p.Grants, g, grantID, "grant")
}

// UpdateGrant replaces an existing grant.
type UpdateGrant struct{ Grant StockGrant }

func (a UpdateGrant) apply(p *Portfolio) error { return update(&p.Grants, a.Grant, grantID, "grant") }

// DeleteGrant removes a grant. Records referring to it are kept.
type DeleteGrant struct{ ID string }

func (a DeleteGrant) apply(p *Portfolio) error { return remove(&p.Grants, a.ID, grantID, "grant") }

// AddLoan adds a new loan. A missing id is generated, a missing status is active.
type AddLoan struct{ Loan Loan }

func (a AddLoan) apply(p *Portfolio) error {
	l := a.Loan
	l.ID = newID(l.ID)
	if l.Status == "" {
		l.Status = Active
	}
	return add(&p.Loans, l, loanID, "loan")
}

// UpdateLoan replaces an existing loan.
type UpdateLoan struct{ Loan Loan }

func (a UpdateLoan) apply(p *Portfolio) error { return update(&p.Loans, a.Loan, loanID, "loan") }

// DeleteLoan removes a loan.
type DeleteLoan struct{ ID string }

func (a DeleteLoan) apply(p *Portfolio) error { return remove(&p.Loans, a.ID, loanID, "loan") }

// SetLoanStatus is the only way a loan changes status, e.g. when it is
// refinanced or paid off.
type SetLoanStatus struct {
	ID     string
	Status LoanStatus
}

func (a SetLoanStatus) apply(p *Portfolio) error {
	if !a.Status.Valid() {
		return fmt.Errorf("invalid loan status %q", a.Status)
	}
	l, ok := p.Loan(a.ID)
	if !ok {
		return fmt.Errorf("cannot change status of loan %q: %w", a.ID, ErrNotFound)
	}
	l.Status = a.Status
	return update(&p.Loans, l, loanID, "loan")
}

// SetPrice records the price of a day, overwriting any price on that day.
type SetPrice struct{ Price StockPrice }

func (a SetPrice) apply(p *Portfolio) error {
	upsert(&p.StockPrices, a.Price, priceID)
	return nil
}

// DeletePrice removes the price of a day.
type DeletePrice struct{ Date date.Date }

func (a DeletePrice) apply(p *Portfolio) error {
	return remove(&p.StockPrices, a.Date.String(), priceID, "price")
}

// AddExchange adds a share exchange. A missing id is generated.
type AddExchange struct{ Exchange ShareExchange }

func (a AddExchange) apply(p *Portfolio) error {
	x := a.Exchange
	x.ID = newID(x.ID)
	return add(&p.ShareExchanges, x, exchangeID, "exchange")
}

// DeleteExchange removes a share exchange.
type DeleteExchange struct{ ID string }

func (a DeleteExchange) apply(p *Portfolio) error {
	return remove(&p.ShareExchanges, a.ID, exchangeID, "exchange")
}

// AddSale adds a stock sale. A missing id is generated.
type AddSale struct{ Sale StockSale }

func (a AddSale) apply(p *Portfolio) error {
	s := a.Sale
	s.ID = newID(s.ID)
	return add(&p.StockSales, s, saleID, "sale")
}

// DeleteSale removes a stock sale.
type DeleteSale struct{ ID string }

func (a DeleteSale) apply(p *Portfolio) error { return remove(&p.StockSales, a.ID, saleID, "sale") }

// SetProgram records the program of a year, overwriting any existing one.
type SetProgram struct{ Program ProgramConfig }

func (a SetProgram) apply(p *Portfolio) error {
	upsert(&p.ProgramConfigs, a.Program, programID)
	return nil
}

// DeleteProgram removes the program of a year.
type DeleteProgram struct{ Year int }

func (a DeleteProgram) apply(p *Portfolio) error {
	return remove(&p.ProgramConfigs, fmt.Sprint(a.Year), programID, "program")
}

// Merge imports another portfolio: records with a known id are replaced by
// the incoming ones, others are appended. Prices merge by date and programs
// by year. The currency is only taken when the portfolio has none.
type Merge struct{ From Portfolio }

func (a Merge) apply(p *Portfolio) error {
	if p.Currency == "" {
		p.Currency = a.From.Currency
	} else if a.From.Currency != "" && a.From.Currency != p.Currency {
		return fmt.Errorf("cannot merge a portfolio in %s into a portfolio in %s", a.From.Currency, p.Currency)
	}
	for _, g := range a.From.Grants {
		upsert(&p.Grants, g, grantID)
	}
	for _, l := range a.From.Loans {
		upsert(&p.Loans, l, loanID)
	}
	for _, s := range a.From.StockPrices {
		upsert(&p.StockPrices, s, priceID)
	}
	for _, x := range a.From.ShareExchanges {
		upsert(&p.ShareExchanges, x, exchangeID)
	}
	for _, s := range a.From.StockSales {
		upsert(&p.StockSales, s, saleID)
	}
	for _, c := range a.From.ProgramConfigs {
		upsert(&p.ProgramConfigs, c, programID)
	}
	return nil
}

// Replace swaps the whole portfolio for another one.
type Replace struct{ With Portfolio }

func (a Replace) apply(p *Portfolio) error {
	*p = a.With.clone()
	return nil
}

// Clear empties the portfolio, keeping its currency.
type Clear struct{}

func (Clear) apply(p *Portfolio) error {
	*p = Portfolio{Currency: p.Currency}
	return nil
}

// Batch applies several actions in order, all or nothing.
type Batch []Action

func (b Batch) apply(p *Portfolio) error {
	for _, a := range b {
		if err := a.apply(p); err != nil {
			return err
		}
	}
	return nil
}
