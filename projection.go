package stockplan

import (
	"slices"

	"github.com/etnz/stockplan/date"
	"github.com/shopspring/decimal"
)

// EventType is the kind of a projected event.
type EventType string

const (
	VestingEvent      EventType = "vesting"
	LoanMaturityEvent EventType = "loan_maturity"
	PlannedSaleEvent  EventType = "planned_sale"
)

// ProjectionEvent is something expected to happen during a projected year.
type ProjectionEvent struct {
	Type    EventType
	Date    date.Date
	GrantID string // vesting only
	LoanID  string // loan maturity and planned sale
	Shares  Quantity
	Amount  Money // value of the vested or sold shares, amount owed at maturity
}

// YearProjection is the simulated state of the portfolio at the end of a year.
type YearProjection struct {
	Year                int
	ProjectedStockPrice Money // rounded to 2 decimals
	VestedShares        Quantity
	HeldShares          Quantity
	LoansOutstanding    Money
	AccruedInterest     Money // nominal yearly interest, rounded to 2 decimals
	GrossValue          Money // rounded to units
	NetValue            Money // rounded to units
	Events              []ProjectionEvent
}

// daysPerYearAtMaturity is the fixed day count used to estimate what is owed
// at maturity. It is deliberately not actual/actual.
const daysPerYearAtMaturity = 365

// ProjectFutureValue simulates the portfolio year by year from 'from' to 'to'
// included, the stock price growing by 'growth' every year.
//
// Every year is indexed on the latest known price. Loans maturing in a year
// are assumed to be repaid by selling just enough shares at that year's
// projected price, and those shares are gone for all the following years.
//
// It returns an empty projection when there is no price at all.
func ProjectFutureValue(p Portfolio, growth Rate, from, to int) []YearProjection {
	years := []YearProjection{}
	base, ok := LatestPrice(p.StockPrices)
	if !ok {
		return years
	}

	var planned Quantity // cumulative planned sales
	for year := from; year <= to; year++ {
		price := projectPrice(base, growth, year).In(p.Currency)
		end := date.EndOfYear(year)
		y := YearProjection{Year: year, Events: []ProjectionEvent{}}

		var vestings []ProjectionEvent
		for _, g := range p.Grants {
			for _, v := range g.VestingSchedule {
				if v.VestDate.Year() != year {
					continue
				}
				vestings = append(vestings, ProjectionEvent{
					Type:    VestingEvent,
					Date:    v.VestDate,
					GrantID: g.ID,
					Shares:  v.NumberOfShares,
					Amount:  price.Mul(v.NumberOfShares),
				})
			}
		}
		slices.SortStableFunc(vestings, func(a, b ProjectionEvent) int { return a.Date.Compare(b.Date) })
		y.Events = append(y.Events, vestings...)

		for _, l := range p.Loans {
			if l.Status != Active || l.MaturityDate.Year() != year {
				continue
			}
			owed := owedAtMaturity(l).In(p.Currency)
			var needed Quantity
			if price.IsPositive() {
				needed = owed.DivPrice(price).Ceil()
			}
			planned = planned.Add(needed)
			y.Events = append(y.Events,
				ProjectionEvent{Type: LoanMaturityEvent, Date: l.MaturityDate, LoanID: l.ID, Amount: owed},
				ProjectionEvent{Type: PlannedSaleEvent, Date: l.MaturityDate, LoanID: l.ID, Shares: needed, Amount: price.Mul(needed)},
			)
		}

		var exchanged, sold Quantity
		for _, g := range p.Grants {
			exchanged = exchanged.Add(ExchangedShares(p.ShareExchanges, g.ID, end))
			sold = sold.Add(SoldShares(p.StockSales, g.ID, end))
		}
		y.VestedShares = TotalVestedShares(p.Grants, end)
		y.HeldShares = y.VestedShares.Sub(exchanged).Sub(sold).Sub(planned).AtLeastZero()

		outstanding, interest := p.zero(), p.zero()
		for _, l := range ActiveLoans(p.Loans, end) {
			outstanding = outstanding.Add(l.PrincipalAmount)
			interest = interest.Add(l.PrincipalAmount.MulRate(l.AnnualInterestRate))
		}
		gross := price.Mul(y.HeldShares)
		net := gross.Sub(outstanding).Sub(interest)

		y.ProjectedStockPrice = price.Round(2)
		y.LoansOutstanding = outstanding
		y.AccruedInterest = interest.Round(2)
		y.GrossValue = gross.Round(0)
		y.NetValue = net.Round(0)
		years = append(years, y)
	}
	return years
}

// projectPrice returns base * (1+growth)^(year - base year).
func projectPrice(base StockPrice, growth Rate, year int) Money {
	n := year - base.Date.Year()
	if n == 0 {
		return base.PricePerShare
	}
	onePlus := decimal.NewFromInt(1).Add(growth.value)
	if onePlus.IsZero() {
		// a -100% growth wipes the price out, and has no past.
		return M(0, base.PricePerShare.Currency())
	}
	factor, err := onePlus.PowInt32(int32(n))
	if err != nil {
		return M(0, base.PricePerShare.Currency())
	}
	return base.PricePerShare.MulRate(Rate{value: factor})
}

// owedAtMaturity estimates principal plus simple interest over the whole
// term, counting 365 days per year.
func owedAtMaturity(l Loan) Money {
	days := date.DaysBetween(l.OriginationDate, l.MaturityDate)
	interest := l.PrincipalAmount.MulRate(l.AnnualInterestRate).Prorate(days, daysPerYearAtMaturity)
	return l.PrincipalAmount.Add(interest)
}
