package stockplan

import "github.com/etnz/stockplan/date"

// ActiveLoans returns the loans with an active status whose term contains 'on'.
func ActiveLoans(loans []Loan, on date.Date) []Loan {
	var active []Loan
	for _, l := range loans {
		if l.Status == Active && l.Term().Contains(on) {
			active = append(active, l)
		}
	}
	return active
}

// AccruedInterest returns the simple interest accrued on l since the later
// of its origination and January 1st of on's year.
//
// Interest of previous full years is expected to have been rolled into a
// separate interest loan, so only the current partial year accrues here.
func AccruedInterest(l Loan, on date.Date) Money {
	start := date.Max(l.OriginationDate, date.StartOfYear(on.Year()))
	if !on.After(start) {
		return M(0, l.PrincipalAmount.Currency())
	}
	return l.PrincipalAmount.MulRate(l.AnnualInterestRate).Prorate(date.DaysBetween(start, on), date.DaysInYear(on.Year()))
}

// InterestForYear returns the interest l costs over a calendar year, prorated
// to the part of the year within the loan term. Day count is actual/actual.
//
// Only active loans cost interest.
func InterestForYear(l Loan, year int) Money {
	zero := M(0, l.PrincipalAmount.Currency())
	if l.Status != Active {
		return zero
	}
	period := date.YearRange(year).Clip(l.Term())
	if period.IsEmpty() {
		return zero
	}
	// Interest accrues per night: a term ending on maturity does not count
	// the maturity day, a term running through Dec 31 counts it.
	days := date.DaysBetween(period.From, date.Min(l.MaturityDate, date.StartOfYear(year+1)))
	return l.PrincipalAmount.MulRate(l.AnnualInterestRate).Prorate(days, date.DaysInYear(year))
}
