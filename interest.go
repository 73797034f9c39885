package stockplan

// LoanInterest is the interest of one loan over a year.
type LoanInterest struct {
	LoanID   string
	Type     LoanType
	Interest Money
}

// YearlyInterestExpense is the interest cost of a calendar year.
type YearlyInterestExpense struct {
	Year             int
	TotalInterest    Money
	DeductibleInYear int // interest of year Y is deductible in Y+1
	Loans            []LoanInterest
}

// InterestExpenseByYear returns the interest expense of every year from
// 'from' to 'to' included. Loans costing nothing in a year are left out of
// that year's breakdown.
func InterestExpenseByYear(loans []Loan, from, to int) []YearlyInterestExpense {
	years := []YearlyInterestExpense{}
	for year := from; year <= to; year++ {
		y := YearlyInterestExpense{
			Year:             year,
			DeductibleInYear: year + 1,
			Loans:            []LoanInterest{},
		}
		for _, l := range loans {
			interest := InterestForYear(l, year)
			if interest.IsZero() {
				continue
			}
			y.TotalInterest = y.TotalInterest.Add(interest)
			y.Loans = append(y.Loans, LoanInterest{LoanID: l.ID, Type: l.Type, Interest: interest})
		}
		years = append(years, y)
	}
	return years
}
