package stockplan

import "github.com/etnz/stockplan/date"

// GrantValue is the share position of a single grant.
type GrantValue struct {
	GrantID         string
	Type            GrantType
	VestedShares    Quantity
	UnvestedShares  Quantity
	ExchangedShares Quantity
	SoldShares      Quantity
	HeldShares      Quantity
	ShareValue      Money
}

// LoanValue is the debt of a single active loan.
type LoanValue struct {
	LoanID                string
	Type                  LoanType
	Principal             Money
	AnnualInterest        Money // nominal, for display only
	AccruedInterestToDate Money
	MaturityDate          date.Date
}

// NetValueReport is the valuation of a portfolio on a given date.
type NetValueReport struct {
	Date       date.Date
	Currency   string
	StockPrice *Money // nil when no price is known on or before Date

	ByGrant []GrantValue
	ByLoan  []LoanValue

	TotalVestedShares    Quantity
	TotalUnvestedShares  Quantity
	TotalExchangedShares Quantity
	TotalSoldShares      Quantity
	TotalHeldShares      Quantity
	TotalRealizedGains   Money

	GrossShareValue      Money
	TotalLoanPrincipal   Money
	TotalAccruedInterest Money
	NetValue             Money
	PotentialNetValue    Money
}

// CalculateNetValue computes the valuation of p on 'on'.
//
// NetValue deducts the loans active on 'on'. PotentialNetValue values every
// unvested share as if vested today and deducts the principal of every
// loan with an active status whatever its dates.
func CalculateNetValue(p Portfolio, on date.Date) NetValueReport {
	r := NetValueReport{
		Date:                 on,
		Currency:             p.Currency,
		ByGrant:              []GrantValue{},
		ByLoan:               []LoanValue{},
		TotalRealizedGains:   p.zero(),
		GrossShareValue:      p.zero(),
		TotalLoanPrincipal:   p.zero(),
		TotalAccruedInterest: p.zero(),
	}

	price := p.zero()
	if v, ok := PriceOnDate(p.StockPrices, on); ok {
		v = v.In(p.Currency)
		r.StockPrice = &v
		price = v
	}

	for _, g := range p.Grants {
		vested := VestedShares(g, on)
		held := HeldShares(g, p.ShareExchanges, p.StockSales, on)
		gv := GrantValue{
			GrantID:         g.ID,
			Type:            g.Type,
			VestedShares:    vested,
			UnvestedShares:  g.TotalShares.Sub(vested),
			ExchangedShares: ExchangedShares(p.ShareExchanges, g.ID, on),
			SoldShares:      SoldShares(p.StockSales, g.ID, on),
			HeldShares:      held,
			ShareValue:      price.Mul(held),
		}
		r.ByGrant = append(r.ByGrant, gv)

		r.TotalVestedShares = r.TotalVestedShares.Add(gv.VestedShares)
		r.TotalUnvestedShares = r.TotalUnvestedShares.Add(gv.UnvestedShares)
		r.TotalExchangedShares = r.TotalExchangedShares.Add(gv.ExchangedShares)
		r.TotalSoldShares = r.TotalSoldShares.Add(gv.SoldShares)
		r.TotalHeldShares = r.TotalHeldShares.Add(gv.HeldShares)
	}

	for _, s := range p.StockSales {
		if !s.Date.After(on) {
			r.TotalRealizedGains = r.TotalRealizedGains.Add(s.Gain())
		}
	}

	for _, l := range ActiveLoans(p.Loans, on) {
		lv := LoanValue{
			LoanID:                l.ID,
			Type:                  l.Type,
			Principal:             l.PrincipalAmount.In(p.Currency),
			AnnualInterest:        l.PrincipalAmount.MulRate(l.AnnualInterestRate).In(p.Currency),
			AccruedInterestToDate: AccruedInterest(l, on).In(p.Currency),
			MaturityDate:          l.MaturityDate,
		}
		r.ByLoan = append(r.ByLoan, lv)
		r.TotalLoanPrincipal = r.TotalLoanPrincipal.Add(lv.Principal)
		r.TotalAccruedInterest = r.TotalAccruedInterest.Add(lv.AccruedInterestToDate)
	}

	r.GrossShareValue = price.Mul(r.TotalHeldShares)
	r.NetValue = r.GrossShareValue.Sub(r.TotalLoanPrincipal).Sub(r.TotalAccruedInterest)

	allDebt := p.zero()
	for _, l := range p.Loans {
		if l.Status == Active {
			allDebt = allDebt.Add(l.PrincipalAmount)
		}
	}
	r.PotentialNetValue = price.Mul(r.TotalHeldShares.Add(r.TotalUnvestedShares)).Sub(allDebt)
	return r
}
