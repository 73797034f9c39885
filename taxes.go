package stockplan

import (
	"slices"

	"github.com/etnz/stockplan/date"
)

// TaxableEvent is a vested tranche that must be declared.
type TaxableEvent struct {
	Date         date.Date
	GrantID      string
	GrantType    GrantType
	TrancheID    string
	TaxTreatment TaxTreatment
	Shares       Quantity
	PriceAtVest  Money // zero when no price is known at vest date
	CostBasis    Money // price per share at grant
	TotalValue   Money
}

// IncomeTaxableEvents lists the tranches taxed as income vested up to upTo.
// Their value is the shares at their price on the vest date.
func IncomeTaxableEvents(p Portfolio, upTo date.Date) []TaxableEvent {
	return taxableEvents(p, upTo, Income, func(e TaxableEvent) Money {
		return e.PriceAtVest.Mul(e.Shares)
	})
}

// CapitalGainsTaxableEvents lists the tranches taxed as capital gains vested
// up to upTo. Their value is the gain over the grant price: it can be negative.
func CapitalGainsTaxableEvents(p Portfolio, upTo date.Date) []TaxableEvent {
	return taxableEvents(p, upTo, CapitalGains, func(e TaxableEvent) Money {
		return e.PriceAtVest.Sub(e.CostBasis).Mul(e.Shares)
	})
}

// taxableEvents collects tranches of a given treatment. Exchanges and sales
// are never part of it.
func taxableEvents(p Portfolio, upTo date.Date, treatment TaxTreatment, value func(TaxableEvent) Money) []TaxableEvent {
	prices := priceHistory(p.StockPrices)
	events := []TaxableEvent{}
	for _, g := range p.Grants {
		for _, v := range VestedTranches(g, upTo) {
			if v.TaxTreatment != treatment {
				continue
			}
			price, ok := prices.ValueAsOf(v.VestDate)
			if !ok {
				price = p.zero()
			}
			e := TaxableEvent{
				Date:         v.VestDate,
				GrantID:      g.ID,
				GrantType:    g.Type,
				TrancheID:    v.ID,
				TaxTreatment: v.TaxTreatment,
				Shares:       v.NumberOfShares,
				PriceAtVest:  price.In(p.Currency),
				CostBasis:    g.PricePerShareAtGrant.In(p.Currency),
			}
			e.TotalValue = value(e)
			events = append(events, e)
		}
	}
	slices.SortStableFunc(events, func(a, b TaxableEvent) int { return a.Date.Compare(b.Date) })
	return events
}

// TotalValue sums the value of events.
func TotalValue(events []TaxableEvent) Money {
	var total Money
	for _, e := range events {
		total = total.Add(e.TotalValue)
	}
	return total
}
