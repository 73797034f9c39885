package stockplan

import (
	"math"
	"testing"

	"github.com/etnz/stockplan/date"
)

// d is a helper for test to create dates from const
func d(s string) date.Date { return date.MustParse(s) }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

func tranche(id, on string, shares int, treatment TaxTreatment) VestingTranche {
	return VestingTranche{ID: id, VestDate: d(on), NumberOfShares: Q(shares), TaxTreatment: treatment}
}

func newGrant(id string, typ GrantType, on string, price float64, tranches ...VestingTranche) StockGrant {
	g := StockGrant{
		ID:                   id,
		Type:                 typ,
		GrantDate:            d(on),
		PricePerShareAtGrant: NO(price),
		VestingSchedule:      tranches,
	}
	g.TotalShares = g.ScheduledShares()
	return g
}

func newLoan(id string, principal, rate float64, origination, maturity string) Loan {
	return Loan{
		ID:                 id,
		Type:               PurchaseLoan,
		PrincipalAmount:    NO(principal),
		AnnualInterestRate: R(rate),
		OriginationDate:    d(origination),
		MaturityDate:       d(maturity),
		Status:             Active,
	}
}

func price(on string, v float64) StockPrice {
	return StockPrice{Date: d(on), PricePerShare: NO(v)}
}

// scenario is the reference portfolio: one purchase grant vesting yearly,
// one ten years loan and two prices.
func scenario() Portfolio {
	return Portfolio{
		Grants: []StockGrant{
			newGrant("g1", Purchase, "2023-01-01", 10,
				tranche("t1", "2024-01-01", 250, Income),
				tranche("t2", "2025-01-01", 250, Income),
				tranche("t3", "2026-01-01", 250, CapitalGains),
				tranche("t4", "2027-01-01", 250, NoTax),
			),
		},
		Loans: []Loan{
			newLoan("l1", 5000, 0.04, "2023-01-01", "2033-01-01"),
		},
		StockPrices: []StockPrice{
			price("2024-01-01", 20),
			price("2025-01-01", 25),
		},
	}
}

// assertMoney checks that got is within a cent of want.
func assertMoney(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if math.Abs(got.AsFloat()-want) > 0.005 {
		t.Errorf("%s = %v, want %.2f", name, got, want)
	}
}

// assertQuantity checks that got is exactly want.
func assertQuantity(t *testing.T, name string, got Quantity, want int) {
	t.Helper()
	if !got.Equal(Q(want)) {
		t.Errorf("%s = %v, want %d", name, got, want)
	}
}
