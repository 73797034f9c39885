package stockplan

import (
	"math"
	"testing"
)

func TestProjectFutureValue_NoPrices(t *testing.T) {
	p := scenario()
	p.StockPrices = nil
	if got := ProjectFutureValue(p, R(0.08), 2025, 2030); len(got) != 0 {
		t.Errorf("ProjectFutureValue without prices = %d years, want none", len(got))
	}
}

func TestProjectFutureValue_PriceIndexedOnLatestPrice(t *testing.T) {
	years := ProjectFutureValue(scenario(), R(0.08), 2024, 2027)
	if len(years) != 4 {
		t.Fatalf("len(ProjectFutureValue) = %d, want 4", len(years))
	}
	// the base is the latest price (25 in 2025), even for past years.
	want := []float64{25 / 1.08, 25, 25 * 1.08, 25 * 1.08 * 1.08}
	for i, y := range years {
		assertMoney(t, "ProjectedStockPrice", y.ProjectedStockPrice, math.Round(want[i]*100)/100)
	}
}

func TestProjectFutureValue_Vesting(t *testing.T) {
	years := ProjectFutureValue(scenario(), R(0), 2025, 2028)
	wantVested := []int{500, 750, 1000, 1000}
	wantEvents := []int{1, 1, 1, 0}
	for i, y := range years {
		assertQuantity(t, "VestedShares", y.VestedShares, wantVested[i])
		if len(y.Events) != wantEvents[i] {
			t.Errorf("%d: %d events, want %d", y.Year, len(y.Events), wantEvents[i])
		}
		for _, e := range y.Events {
			if e.Type != VestingEvent || e.Date.Year() != y.Year {
				t.Errorf("%d: unexpected event %+v", y.Year, e)
			}
		}
	}
}

func TestProjectFutureValue_LoanMaturity(t *testing.T) {
	growth := 0.08
	years := ProjectFutureValue(scenario(), R(growth), 2025, 2035)

	owed := 5000 * (1 + 0.04*3653/365.0) // fixed 365 days per year
	price2033 := 25 * math.Pow(1+growth, 8)
	needed := math.Ceil(owed / price2033)

	for _, y := range years {
		var maturities, sales int
		for _, e := range y.Events {
			switch e.Type {
			case LoanMaturityEvent:
				maturities++
				assertMoney(t, "owed at maturity", e.Amount, owed)
			case PlannedSaleEvent:
				sales++
				assertQuantity(t, "planned sale", e.Shares, int(needed))
			}
		}

		switch {
		case y.Year < 2033:
			if maturities != 0 || sales != 0 {
				t.Errorf("%d: %d maturities and %d sales, want none", y.Year, maturities, sales)
			}
			assertMoney(t, "LoansOutstanding", y.LoansOutstanding, 5000)
			assertMoney(t, "AccruedInterest", y.AccruedInterest, 200)
		case y.Year == 2033:
			if maturities != 1 || sales != 1 {
				t.Errorf("%d: %d maturities and %d sales, want 1 and 1", y.Year, maturities, sales)
			}
		default:
			if maturities != 0 || sales != 0 {
				t.Errorf("%d: %d maturities and %d sales, want none", y.Year, maturities, sales)
			}
		}
		if y.Year >= 2033 {
			assertQuantity(t, "HeldShares", y.HeldShares, 1000-int(needed))
			if !y.LoansOutstanding.IsZero() || !y.AccruedInterest.IsZero() {
				t.Errorf("%d: loans %v interest %v, want none after maturity", y.Year, y.LoansOutstanding, y.AccruedInterest)
			}
		}
	}

	// 2032: everything vested, loan still running.
	y := years[2032-2025]
	gross := 1000 * 25 * math.Pow(1+growth, 7)
	assertMoney(t, "GrossValue", y.GrossValue, math.Round(gross))
	assertMoney(t, "NetValue", y.NetValue, math.Round(gross-5000-200))
}

func TestProjectFutureValue_DeductsExchangesAndSales(t *testing.T) {
	p := scenario()
	p.ShareExchanges = []ShareExchange{{ID: "x", Date: d("2025-02-01"), SourceGrantID: "g1", SharesExchanged: Q(100), PricePerShareAtExchange: NO(25)}}
	p.StockSales = []StockSale{{ID: "s", Date: d("2026-02-01"), SourceGrantID: "g1", SharesSold: Q(50), PricePerShare: NO(27), Reason: Voluntary}}
	years := ProjectFutureValue(p, R(0), 2025, 2026)
	assertQuantity(t, "2025 HeldShares", years[0].HeldShares, 400)
	assertQuantity(t, "2026 HeldShares", years[1].HeldShares, 600)
	assertMoney(t, "2026 GrossValue", years[1].GrossValue, 600*25)
}

func TestProjectFutureValue_ZeroPrice(t *testing.T) {
	p := scenario()
	p.StockPrices = []StockPrice{price("2025-01-01", 0)}
	years := ProjectFutureValue(p, R(0.08), 2033, 2033)
	if len(years) != 1 {
		t.Fatalf("len(ProjectFutureValue) = %d, want 1", len(years))
	}
	for _, e := range years[0].Events {
		if e.Type == PlannedSaleEvent && !e.Shares.IsZero() {
			t.Errorf("planned sale at a zero price = %v shares, want 0", e.Shares)
		}
	}
	assertQuantity(t, "HeldShares", years[0].HeldShares, 1000)
}

func TestProjectFutureValue_IgnoresInactiveLoans(t *testing.T) {
	p := scenario()
	p.Loans[0].Status = Refinanced
	for _, y := range ProjectFutureValue(p, R(0.05), 2030, 2034) {
		for _, e := range y.Events {
			if e.Type != VestingEvent {
				t.Errorf("%d: unexpected %s event for a refinanced loan", y.Year, e.Type)
			}
		}
		assertQuantity(t, "HeldShares", y.HeldShares, 1000)
	}
}
