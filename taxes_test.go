package stockplan

import "testing"

func TestIncomeTaxableEvents(t *testing.T) {
	p := scenario()
	events := IncomeTaxableEvents(p, d("2025-06-15"))
	if len(events) != 2 {
		t.Fatalf("len(IncomeTaxableEvents) = %d, want 2", len(events))
	}
	// valued at the price of the vest date, not of the report date.
	assertMoney(t, "events[0].TotalValue", events[0].TotalValue, 250*20)
	assertMoney(t, "events[1].TotalValue", events[1].TotalValue, 250*25)
	assertMoney(t, "TotalValue(events)", TotalValue(events), 250*20+250*25)

	if got := IncomeTaxableEvents(p, d("2023-12-31")); len(got) != 0 {
		t.Errorf("IncomeTaxableEvents before any vesting = %d events, want 0", len(got))
	}
}

func TestIncomeTaxableEvents_NeverNegative(t *testing.T) {
	p := scenario()
	p.StockPrices = nil // no price at all counts as zero.
	for _, e := range IncomeTaxableEvents(p, d("2030-01-01")) {
		if e.TotalValue.IsNegative() {
			t.Errorf("income event %s = %v, want >= 0", e.TrancheID, e.TotalValue)
		}
		if !e.TotalValue.IsZero() {
			t.Errorf("income event %s without price = %v, want 0", e.TrancheID, e.TotalValue)
		}
	}
}

func TestCapitalGainsTaxableEvents(t *testing.T) {
	p := scenario()
	p.StockPrices = append(p.StockPrices, price("2026-01-01", 30))
	events := CapitalGainsTaxableEvents(p, d("2026-06-01"))
	if len(events) != 1 {
		t.Fatalf("len(CapitalGainsTaxableEvents) = %d, want 1", len(events))
	}
	assertMoney(t, "events[0].TotalValue", events[0].TotalValue, 250*(30-10))
	if events[0].TrancheID != "t3" || events[0].TaxTreatment != CapitalGains {
		t.Errorf("events[0] = %+v, want tranche t3", events[0])
	}
}

func TestCapitalGainsTaxableEvents_CanBeNegative(t *testing.T) {
	p := scenario()
	p.StockPrices = append(p.StockPrices, price("2026-01-01", 4))
	events := CapitalGainsTaxableEvents(p, d("2026-06-01"))
	if len(events) != 1 {
		t.Fatalf("len(CapitalGainsTaxableEvents) = %d, want 1", len(events))
	}
	assertMoney(t, "events[0].TotalValue", events[0].TotalValue, 250*(4-10))
}

func TestTaxableEvents_SortedByDate(t *testing.T) {
	p := Portfolio{
		Grants: []StockGrant{
			newGrant("late", Purchase, "2023-01-01", 10, tranche("a", "2025-03-01", 10, Income), tranche("b", "2024-03-01", 10, Income)),
			newGrant("early", Free, "2023-01-01", 0, tranche("c", "2024-01-01", 10, Income), tranche("d", "2025-03-01", 10, Income)),
		},
	}
	events := IncomeTaxableEvents(p, d("2026-01-01"))
	want := []string{"c", "b", "a", "d"} // stable for equal dates
	if len(events) != len(want) {
		t.Fatalf("len(events) = %d, want %d", len(events), len(want))
	}
	for i, e := range events {
		if e.TrancheID != want[i] {
			t.Errorf("events[%d] = %s, want %s", i, e.TrancheID, want[i])
		}
	}
}

func TestTaxableEvents_IgnoreExchangesAndSales(t *testing.T) {
	p := scenario()
	p.ShareExchanges = []ShareExchange{{ID: "x", Date: d("2024-06-01"), SourceGrantID: "g1", SharesExchanged: Q(250), PricePerShareAtExchange: NO(22)}}
	p.StockSales = []StockSale{{ID: "s", Date: d("2025-02-01"), SourceGrantID: "g1", SharesSold: Q(250), PricePerShare: NO(25), Reason: Voluntary}}
	if got := IncomeTaxableEvents(p, d("2025-06-15")); len(got) != 2 {
		t.Errorf("len(IncomeTaxableEvents) = %d, want 2", len(got))
	}
	if got := CapitalGainsTaxableEvents(p, d("2025-06-15")); len(got) != 0 {
		t.Errorf("len(CapitalGainsTaxableEvents) = %d, want 0", len(got))
	}
}
