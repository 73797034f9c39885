package stockplan

import "testing"

func TestVestedTranches(t *testing.T) {
	g := scenario().Grants[0]

	tests := []struct {
		on   string
		want int
	}{
		{"2023-12-31", 0},
		{"2024-01-01", 1}, // vests at 00:00 on the vest date
		{"2025-06-15", 2},
		{"2027-01-01", 4},
		{"2040-01-01", 4},
	}
	for _, tt := range tests {
		if got := len(VestedTranches(g, d(tt.on))); got != tt.want {
			t.Errorf("len(VestedTranches(%s)) = %d, want %d", tt.on, got, tt.want)
		}
	}
}

func TestVestedTranches_Monotonic(t *testing.T) {
	g := scenario().Grants[0]
	previous := 0
	for on := d("2023-06-01"); on.Before(d("2028-01-01")); on = on.Add(17) {
		n := len(VestedTranches(g, on))
		if n < previous {
			t.Fatalf("VestedTranches(%s) has %d tranches, fewer than the %d of an earlier date", on, n, previous)
		}
		previous = n
	}
}

func TestTotalVestedShares(t *testing.T) {
	grants := []StockGrant{
		scenario().Grants[0],
		newGrant("g2", Free, "2023-01-01", 0, tranche("f1", "2025-01-01", 100, Income)),
	}
	assertQuantity(t, "TotalVestedShares(2025-06-15)", TotalVestedShares(grants, d("2025-06-15")), 600)
	assertQuantity(t, "TotalVestedShares(nil)", TotalVestedShares(nil, d("2025-06-15")), 0)
}

func TestHeldShares(t *testing.T) {
	g := scenario().Grants[0]
	exchanges := []ShareExchange{
		{ID: "x1", Date: d("2024-06-01"), SourceGrantID: "g1", TargetGrantID: "g9", SharesExchanged: Q(100), PricePerShareAtExchange: NO(22)},
		{ID: "x2", Date: d("2024-06-01"), SourceGrantID: "other", SharesExchanged: Q(999), PricePerShareAtExchange: NO(22)},
	}
	sales := []StockSale{
		{ID: "s1", Date: d("2025-03-01"), SourceGrantID: "g1", SharesSold: Q(50), PricePerShare: NO(26), Reason: Voluntary},
	}

	tests := []struct {
		on                    string
		exchanged, sold, held int
	}{
		{"2024-05-31", 0, 0, 250},
		{"2024-06-01", 100, 0, 150},
		{"2025-02-28", 100, 0, 400},
		{"2025-03-01", 100, 50, 350},
	}
	for _, tt := range tests {
		t.Run(tt.on, func(t *testing.T) {
			on := d(tt.on)
			assertQuantity(t, "ExchangedShares", ExchangedShares(exchanges, "g1", on), tt.exchanged)
			assertQuantity(t, "SoldShares", SoldShares(sales, "g1", on), tt.sold)
			assertQuantity(t, "HeldShares", HeldShares(g, exchanges, sales, on), tt.held)
		})
	}
}

func TestHeldShares_ClampedAtZero(t *testing.T) {
	g := scenario().Grants[0]
	sales := []StockSale{
		{ID: "s1", Date: d("2024-02-01"), SourceGrantID: "g1", SharesSold: Q(400), PricePerShare: NO(21), Reason: Voluntary},
	}
	exchanges := []ShareExchange{
		{ID: "x1", Date: d("2024-03-01"), SourceGrantID: "g1", SharesExchanged: Q(300), PricePerShareAtExchange: NO(21)},
	}
	for _, on := range []string{"2023-01-01", "2024-02-01", "2024-03-01", "2025-01-01"} {
		held := HeldShares(g, exchanges, sales, d(on))
		if held.IsNegative() {
			t.Errorf("HeldShares(%s) = %v, want >= 0", on, held)
		}
	}
	assertQuantity(t, "HeldShares(2024-03-01)", HeldShares(g, exchanges, sales, d("2024-03-01")), 0)
}
