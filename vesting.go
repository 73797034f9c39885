package stockplan

import "github.com/etnz/stockplan/date"

// VestedTranches returns the tranches of g vested on 'on', in schedule order.
func VestedTranches(g StockGrant, on date.Date) []VestingTranche {
	var vested []VestingTranche
	for _, v := range g.VestingSchedule {
		if v.IsVested(on) {
			vested = append(vested, v)
		}
	}
	return vested
}

// VestedShares returns the number of shares of g vested on 'on'.
func VestedShares(g StockGrant, on date.Date) Quantity {
	var total Quantity
	for _, v := range VestedTranches(g, on) {
		total = total.Add(v.NumberOfShares)
	}
	return total
}

// TotalVestedShares returns the number of vested shares across all grants.
func TotalVestedShares(grants []StockGrant, on date.Date) Quantity {
	var total Quantity
	for _, g := range grants {
		total = total.Add(VestedShares(g, on))
	}
	return total
}

// ExchangedShares returns the number of shares exchanged out of grant grantID up to 'on'.
func ExchangedShares(exchanges []ShareExchange, grantID string, on date.Date) Quantity {
	var total Quantity
	for _, x := range exchanges {
		if x.SourceGrantID == grantID && !x.Date.After(on) {
			total = total.Add(x.SharesExchanged)
		}
	}
	return total
}

// SoldShares returns the number of shares sold out of grant grantID up to 'on'.
func SoldShares(sales []StockSale, grantID string, on date.Date) Quantity {
	var total Quantity
	for _, s := range sales {
		if s.SourceGrantID == grantID && !s.Date.After(on) {
			total = total.Add(s.SharesSold)
		}
	}
	return total
}

// HeldShares returns the vested shares of g still held on 'on'.
//
// Exchanging or selling more than what is vested is tolerated: the result
// is clamped at zero.
func HeldShares(g StockGrant, exchanges []ShareExchange, sales []StockSale, on date.Date) Quantity {
	held := VestedShares(g, on).Sub(ExchangedShares(exchanges, g.ID, on)).Sub(SoldShares(sales, g.ID, on))
	return held.AtLeastZero()
}
