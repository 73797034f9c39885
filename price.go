package stockplan

import (
	"errors"
	"fmt"

	"github.com/etnz/stockplan/date"
)

// StockPrice is the price of one share on a given day.
type StockPrice struct {
	Date          date.Date `json:"date"`
	PricePerShare Money     `json:"pricePerShare"`
}

// Validate returns all the problems found in the price.
func (p StockPrice) Validate() error {
	var errs []error
	if p.Date.IsZero() {
		errs = append(errs, errors.New("missing date"))
	}
	if p.PricePerShare.IsNegative() {
		errs = append(errs, fmt.Errorf("price must not be negative, got %v", p.PricePerShare))
	}
	return errors.Join(errs...)
}

// priceHistory indexes prices by date. For duplicate dates the last one in
// input order wins.
func priceHistory(prices []StockPrice) *date.History[Money] {
	h := new(date.History[Money])
	for _, p := range prices {
		h.Append(p.Date, p.PricePerShare)
	}
	return h
}

// PriceOnDate returns the latest known price on or before 'on'.
// It returns false if there is no such price. Prices are never interpolated.
func PriceOnDate(prices []StockPrice, on date.Date) (Money, bool) {
	return priceHistory(prices).ValueAsOf(on)
}

// LatestPrice returns the most recent price entry, or false if there are no prices at all.
func LatestPrice(prices []StockPrice) (StockPrice, bool) {
	h := priceHistory(prices)
	if h.Len() == 0 {
		return StockPrice{}, false
	}
	on, price := h.Latest()
	return StockPrice{Date: on, PricePerShare: price}, true
}
