package stockplan

import (
	"errors"
	"fmt"

	"github.com/etnz/stockplan/date"
)

// ShareExchange transfers vested shares from a grant as a down payment toward
// a new purchase grant. It is not a taxable event.
type ShareExchange struct {
	ID                      string    `json:"id"`
	Date                    date.Date `json:"date"`
	SourceGrantID           string    `json:"sourceGrantId"`
	TargetGrantID           string    `json:"targetGrantId"`
	SharesExchanged         Quantity  `json:"sharesExchanged"`
	PricePerShareAtExchange Money     `json:"pricePerShareAtExchange"`
	ValueAtExchange         Money     `json:"valueAtExchange"`
}

// Validate returns all the problems found in the exchange.
//
// ValueAtExchange is by convention shares times price, it is not checked.
func (x ShareExchange) Validate() error {
	var errs []error
	if x.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if x.Date.IsZero() {
		errs = append(errs, errors.New("missing date"))
	}
	if x.SourceGrantID == "" {
		errs = append(errs, errors.New("missing source grant"))
	}
	if !x.SharesExchanged.IsPositive() {
		errs = append(errs, fmt.Errorf("shares exchanged must be positive, got %v", x.SharesExchanged))
	}
	if !x.PricePerShareAtExchange.IsPositive() {
		errs = append(errs, fmt.Errorf("price at exchange must be positive, got %v", x.PricePerShareAtExchange))
	}
	return errors.Join(errs...)
}

// SaleReason tells why shares were sold.
type SaleReason string

const (
	LoanPayoff SaleReason = "loan_payoff"
	TaxPayment SaleReason = "tax_payment"
	Voluntary  SaleReason = "voluntary"
)

func (r SaleReason) Valid() bool {
	switch r {
	case LoanPayoff, TaxPayment, Voluntary:
		return true
	}
	return false
}

// StockSale removes shares from a grant. It is always a taxable event.
type StockSale struct {
	ID            string     `json:"id"`
	Date          date.Date  `json:"date"`
	SourceGrantID string     `json:"sourceGrantId"`
	SharesSold    Quantity   `json:"sharesSold"`
	PricePerShare Money      `json:"pricePerShare"`
	TotalProceeds Money      `json:"totalProceeds"`
	CostBasis     Money      `json:"costBasis"` // per share
	Reason        SaleReason `json:"reason"`
	RelatedLoanID string     `json:"relatedLoanId,omitempty"`
}

// Gain returns the realized capital gain (or loss) of the sale.
func (s StockSale) Gain() Money {
	return s.PricePerShare.Sub(s.CostBasis).Mul(s.SharesSold)
}

// Validate returns all the problems found in the sale.
func (s StockSale) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if s.Date.IsZero() {
		errs = append(errs, errors.New("missing date"))
	}
	if s.SourceGrantID == "" {
		errs = append(errs, errors.New("missing source grant"))
	}
	if !s.SharesSold.IsPositive() {
		errs = append(errs, fmt.Errorf("shares sold must be positive, got %v", s.SharesSold))
	}
	if !s.PricePerShare.IsPositive() {
		errs = append(errs, fmt.Errorf("price per share must be positive, got %v", s.PricePerShare))
	}
	if s.CostBasis.IsNegative() {
		errs = append(errs, fmt.Errorf("cost basis must not be negative, got %v", s.CostBasis))
	}
	if !s.Reason.Valid() {
		errs = append(errs, fmt.Errorf("invalid sale reason %q", s.Reason))
	}
	return errors.Join(errs...)
}
