package stockplan

import (
	"errors"
	"fmt"

	"github.com/etnz/stockplan/date"
)

// LoanType is the purpose of a loan.
type LoanType string

const (
	PurchaseLoan LoanType = "purchase"
	TaxLoan      LoanType = "tax"
	InterestLoan LoanType = "interest"
)

func (t LoanType) Valid() bool {
	switch t {
	case PurchaseLoan, TaxLoan, InterestLoan:
		return true
	}
	return false
}

// LoanStatus is authoritative: nothing in this package changes it, and a
// loan past its maturity date stays active until told otherwise.
type LoanStatus string

const (
	Active     LoanStatus = "active"
	Refinanced LoanStatus = "refinanced"
	PaidOff    LoanStatus = "paid_off"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case Active, Refinanced, PaidOff:
		return true
	}
	return false
}

// Loan funds a grant purchase, its taxes, or a previous loan's interest.
type Loan struct {
	ID                 string     `json:"id"`
	Type               LoanType   `json:"type"`
	PrincipalAmount    Money      `json:"principalAmount"`
	AnnualInterestRate Rate       `json:"annualInterestRate"`
	OriginationDate    date.Date  `json:"originationDate"`
	MaturityDate       date.Date  `json:"maturityDate"`
	Status             LoanStatus `json:"status"`
	RelatedGrantID     string     `json:"relatedGrantId,omitempty"`
	ParentLoanID       string     `json:"parentLoanId,omitempty"`
	RefinancedFromID   string     `json:"refinancedFromId,omitempty"`
	Notes              string     `json:"notes,omitempty"`
}

// Term returns the loan life, both boundaries included.
func (l Loan) Term() date.Range { return date.NewRange(l.OriginationDate, l.MaturityDate) }

// Validate returns all the problems found in the loan.
func (l Loan) Validate() error {
	var errs []error
	if l.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if !l.Type.Valid() {
		errs = append(errs, fmt.Errorf("invalid loan type %q", l.Type))
	}
	if !l.Status.Valid() {
		errs = append(errs, fmt.Errorf("invalid loan status %q", l.Status))
	}
	if !l.PrincipalAmount.IsPositive() {
		errs = append(errs, fmt.Errorf("principal must be positive, got %v", l.PrincipalAmount))
	}
	if l.AnnualInterestRate.IsNegative() {
		errs = append(errs, fmt.Errorf("interest rate must not be negative, got %v", l.AnnualInterestRate))
	}
	if l.OriginationDate.IsZero() || l.MaturityDate.IsZero() {
		errs = append(errs, errors.New("missing origination or maturity date"))
	} else if !l.MaturityDate.After(l.OriginationDate) {
		errs = append(errs, fmt.Errorf("maturity %s must be after origination %s", l.MaturityDate, l.OriginationDate))
	}
	return errors.Join(errs...)
}
