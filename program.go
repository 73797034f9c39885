package stockplan

import (
	"errors"
	"fmt"

	"github.com/etnz/stockplan/date"
	"github.com/google/uuid"
)

// VestingTemplate describes one tranche of a program's vesting schedule.
type VestingTemplate struct {
	YearsAfterGrant int          `json:"yearsAfterGrant"`
	Fraction        Rate         `json:"fraction"`
	TaxTreatment    TaxTreatment `json:"taxTreatment"`
}

// ProgramConfig is the template of a yearly employee stock program.
//
// Valuation never reads it: it only serves to create concrete grants and loans.
type ProgramConfig struct {
	Year              int                             `json:"year"`
	InterestRate      Rate                            `json:"interestRate"`
	LoanTermYears     int                             `json:"loanTermYears"`
	DownPaymentRate   Rate                            `json:"downPaymentRate"`
	FreeShareRatio    Rate                            `json:"freeShareRatio"`
	CatchUpShareRatio Rate                            `json:"catchUpShareRatio"`
	VestingTemplates  map[GrantType][]VestingTemplate `json:"vestingTemplates"`
}

// Validate returns all the problems found in the program.
func (c ProgramConfig) Validate() error {
	var errs []error
	if c.Year <= 0 {
		errs = append(errs, fmt.Errorf("invalid program year %d", c.Year))
	}
	if c.InterestRate.IsNegative() {
		errs = append(errs, fmt.Errorf("interest rate must not be negative, got %v", c.InterestRate))
	}
	if c.LoanTermYears <= 0 {
		errs = append(errs, fmt.Errorf("loan term must be positive, got %d years", c.LoanTermYears))
	}
	if c.DownPaymentRate.IsNegative() || c.DownPaymentRate.GreaterThan(R(1)) {
		errs = append(errs, fmt.Errorf("down payment must be between 0%% and 100%%, got %v", c.DownPaymentRate))
	}
	if c.FreeShareRatio.IsNegative() || c.CatchUpShareRatio.IsNegative() {
		errs = append(errs, errors.New("share ratios must not be negative"))
	}
	if len(c.VestingTemplates[Purchase]) == 0 {
		errs = append(errs, errors.New("missing vesting template for purchase grants"))
	}
	for t, tranches := range c.VestingTemplates {
		if !t.Valid() {
			errs = append(errs, fmt.Errorf("vesting template for invalid grant type %q", t))
			continue
		}
		var sum Rate
		for _, v := range tranches {
			if !v.TaxTreatment.Valid() {
				errs = append(errs, fmt.Errorf("%s template: invalid tax treatment %q", t, v.TaxTreatment))
			}
			if !v.Fraction.value.IsPositive() {
				errs = append(errs, fmt.Errorf("%s template: fraction must be positive, got %v", t, v.Fraction))
			}
			sum.value = sum.value.Add(v.Fraction.value)
		}
		if !sum.Equal(R(1)) {
			errs = append(errs, fmt.Errorf("%s template: fractions add up to %v, want 100%%", t, sum))
		}
	}
	return errors.Join(errs...)
}

// Enrollment is the set of records created by a program enrollment.
type Enrollment struct {
	Grants []StockGrant
	Loans  []Loan
}

// Enroll applies the program to a purchase of 'shares' at 'price' on grantDate.
//
// It creates the purchase grant, the free and catch-up grants proportional to
// it, and the purchase loan financing what the down payment does not cover.
func (c ProgramConfig) Enroll(grantDate date.Date, shares Quantity, price Money) (Enrollment, error) {
	if err := c.Validate(); err != nil {
		return Enrollment{}, fmt.Errorf("invalid program %d: %w", c.Year, err)
	}
	if !shares.IsPositive() {
		return Enrollment{}, fmt.Errorf("enrollment needs a positive number of shares, got %v", shares)
	}
	if price.IsNegative() {
		return Enrollment{}, fmt.Errorf("enrollment needs a non negative price, got %v", price)
	}

	var e Enrollment
	purchase := c.grant(Purchase, grantDate, shares, price, "")
	e.Grants = append(e.Grants, purchase)

	extras := []struct {
		typ   GrantType
		ratio Rate
	}{
		{Free, c.FreeShareRatio},
		{CatchUp, c.CatchUpShareRatio},
	}
	for _, x := range extras {
		n := shares.Scale(x.ratio).Floor()
		if !n.IsPositive() {
			continue
		}
		e.Grants = append(e.Grants, c.grant(x.typ, grantDate, n, M(0, price.Currency()), purchase.ID))
	}

	principal := price.Mul(shares).MulRate(c.DownPaymentRate.Complement())
	if principal.IsPositive() {
		e.Loans = append(e.Loans, Loan{
			ID:                 uuid.NewString(),
			Type:               PurchaseLoan,
			PrincipalAmount:    principal,
			AnnualInterestRate: c.InterestRate,
			OriginationDate:    grantDate,
			MaturityDate:       grantDate.AddYears(c.LoanTermYears),
			Status:             Active,
			RelatedGrantID:     purchase.ID,
		})
	}
	return e, nil
}

// grant builds a grant of type t, its schedule taken from the program templates.
// Grant types without a template vest like purchase grants.
func (c ProgramConfig) grant(t GrantType, on date.Date, shares Quantity, price Money, related string) StockGrant {
	templates, ok := c.VestingTemplates[t]
	if !ok {
		templates = c.VestingTemplates[Purchase]
	}
	g := StockGrant{
		ID:                   uuid.NewString(),
		Type:                 t,
		GrantDate:            on,
		TotalShares:          shares,
		PricePerShareAtGrant: price,
		RelatedGrantID:       related,
	}
	remaining := shares
	for i, v := range templates {
		n := shares.Scale(v.Fraction).Floor()
		if i == len(templates)-1 {
			// the last tranche takes the rounding leftovers so the schedule adds up.
			n = remaining
		}
		remaining = remaining.Sub(n)
		if !n.IsPositive() {
			continue
		}
		g.VestingSchedule = append(g.VestingSchedule, VestingTranche{
			ID:             uuid.NewString(),
			VestDate:       on.AddYears(v.YearsAfterGrant),
			NumberOfShares: n,
			TaxTreatment:   v.TaxTreatment,
		})
	}
	return g
}
