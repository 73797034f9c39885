package stockplan

import (
	"errors"
	"fmt"

	"github.com/etnz/stockplan/date"
)

// GrantType is the kind of stock grant.
type GrantType string

const (
	Purchase GrantType = "purchase"
	Free     GrantType = "free"
	CatchUp  GrantType = "catch_up"
	Bonus    GrantType = "bonus"
)

// GrantTypes lists the valid grant types.
var GrantTypes = []GrantType{Purchase, Free, CatchUp, Bonus}

func (t GrantType) Valid() bool {
	switch t {
	case Purchase, Free, CatchUp, Bonus:
		return true
	}
	return false
}

// TaxTreatment declares how a tranche is taxed when it vests.
type TaxTreatment string

const (
	Income       TaxTreatment = "income"
	CapitalGains TaxTreatment = "capital_gains"
	NoTax        TaxTreatment = "none"
)

func (t TaxTreatment) Valid() bool {
	switch t {
	case Income, CapitalGains, NoTax:
		return true
	}
	return false
}

// VestingTranche is a scheduled part of a grant that vests at 00:00 on VestDate.
type VestingTranche struct {
	ID             string       `json:"id"`
	VestDate       date.Date    `json:"vestDate"`
	NumberOfShares Quantity     `json:"numberOfShares"`
	TaxTreatment   TaxTreatment `json:"taxTreatment"`
}

// IsVested reports whether the tranche is vested on 'on'.
func (v VestingTranche) IsVested(on date.Date) bool { return !v.VestDate.After(on) }

// Validate returns all the problems found in the tranche.
func (v VestingTranche) Validate() error {
	var errs []error
	if v.VestDate.IsZero() {
		errs = append(errs, fmt.Errorf("tranche %q: missing vest date", v.ID))
	}
	if !v.NumberOfShares.IsPositive() {
		errs = append(errs, fmt.Errorf("tranche %q: number of shares must be positive, got %v", v.ID, v.NumberOfShares))
	}
	if !v.TaxTreatment.Valid() {
		errs = append(errs, fmt.Errorf("tranche %q: invalid tax treatment %q", v.ID, v.TaxTreatment))
	}
	return errors.Join(errs...)
}

// StockGrant is an allotment of employer shares, released by its vesting schedule.
type StockGrant struct {
	ID                   string           `json:"id"`
	Type                 GrantType        `json:"type"`
	GrantDate            date.Date        `json:"grantDate"`
	TotalShares          Quantity         `json:"totalShares"`
	PricePerShareAtGrant Money            `json:"pricePerShareAtGrant"`
	VestingSchedule      []VestingTranche `json:"vestingSchedule"`
	RelatedGrantID       string           `json:"relatedGrantId,omitempty"`
	Notes                string           `json:"notes,omitempty"`
}

// ScheduledShares returns the sum of all tranche shares.
func (g StockGrant) ScheduledShares() Quantity {
	var total Quantity
	for _, v := range g.VestingSchedule {
		total = total.Add(v.NumberOfShares)
	}
	return total
}

// Validate returns all the problems found in the grant, including its tranches.
//
// A schedule that does not add up to the total shares is reported, never corrected.
func (g StockGrant) Validate() error {
	var errs []error
	if g.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if !g.Type.Valid() {
		errs = append(errs, fmt.Errorf("invalid grant type %q", g.Type))
	}
	if g.GrantDate.IsZero() {
		errs = append(errs, errors.New("missing grant date"))
	}
	if !g.TotalShares.IsPositive() {
		errs = append(errs, fmt.Errorf("total shares must be positive, got %v", g.TotalShares))
	}
	if g.PricePerShareAtGrant.IsNegative() {
		errs = append(errs, fmt.Errorf("price per share at grant must not be negative, got %v", g.PricePerShareAtGrant))
	}
	for _, v := range g.VestingSchedule {
		if err := v.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if sum := g.ScheduledShares(); !sum.Equal(g.TotalShares) {
		errs = append(errs, fmt.Errorf("vesting schedule adds up to %v shares, want %v", sum, g.TotalShares))
	}
	return errors.Join(errs...)
}
