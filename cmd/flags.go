package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/stockplan"
	"github.com/etnz/stockplan/date"
)

// tranchesFlag collects repeated -t flags, each one a vesting tranche
// written as date:shares[:treatment].
type tranchesFlag []stockplan.VestingTranche

func (t *tranchesFlag) String() string {
	if t == nil {
		return ""
	}
	parts := make([]string, len(*t))
	for i, v := range *t {
		parts[i] = fmt.Sprintf("%s:%s:%s", v.VestDate, v.NumberOfShares, v.TaxTreatment)
	}
	return strings.Join(parts, ",")
}

func (t *tranchesFlag) Set(s string) error {
	v, err := parseTranche(s, stockplan.Income)
	if err != nil {
		return err
	}
	*t = append(*t, v)
	return nil
}

// parseTranche parses date:shares[:treatment].
func parseTranche(s string, treatment stockplan.TaxTreatment) (stockplan.VestingTranche, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return stockplan.VestingTranche{}, fmt.Errorf("invalid tranche %q, want date:shares[:treatment]", s)
	}
	on, err := date.Parse(parts[0])
	if err != nil {
		return stockplan.VestingTranche{}, fmt.Errorf("invalid tranche %q: %w", s, err)
	}
	shares, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return stockplan.VestingTranche{}, fmt.Errorf("invalid tranche %q: invalid shares: %w", s, err)
	}
	if len(parts) == 3 {
		treatment = stockplan.TaxTreatment(parts[2])
	}
	if !treatment.Valid() {
		return stockplan.VestingTranche{}, fmt.Errorf("invalid tranche %q: unknown tax treatment %q", s, treatment)
	}
	return stockplan.VestingTranche{VestDate: on, NumberOfShares: stockplan.Q(shares), TaxTreatment: treatment}, nil
}

// templatesFlag collects repeated -v flags, each one a vesting template
// written as type:years:fraction:treatment.
type templatesFlag map[stockplan.GrantType][]stockplan.VestingTemplate

func (t templatesFlag) String() string {
	var parts []string
	for _, typ := range stockplan.GrantTypes {
		for _, v := range t[typ] {
			parts = append(parts, fmt.Sprintf("%s:%d:%g:%s", typ, v.YearsAfterGrant, v.Fraction.AsFloat(), v.TaxTreatment))
		}
	}
	return strings.Join(parts, ",")
}

func (t templatesFlag) Set(s string) error {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return fmt.Errorf("invalid vesting template %q, want type:years:fraction:treatment", s)
	}
	typ := stockplan.GrantType(parts[0])
	if !typ.Valid() {
		return fmt.Errorf("invalid vesting template %q: unknown grant type %q", s, typ)
	}
	years, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid vesting template %q: invalid years: %w", s, err)
	}
	fraction, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return fmt.Errorf("invalid vesting template %q: invalid fraction: %w", s, err)
	}
	treatment := stockplan.TaxTreatment(parts[3])
	if !treatment.Valid() {
		return fmt.Errorf("invalid vesting template %q: unknown tax treatment %q", s, treatment)
	}
	t[typ] = append(t[typ], stockplan.VestingTemplate{YearsAfterGrant: years, Fraction: stockplan.R(fraction), TaxTreatment: treatment})
	return nil
}

// parseDate parses a date flag, empty meaning today.
func parseDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}
