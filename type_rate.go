package stockplan

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rate is a decimal fraction: 0.04 is an interest rate of 4%.
type Rate struct {
	value decimal.Decimal
}

func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

func (r Rate) Equal(s Rate) bool       { return r.value.Equal(s.value) }
func (r Rate) IsZero() bool            { return r.value.IsZero() }
func (r Rate) IsNegative() bool        { return r.value.IsNegative() }
func (r Rate) GreaterThan(s Rate) bool { return r.value.GreaterThan(s.value) }

// Complement returns 1 - r.
func (r Rate) Complement() Rate { return Rate{value: decimal.NewFromInt(1).Sub(r.value)} }

// AsFloat returns the rate as a float, for display only.
func (r Rate) AsFloat() float64 { return r.value.InexactFloat64() }

// String formats the rate as a percentage.
func (r Rate) String() string {
	return r.value.Shift(2).StringFixed(2) + "%"
}

// SignedString returns the percentage with an explicit sign, "-" for zero.
func (r Rate) SignedString() string {
	if r.value.IsZero() {
		return "-"
	}
	s := r.String()
	if r.value.IsPositive() {
		return "+" + s
	}
	return s
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(r.value.String()), nil
}

func (r *Rate) UnmarshalJSON(b []byte) error {
	if err := r.value.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("invalid rate %s: %w", b, err)
	}
	return nil
}
