package stockplan

import "testing"

func TestActiveLoans(t *testing.T) {
	active := newLoan("active", 1000, 0.05, "2024-01-01", "2026-01-01")
	refinanced := newLoan("refinanced", 1000, 0.05, "2024-01-01", "2026-01-01")
	refinanced.Status = Refinanced
	paid := newLoan("paid", 1000, 0.05, "2024-01-01", "2026-01-01")
	paid.Status = PaidOff
	loans := []Loan{active, refinanced, paid}

	tests := []struct {
		on   string
		want int
	}{
		{"2023-12-31", 0},
		{"2024-01-01", 1}, // origination is included
		{"2026-01-01", 1}, // maturity is included
		{"2026-01-02", 0},
	}
	for _, tt := range tests {
		if got := ActiveLoans(loans, d(tt.on)); len(got) != tt.want {
			t.Errorf("ActiveLoans(%s) = %d loans, want %d", tt.on, len(got), tt.want)
		}
	}
}

func TestAccruedInterest(t *testing.T) {
	tests := []struct {
		name string
		loan Loan
		on   string
		want float64
	}{
		{
			name: "since January 1st",
			loan: newLoan("l", 10000, 0.04, "2023-01-01", "2033-01-01"),
			on:   "2025-07-01",
			want: 10000 * 0.04 * 181 / 365,
		},
		{
			name: "leap year",
			loan: newLoan("l", 10000, 0.04, "2023-01-01", "2033-01-01"),
			on:   "2024-07-01",
			want: 10000 * 0.04 * 182 / 366,
		},
		{
			name: "since origination",
			loan: newLoan("l", 10000, 0.04, "2025-03-01", "2035-03-01"),
			on:   "2025-07-01",
			want: 10000 * 0.04 * 122 / 365,
		},
		{
			name: "on January 1st",
			loan: newLoan("l", 10000, 0.04, "2023-01-01", "2033-01-01"),
			on:   "2025-01-01",
			want: 0,
		},
		{
			name: "before origination",
			loan: newLoan("l", 10000, 0.04, "2025-03-01", "2035-03-01"),
			on:   "2025-02-01",
			want: 0,
		},
		{
			name: "zero rate",
			loan: newLoan("l", 10000, 0, "2023-01-01", "2033-01-01"),
			on:   "2025-07-01",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, "AccruedInterest", AccruedInterest(tt.loan, d(tt.on)), tt.want)
		})
	}
}

func TestInterestForYear(t *testing.T) {
	loan := newLoan("l", 10000, 0.04, "2023-03-01", "2026-07-01")
	paid := loan
	paid.Status = PaidOff

	tests := []struct {
		name string
		loan Loan
		year int
		want float64
	}{
		{"before origination", loan, 2022, 0},
		{"origination year", loan, 2023, 400 * 306.0 / 365},
		{"full leap year", loan, 2024, 400},
		{"full year", loan, 2025, 400},
		{"maturity year", loan, 2026, 400 * 181.0 / 365},
		{"after maturity", loan, 2027, 0},
		{"not active", paid, 2024, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, "InterestForYear", InterestForYear(tt.loan, tt.year), tt.want)
		})
	}
}
