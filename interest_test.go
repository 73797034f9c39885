package stockplan

import "testing"

func TestInterestExpenseByYear(t *testing.T) {
	loans := []Loan{
		newLoan("l1", 10000, 0.04, "2023-01-01", "2033-01-01"),
		newLoan("l2", 2000, 0.05, "2025-07-01", "2026-07-01"),
	}
	years := InterestExpenseByYear(loans, 2024, 2026)
	if len(years) != 3 {
		t.Fatalf("len(InterestExpenseByYear) = %d, want 3", len(years))
	}
	for i, y := range years {
		if y.Year != 2024+i {
			t.Errorf("years[%d].Year = %d, want %d", i, y.Year, 2024+i)
		}
		if y.DeductibleInYear != y.Year+1 {
			t.Errorf("years[%d].DeductibleInYear = %d, want %d", i, y.DeductibleInYear, y.Year+1)
		}
	}

	// l2 costs nothing in 2024 and is left out.
	if len(years[0].Loans) != 1 {
		t.Errorf("2024 breakdown has %d loans, want 1", len(years[0].Loans))
	}
	assertMoney(t, "2024 TotalInterest", years[0].TotalInterest, 400)

	if len(years[1].Loans) != 2 {
		t.Errorf("2025 breakdown has %d loans, want 2", len(years[1].Loans))
	}
	assertMoney(t, "2025 TotalInterest", years[1].TotalInterest, 400+100*184/365.0)
	assertMoney(t, "2026 TotalInterest", years[2].TotalInterest, 400+100*181/365.0)
}

func TestInterestExpenseByYear_Empty(t *testing.T) {
	years := InterestExpenseByYear(nil, 2024, 2025)
	if len(years) != 2 {
		t.Fatalf("len(InterestExpenseByYear) = %d, want 2", len(years))
	}
	for _, y := range years {
		if !y.TotalInterest.IsZero() || len(y.Loans) != 0 {
			t.Errorf("year %d = %+v, want no interest", y.Year, y)
		}
	}
	if got := InterestExpenseByYear(nil, 2026, 2025); len(got) != 0 {
		t.Errorf("reversed range gives %d years, want 0", len(got))
	}
}
