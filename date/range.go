package date

// Range represents a range of dates, both boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// YearRange returns the range covering the whole calendar year.
func YearRange(year int) Range { return Range{From: StartOfYear(year), To: EndOfYear(year)} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsEmpty reports whether the range contains no day at all.
func (r Range) IsEmpty() bool { return r.To.Before(r.From) }

// Clip returns the intersection of r and x. The result may be empty.
func (r Range) Clip(x Range) Range {
	return Range{From: Max(r.From, x.From), To: Min(r.To, x.To)}
}

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return DaysBetween(r.From, r.To) + 1
}

func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
