package dataset

import "github.com/grivg/grivg-cli/internal/frame"

// Filtering is best-effort and never mutates the cached tables: every
// operation returns a new view, and a table lacking the named column is
// returned unchanged.
//
// "Drop unknown years" and "keep unknown years" are different policies, so
// they are two named operations; callers pick deliberately.

// FilterByYearRange restricts rows to min <= year <= max (inclusive).
// Rows with an unknown year are dropped.
func FilterByYearRange(f *frame.Frame, yearCol string, min, max int) *frame.Frame {
	if !f.Has(yearCol) {
		return f
	}
	s := f.Col(yearCol)
	return f.Filter(func(i int) bool {
		y, ok := s.Number(i)
		return ok && y >= float64(min) && y <= float64(max)
	})
}

// FilterByYearRangeKeepUnknown restricts rows to the inclusive range while
// retaining rows whose year is unknown.
func FilterByYearRangeKeepUnknown(f *frame.Frame, yearCol string, min, max int) *frame.Frame {
	if !f.Has(yearCol) {
		return f
	}
	s := f.Col(yearCol)
	return f.Filter(func(i int) bool {
		y, ok := s.Number(i)
		if !ok {
			return true
		}
		return y >= float64(min) && y <= float64(max)
	})
}

// FilterByGender returns the characters whose gender is in genders.
// An empty or nil list means "no filter", not "match nothing".
func FilterByGender(chars *frame.Frame, genders []string) *frame.Frame {
	if len(genders) == 0 || !chars.Has("gender") {
		return chars
	}
	want := make(map[string]bool, len(genders))
	for _, g := range genders {
		want[g] = true
	}
	s := chars.Col("gender")
	return chars.Filter(func(i int) bool {
		g, ok := s.String(i)
		return ok && want[g]
	})
}

// FilterByLabel restricts rows to those where a string column equals value.
// An empty value or "All" is the identity, as is a missing column.
func FilterByLabel(f *frame.Frame, col, value string) *frame.Frame {
	if value == "" || value == "All" || !f.Has(col) {
		return f
	}
	s := f.Col(col)
	return f.Filter(func(i int) bool {
		v, ok := s.String(i)
		return ok && v == value
	})
}
