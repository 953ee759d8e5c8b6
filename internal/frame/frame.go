// Package frame provides a small immutable columnar table: named, typed
// columns of equal length with per-cell null tracking. Loaded tables are
// never mutated; every transform returns a new Frame.
package frame

import (
	"fmt"
	"sort"
)

// Frame is an ordered set of equal-length Series.
type Frame struct {
	names []string
	cols  map[string]*Series
	n     int
}

// New builds a frame from columns. All series must share one length.
func New(series ...*Series) (*Frame, error) {
	f := &Frame{cols: make(map[string]*Series, len(series))}
	for i, s := range series {
		if i == 0 {
			f.n = s.Len()
		} else if s.Len() != f.n {
			return nil, fmt.Errorf("column %q has %d rows, want %d", s.Name(), s.Len(), f.n)
		}
		if _, dup := f.cols[s.Name()]; dup {
			return nil, fmt.Errorf("duplicate column %q", s.Name())
		}
		f.names = append(f.names, s.Name())
		f.cols[s.Name()] = s
	}
	return f, nil
}

// Len returns the row count.
func (f *Frame) Len() int { return f.n }

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Has reports whether a column exists. Derived-field computation and every
// optional statistic is guarded by this check; absence means the feature is
// unavailable, not false or zero.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Col returns the named column, or nil when absent.
func (f *Frame) Col(name string) *Series {
	return f.cols[name]
}

// Rename returns a frame with columns renamed per the mapping. Unmapped
// columns pass through unchanged. Multiple source spellings may map to the
// same canonical target; the last column encountered wins.
func (f *Frame) Rename(mapping map[string]string) *Frame {
	out := &Frame{cols: make(map[string]*Series, len(f.cols)), n: f.n}
	for _, name := range f.names {
		s := f.cols[name]
		target := name
		if t, ok := mapping[name]; ok {
			target = t
		}
		if _, dup := out.cols[target]; dup {
			// last applicable mapping wins: replace in place, keep order
			out.cols[target] = s.Renamed(target)
			continue
		}
		out.names = append(out.names, target)
		out.cols[target] = s.Renamed(target)
	}
	return out
}

// WithColumn returns a frame with the series appended, or replaced when a
// column of the same name already exists. The receiver is left untouched.
func (f *Frame) WithColumn(s *Series) (*Frame, error) {
	if f.n != s.Len() && len(f.names) > 0 {
		return nil, fmt.Errorf("column %q has %d rows, want %d", s.Name(), s.Len(), f.n)
	}
	out := &Frame{names: make([]string, len(f.names)), cols: make(map[string]*Series, len(f.cols)+1), n: s.Len()}
	copy(out.names, f.names)
	for k, v := range f.cols {
		out.cols[k] = v
	}
	if !f.Has(s.Name()) {
		out.names = append(out.names, s.Name())
	}
	out.cols[s.Name()] = s
	return out, nil
}

// Filter returns a new frame holding the rows for which pred is true.
// Backing arrays are copied, never shared mutably.
func (f *Frame) Filter(pred func(row int) bool) *Frame {
	var idx []int
	for i := 0; i < f.n; i++ {
		if pred(i) {
			idx = append(idx, i)
		}
	}
	out := &Frame{names: make([]string, len(f.names)), cols: make(map[string]*Series, len(f.cols)), n: len(idx)}
	copy(out.names, f.names)
	for _, name := range f.names {
		out.cols[name] = f.cols[name].take(idx)
	}
	return out
}

// ValueCounts tallies the labels of a string column, skipping nulls.
// Returns nil when the column is absent or not a string column.
func (f *Frame) ValueCounts(name string) map[string]int {
	s := f.cols[name]
	if s == nil || s.Kind() != KindString {
		return nil
	}
	counts := make(map[string]int)
	for i := 0; i < s.Len(); i++ {
		if v, ok := s.String(i); ok {
			counts[v]++
		}
	}
	return counts
}

// Nunique returns the number of distinct non-null labels in a string column.
func (f *Frame) Nunique(name string) int {
	return len(f.ValueCounts(name))
}

// MeanBy computes the mean of a numeric or boolean column grouped by the
// labels of a string column. Booleans count as 0/1, so the result is a rate.
// Rows where either cell is null are skipped.
func (f *Frame) MeanBy(key, val string) map[string]float64 {
	ks := f.cols[key]
	vs := f.cols[val]
	if ks == nil || vs == nil || ks.Kind() != KindString {
		return nil
	}
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i := 0; i < f.n; i++ {
		label, ok := ks.String(i)
		if !ok {
			continue
		}
		var x float64
		switch vs.Kind() {
		case KindBool:
			b, bok := vs.Bool(i)
			if !bok {
				continue
			}
			if b {
				x = 1
			}
		default:
			n, nok := vs.Number(i)
			if !nok {
				continue
			}
			x = n
		}
		sums[label] += x
		counts[label]++
	}
	out := make(map[string]float64, len(sums))
	for label, sum := range sums {
		out[label] = sum / float64(counts[label])
	}
	return out
}

// Crosstab holds a counts matrix of two categorical columns.
type Crosstab struct {
	RowLabels []string
	ColLabels []string
	Counts    [][]int // Counts[i][j] for RowLabels[i] x ColLabels[j]
}

// CrosstabOf counts co-occurrences of the labels of two string columns.
// Labels are sorted for stable output. Rows with a null in either column
// are skipped. Returns nil when either column is absent.
func (f *Frame) CrosstabOf(rowCol, colCol string) *Crosstab {
	rs := f.cols[rowCol]
	cs := f.cols[colCol]
	if rs == nil || cs == nil || rs.Kind() != KindString || cs.Kind() != KindString {
		return nil
	}
	type cell struct{ r, c string }
	counts := make(map[cell]int)
	rowSet := make(map[string]bool)
	colSet := make(map[string]bool)
	for i := 0; i < f.n; i++ {
		r, rok := rs.String(i)
		c, cok := cs.String(i)
		if !rok || !cok {
			continue
		}
		counts[cell{r, c}]++
		rowSet[r] = true
		colSet[c] = true
	}
	ct := &Crosstab{}
	for r := range rowSet {
		ct.RowLabels = append(ct.RowLabels, r)
	}
	for c := range colSet {
		ct.ColLabels = append(ct.ColLabels, c)
	}
	sort.Strings(ct.RowLabels)
	sort.Strings(ct.ColLabels)
	ct.Counts = make([][]int, len(ct.RowLabels))
	for i, r := range ct.RowLabels {
		ct.Counts[i] = make([]int, len(ct.ColLabels))
		for j, c := range ct.ColLabels {
			ct.Counts[i][j] = counts[cell{r, c}]
		}
	}
	return ct
}
