package frame

import "fmt"

// Kind identifies the element type of a Series.
type Kind int

const (
	KindString Kind = iota
	KindFloat
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	}
	return "unknown"
}

// Series is an immutable named column: a dense value slice plus a null mask.
// String series may be dictionary-encoded for cheap grouping; label access
// stays string-based either way.
type Series struct {
	name  string
	kind  Kind
	valid []bool

	strs   []string
	floats []float64
	ints   []int64
	bools  []bool

	// dictionary encoding for categorical string columns
	codes []int
	dict  []string
}

// NewStringSeries builds a string column. A nil valid mask marks empty
// strings as null and everything else as present.
func NewStringSeries(name string, vals []string, valid []bool) *Series {
	if valid == nil {
		valid = make([]bool, len(vals))
		for i, v := range vals {
			valid[i] = v != ""
		}
	}
	return &Series{name: name, kind: KindString, strs: vals, valid: valid}
}

// NewFloatSeries builds a float column; valid must have the same length as vals.
func NewFloatSeries(name string, vals []float64, valid []bool) *Series {
	return &Series{name: name, kind: KindFloat, floats: vals, valid: valid}
}

// NewIntSeries builds an integer column; valid must have the same length as vals.
func NewIntSeries(name string, vals []int64, valid []bool) *Series {
	return &Series{name: name, kind: KindInt, ints: vals, valid: valid}
}

// NewBoolSeries builds a boolean column; valid must have the same length as vals.
func NewBoolSeries(name string, vals []bool, valid []bool) *Series {
	return &Series{name: name, kind: KindBool, bools: vals, valid: valid}
}

func (s *Series) Name() string { return s.name }
func (s *Series) Kind() Kind   { return s.kind }

func (s *Series) Len() int {
	return len(s.valid)
}

// Valid reports whether row i holds a value.
func (s *Series) Valid(i int) bool { return s.valid[i] }

// NullCount returns the number of absent values.
func (s *Series) NullCount() int {
	n := 0
	for _, ok := range s.valid {
		if !ok {
			n++
		}
	}
	return n
}

// String returns the label at row i. ok is false for nulls or non-string kinds.
func (s *Series) String(i int) (string, bool) {
	if s.kind != KindString || !s.valid[i] {
		return "", false
	}
	if s.dict != nil {
		return s.dict[s.codes[i]], true
	}
	return s.strs[i], true
}

// Float returns the value at row i for float columns.
func (s *Series) Float(i int) (float64, bool) {
	if s.kind != KindFloat || !s.valid[i] {
		return 0, false
	}
	return s.floats[i], true
}

// Int returns the value at row i for integer columns.
func (s *Series) Int(i int) (int64, bool) {
	if s.kind != KindInt || !s.valid[i] {
		return 0, false
	}
	return s.ints[i], true
}

// Bool returns the value at row i for boolean columns.
func (s *Series) Bool(i int) (bool, bool) {
	if s.kind != KindBool || !s.valid[i] {
		return false, false
	}
	return s.bools[i], true
}

// Number returns the value at row i as a float64 for float and int columns.
func (s *Series) Number(i int) (float64, bool) {
	switch s.kind {
	case KindFloat:
		return s.Float(i)
	case KindInt:
		v, ok := s.Int(i)
		return float64(v), ok
	}
	return 0, false
}

// Format renders the value at row i for delimited-text output; nulls are empty.
func (s *Series) Format(i int) string {
	if !s.valid[i] {
		return ""
	}
	switch s.kind {
	case KindString:
		v, _ := s.String(i)
		return v
	case KindFloat:
		return trimFloat(s.floats[i])
	case KindInt:
		return fmt.Sprintf("%d", s.ints[i])
	case KindBool:
		if s.bools[i] {
			return "true"
		}
		return "false"
	}
	return ""
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// Categorical returns a dictionary-encoded copy of a string series. Labels
// compare as the original strings; only the storage changes.
func (s *Series) Categorical() *Series {
	if s.kind != KindString || s.dict != nil {
		return s
	}
	index := make(map[string]int)
	var dict []string
	codes := make([]int, len(s.strs))
	for i, v := range s.strs {
		if !s.valid[i] {
			continue
		}
		code, ok := index[v]
		if !ok {
			code = len(dict)
			index[v] = code
			dict = append(dict, v)
		}
		codes[i] = code
	}
	return &Series{name: s.name, kind: KindString, valid: s.valid, codes: codes, dict: dict}
}

// Renamed returns a copy of the series under a new name, sharing backing arrays.
func (s *Series) Renamed(name string) *Series {
	cp := *s
	cp.name = name
	return &cp
}

// take builds a new series from the given row indexes.
func (s *Series) take(idx []int) *Series {
	out := &Series{name: s.name, kind: s.kind, valid: make([]bool, len(idx))}
	for j, i := range idx {
		out.valid[j] = s.valid[i]
	}
	switch s.kind {
	case KindString:
		if s.dict != nil {
			out.dict = s.dict
			out.codes = make([]int, len(idx))
			for j, i := range idx {
				out.codes[j] = s.codes[i]
			}
		} else {
			out.strs = make([]string, len(idx))
			for j, i := range idx {
				out.strs[j] = s.strs[i]
			}
		}
	case KindFloat:
		out.floats = make([]float64, len(idx))
		for j, i := range idx {
			out.floats[j] = s.floats[i]
		}
	case KindInt:
		out.ints = make([]int64, len(idx))
		for j, i := range idx {
			out.ints[j] = s.ints[i]
		}
	case KindBool:
		out.bools = make([]bool, len(idx))
		for j, i := range idx {
			out.bools[j] = s.bools[i]
		}
	}
	return out
}
