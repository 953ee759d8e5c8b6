package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCSV loads a delimited file into an all-string frame. Headers are
// trimmed of surrounding whitespace before anything looks them up, so
// incidental formatting differences in source files do not break name-based
// mapping. Empty cells become nulls.
func ReadCSV(path string, delim rune) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	if delim != 0 {
		r.Comma = delim
	}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return New()
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	ncol := len(header)
	names := make([]string, ncol)
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	vals := make([][]string, ncol)
	row := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		for i := 0; i < ncol; i++ {
			v := ""
			if i < len(rec) {
				v = strings.TrimSpace(rec[i])
			}
			vals[i] = append(vals[i], v)
		}
	}

	series := make([]*Series, ncol)
	for i, name := range names {
		if vals[i] == nil {
			vals[i] = []string{}
		}
		series[i] = NewStringSeries(name, vals[i], nil)
	}
	return New(series...)
}

// WriteCSV serializes the frame as delimited text with a header row.
// Null cells are written empty.
func (f *Frame) WriteCSV(w io.Writer, delim rune) error {
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	if err := cw.Write(f.names); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	rec := make([]string, len(f.names))
	for i := 0; i < f.n; i++ {
		for j, name := range f.names {
			rec[j] = f.cols[name].Format(i)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
