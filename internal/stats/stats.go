// Package stats computes descriptive aggregates over the normalized tables.
// Every optional statistic is guarded by a column-existence check and
// reported as nil when the feature is unavailable.
package stats

import (
	"math"
	"sort"

	"github.com/grivg/grivg-cli/internal/frame"
)

// RateCount pairs an absolute count with its share of the evaluable rows.
type RateCount struct {
	Count int
	Rate  float64 // percent
}

// Correlation is a Pearson coefficient over N paired observations.
type Correlation struct {
	R float64
	N int
}

// DistStats summarizes a numeric column.
type DistStats struct {
	N      int
	Mean   float64
	Median float64
}

// boolRateCount tallies a boolean column; nil when the column is absent.
func boolRateCount(f *frame.Frame, col string) *RateCount {
	if !f.Has(col) {
		return nil
	}
	s := f.Col(col)
	rc := &RateCount{}
	valid := 0
	for i := 0; i < s.Len(); i++ {
		b, ok := s.Bool(i)
		if !ok {
			continue
		}
		valid++
		if b {
			rc.Count++
		}
	}
	if valid > 0 {
		rc.Rate = float64(rc.Count) / float64(valid) * 100
	}
	return rc
}

// distStats summarizes a numeric column; nil when absent or entirely null.
func distStats(f *frame.Frame, col string) *DistStats {
	if !f.Has(col) {
		return nil
	}
	s := f.Col(col)
	var vals []float64
	for i := 0; i < s.Len(); i++ {
		if x, ok := s.Number(i); ok {
			vals = append(vals, x)
		}
	}
	if len(vals) == 0 {
		return nil
	}
	d := &DistStats{N: len(vals)}
	for _, x := range vals {
		d.Mean += x
	}
	d.Mean /= float64(len(vals))
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 0 {
		d.Median = (vals[mid-1] + vals[mid]) / 2
	} else {
		d.Median = vals[mid]
	}
	return d
}

// pearson computes the correlation coefficient of paired samples, clamped
// to [-1, 1]. ok is false with fewer than two pairs or zero variance.
func pearson(x, y []float64) (float64, bool) {
	n := float64(len(x))
	if len(x) != len(y) || len(x) < 2 {
		return 0, false
	}
	var sumX, sumY, sumXX, sumYY, sumXY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXX += x[i] * x[i]
		sumYY += y[i] * y[i]
		sumXY += x[i] * y[i]
	}
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return 0, false
	}
	r := (n*sumXY - sumX*sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

// pairedColumns collects rows where both numeric columns are present.
func pairedColumns(f *frame.Frame, a, b string) (xs, ys []float64) {
	sa := f.Col(a)
	sb := f.Col(b)
	if sa == nil || sb == nil {
		return nil, nil
	}
	for i := 0; i < f.Len(); i++ {
		x, xok := sa.Number(i)
		y, yok := sb.Number(i)
		if xok && yok {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}
