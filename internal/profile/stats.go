package profile

import (
	"math"
	"sort"
)

// describe computes the summary statistics shown for numeric columns.
// Returns nil for an all-null column.
func describe(vals []float64) *NumSummary {
	if len(vals) == 0 {
		return nil
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	n := len(sorted)
	mean := sum / float64(n)

	var m2 float64
	for _, v := range sorted {
		d := v - mean
		m2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}

	s := &NumSummary{
		Count:  n,
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		P5:     quantile(sorted, 0.05),
		P25:    quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		P75:    quantile(sorted, 0.75),
		P95:    quantile(sorted, 0.95),
		Max:    sorted[n-1],
	}
	s.OutlierRate = iqrOutlierRate(sorted, s.P25, s.P75)
	return s
}

// iqrOutlierRate returns the share of values outside Q1-1.5*IQR and
// Q3+1.5*IQR.
func iqrOutlierRate(sorted []float64, q1, q3 float64) float64 {
	iqr := q3 - q1
	lo, hi := q1-1.5*iqr, q3+1.5*iqr
	out := 0
	for _, v := range sorted {
		if v < lo || v > hi {
			out++
		}
	}
	return float64(out) / float64(len(sorted))
}

// quantile interpolates linearly between order statistics.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
