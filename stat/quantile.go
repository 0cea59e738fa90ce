// Package stat computes the order statistics behind a box and whisker plot:
// linear interpolation quantiles, a statistical summary for a configurable
// set of quantile fractions, and the classification of observations into
// outliers and whisker-contained values.
//
// All functions are pure. Input slices are never modified; functions which
// need sorted input say so and Sorted produces such a slice.
package stat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Sorted returns an ascending copy of d.
func Sorted(d []float64) []float64 {
	s := make([]float64, len(d))
	copy(s, d)
	sort.Float64s(s)
	return s
}

// Quantile returns the q-quantile of the ascending sequence d using
// linear interpolation between the two closest ranks at h = q*(n-1).
// It returns NaN if d is empty. Fractions outside [0,1] are not rejected:
// the rank is clamped to the sequence.
func Quantile(d []float64, q float64) float64 {
	n := len(d)
	if n == 0 {
		return math.NaN()
	}
	h := q * float64(n-1)
	if h <= 0 || math.IsNaN(h) {
		return d[0]
	}
	if h >= float64(n-1) {
		return d[n-1]
	}
	lo := math.Floor(h)
	i := int(lo)
	return d[i] + (h-lo)*(d[i+1]-d[i])
}

// Quartiles returns the 0.25, 0.5 and 0.75 quantiles of the ascending d.
// These are the default box edges.
func Quartiles(d []float64) [3]float64 {
	return [3]float64{
		Quantile(d, 0.25),
		Quantile(d, 0.5),
		Quantile(d, 0.75),
	}
}

// Mean is the arithmetic mean of d, NaN for empty d.
func Mean(d []float64) float64 {
	if len(d) == 0 {
		return math.NaN()
	}
	return stat.Mean(d, nil)
}
