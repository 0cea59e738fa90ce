package boxwhisker

import (
	"math"
)

// tickStep returns a round step (1, 2 or 5 times a power of ten) giving
// about n ticks between lo and hi.
func tickStep(lo, hi float64, n int) float64 {
	span := hi - lo
	if n <= 0 || !(span > 0) || math.IsInf(span, 0) {
		return 0
	}
	step := math.Pow(10, math.Floor(math.Log10(span/float64(n))))
	err := float64(n) / span * step
	switch {
	case err <= 0.15:
		step *= 10
	case err <= 0.35:
		step *= 5
	case err <= 0.75:
		step *= 2
	}
	return step
}

// precisionFor returns the number of fraction digits needed to print
// multiples of step.
func precisionFor(step float64) int {
	p := -int(math.Floor(math.Log10(step) + 0.01))
	if p < 0 {
		return 0
	}
	return p
}

// RoundDown returns the largest multiple of b not larger than a.
func RoundDown(a, b float64) float64 {
	return math.Floor(a/b) * b
}

// bands divides [start, stop] into n bands separated by padding times
// the step, with outer times the step before the first and after the
// last band. Offsets and width are rounded to whole pixels.
func bands(n int, start, stop, padding, outer float64) (offsets []float64, width float64) {
	if n <= 0 {
		return nil, 0
	}
	step := math.Floor((stop - start) / (float64(n) - padding + 2*outer))
	err := stop - start - (float64(n)-padding)*step
	x0 := start + math.Round(err/2)
	offsets = make([]float64, n)
	for i := range offsets {
		offsets[i] = x0 + float64(i)*step
	}
	return offsets, math.Round(step * (1 - padding))
}
