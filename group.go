package boxwhisker

import (
	"github.com/vdobler/boxwhisker/stat"
)

// Group is one category of the plot.
type Group struct {
	Label  string
	Values Values
}

// Values is either Observations or Precomputed.
type Values interface {
	values()
}

// Observations are raw measurements; the statistics are computed from
// them. The slice is never modified.
type Observations []float64

func (Observations) values() {}

// Precomputed carries a summary computed elsewhere. It is drawn as is.
// Mean, Minimum and Maximum may be stat.Unknown: no mean is drawn and
// unknown extremes are taken from the drawn values.
type Precomputed struct {
	Summary  stat.Summary
	Outliers []float64
}

func (Precomputed) values() {}

// Points is shorthand for a group computed from observations.
func Points(label string, points ...float64) Group {
	return Group{Label: label, Values: Observations(points)}
}
