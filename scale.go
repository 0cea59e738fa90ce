package boxwhisker

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/vdobler/boxwhisker/stat"
)

var (
	// ErrNoGroups is returned when there is nothing to plot.
	ErrNoGroups = errors.New("boxwhisker: no groups")

	// ErrNoUsableGroups is returned when every group was dropped.
	ErrNoUsableGroups = errors.New("boxwhisker: no usable groups")
)

const (
	minCompression = 0.30
	maxCompression = 1.0
)

// DisplayScale maps data values to vertical pixel positions. Domain and
// Range have the same length (2 or 3) and define a piecewise linear map.
// Larger values map to smaller positions.
type DisplayScale struct {
	Domain []float64
	Range  []float64

	// Compression is the fraction of the height given to the values
	// below the median of medians. Informational for the linear form.
	Compression float64

	// MedianOfMedians of all groups.
	MedianOfMedians float64
}

// DeriveScale computes the scale shared by all models for a plot area of
// the given height. The values of goal, if non-nil, are kept in range.
func DeriveScale(models []*Model, height float64, goal *float64, polylinear bool) (DisplayScale, error) {
	if len(models) == 0 {
		return DisplayScale{}, ErrNoGroups
	}

	min, max := math.Inf(+1), math.Inf(-1)
	train := func(x float64) {
		if math.IsNaN(x) {
			return
		}
		min = math.Min(min, x)
		max = math.Max(max, x)
	}
	if goal != nil {
		train(*goal)
	}
	medians := make([]float64, 0, len(models))
	highWhisker := math.Inf(-1)
	for _, m := range models {
		lo, hi := m.Extent()
		train(lo)
		train(hi)
		medians = append(medians, m.Summary.Median)
		highWhisker = math.Max(highWhisker, m.Summary.HighWhisker)
	}
	degenerate := math.IsInf(min, 0) || math.IsInf(max, 0) || max <= min
	if degenerate {
		// Nothing to span: center the single value.
		c := min
		if math.IsInf(c, 0) {
			c = 0
		}
		min, max = c-1, c+1
	}

	mom := stat.Quantile(stat.Sorted(medians), 0.5)
	compression := mom / max
	if math.IsNaN(compression) || math.IsInf(compression, 0) || compression < minCompression {
		compression = minCompression
	} else if compression > maxCompression {
		compression = maxCompression
	}

	sc := DisplayScale{Compression: compression, MedianOfMedians: mom}
	if polylinear {
		sc.Domain = []float64{min, mom, max}
		sc.Range = []float64{height, height * (1 - compression), 0}
		return sc, nil
	}

	top := math.Min(max, mom+0.5*(highWhisker-mom))
	if goal != nil && *goal > top {
		top = math.Min(max, *goal)
	}
	if degenerate || math.IsNaN(top) || top <= min {
		top = max
	}
	sc.Domain = []float64{min, top}
	sc.Range = []float64{height, 0}
	return sc, nil
}

// Pos maps v to its vertical position. Values outside the domain are
// extrapolated from the nearest segment.
func (s DisplayScale) Pos(v float64) float64 {
	d, r := s.Domain, s.Range
	if len(d) < 2 {
		return 0
	}
	i := 0
	for i < len(d)-2 && v > d[i+1] {
		i++
	}
	if d[i+1] == d[i] {
		return r[i]
	}
	return r[i] + (v-d[i])*(r[i+1]-r[i])/(d[i+1]-d[i])
}

// Shift returns s with its range moved down by dy.
func (s DisplayScale) Shift(dy float64) DisplayScale {
	out := s
	out.Range = make([]float64, len(s.Range))
	for i, r := range s.Range {
		out.Range[i] = r + dy
	}
	return out
}

func (s DisplayScale) String() string {
	return fmt.Sprintf("scale %v -> %v (compression %.2f)", s.Domain, s.Range, s.Compression)
}

func (s DisplayScale) extent() (float64, float64) {
	return s.Domain[0], s.Domain[len(s.Domain)-1]
}

// Ticks returns about n round values inside the domain of s.
func (s DisplayScale) Ticks(n int) []float64 {
	if len(s.Domain) < 2 {
		return nil
	}
	lo, hi := s.extent()
	step := tickStep(lo, hi, n)
	if step == 0 {
		return nil
	}
	start := math.Ceil(lo/step) * step
	stop := RoundDown(hi, step) + step/2
	var ticks []float64
	for i := 0; ; i++ {
		x := start + float64(i)*step
		if x >= stop {
			break
		}
		ticks = append(ticks, x)
	}
	return ticks
}

// TickFormat returns a formatter for the values returned by Ticks(n):
// thousands are grouped and the precision matches the tick step.
func (s DisplayScale) TickFormat(n int) func(float64) string {
	prec := 0
	if len(s.Domain) >= 2 {
		lo, hi := s.extent()
		if step := tickStep(lo, hi, n); step > 0 {
			prec = precisionFor(step)
		}
	}
	return GroupedFormat(prec)
}

// GroupedFormat formats values with prec fraction digits and grouped
// thousands, e.g. "1,234.5".
func GroupedFormat(prec int) func(float64) string {
	p := message.NewPrinter(language.English)
	return func(v float64) string {
		return p.Sprint(number.Decimal(v, number.Scale(prec)))
	}
}
