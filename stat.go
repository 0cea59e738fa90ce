package boxwhisker

import (
	"errors"
	"fmt"
	"math"

	"github.com/vdobler/boxwhisker/stat"
)

// ErrInvalidSummary is returned for precomputed summaries with a NaN box
// or whisker value.
var ErrInvalidSummary = errors.New("boxwhisker: invalid precomputed summary")

// Model is the drawable description of one group.
type Model struct {
	Label   string
	Summary stat.Summary

	// Whiskers holds the low and the high whisker value or is empty if
	// the outlier policy drew no whiskers.
	Whiskers []float64

	// Outliers in the order produced by the outlier policy.
	Outliers []float64

	// Points are the sorted finite observations. Empty for precomputed
	// groups.
	Points []float64

	// Computed is false for precomputed groups.
	Computed bool
}

// HasWhiskers reports whether m has a low and a high whisker.
func (m *Model) HasWhiskers() bool { return len(m.Whiskers) == 2 }

// Quartiles returns the box edges and the median: Q1, median, Q3.
func (m *Model) Quartiles() [3]float64 {
	return [3]float64{m.Summary.Q1, m.Summary.Median, m.Summary.Q3}
}

// DataPoints returns the distinct observations which are not outliers.
func (m *Model) DataPoints() []float64 {
	set := NewFloatSetFrom(m.Points)
	set.Remove(m.Outliers)
	return set.Elements()
}

// Extent returns the smallest and largest value drawn for m.
func (m *Model) Extent() (min, max float64) {
	return m.Summary.Minimum, m.Summary.Maximum
}

// -------------------------------------------------------------------------
// Building models

// policy returns the outlier policy selected by o.
func (o *Options) policy() stat.Policy {
	if o.IndexWhiskers != nil {
		return stat.IndexPolicy{Whiskers: o.IndexWhiskers}
	}
	return stat.ThresholdPolicy{Factor: o.OutlierFactor, Strict: o.StrictOutliers}
}

// BuildModel computes the model of one group.
func BuildModel(g Group, opts Options) (*Model, error) {
	switch v := g.Values.(type) {
	case Observations:
		return buildObserved(g.Label, v, opts)
	case Precomputed:
		return buildPrecomputed(g.Label, v)
	case nil:
		return nil, fmt.Errorf("group %q: %w", g.Label, stat.ErrEmpty)
	default:
		return nil, fmt.Errorf("group %q: unsupported values %T", g.Label, v)
	}
}

func buildObserved(label string, obs Observations, opts Options) (*Model, error) {
	finite := make([]float64, 0, len(obs))
	for _, x := range obs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	sorted := stat.Sorted(finite)
	s, err := stat.Summarize(sorted, opts.Quantiles)
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", label, err)
	}

	cl := opts.policy().Classify(sorted, s)
	m := &Model{
		Label:    label,
		Summary:  s,
		Outliers: cl.Outliers,
		Points:   sorted,
		Computed: true,
	}
	if len(cl.Whiskers) == 2 {
		m.Whiskers = []float64{cl.Whiskers[0], cl.Whiskers[1]}
		m.Summary.LowWhisker, m.Summary.HighWhisker = cl.Whiskers[0], cl.Whiskers[1]
	}
	return m, nil
}

func buildPrecomputed(label string, p Precomputed) (*Model, error) {
	s := p.Summary
	for _, x := range []float64{s.Q1, s.Median, s.Q3, s.LowWhisker, s.HighWhisker} {
		if math.IsNaN(x) {
			return nil, fmt.Errorf("group %q: %w", label, ErrInvalidSummary)
		}
	}

	// Unknown extremes are derived from whatever gets drawn.
	lo, hi := math.Inf(+1), math.Inf(-1)
	for _, x := range append([]float64{s.Q1, s.Median, s.Q3, s.LowWhisker, s.HighWhisker}, p.Outliers...) {
		if !math.IsNaN(x) {
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
	}
	if math.IsNaN(s.Minimum) {
		s.Minimum = lo
	}
	if math.IsNaN(s.Maximum) {
		s.Maximum = hi
	}
	return &Model{
		Label:    label,
		Summary:  s,
		Whiskers: []float64{s.LowWhisker, s.HighWhisker},
		Outliers: append([]float64(nil), p.Outliers...),
	}, nil
}

// BuildModels computes the models of all usable groups in order. Groups
// which cannot be modeled are dropped; the returned error joins the
// reasons and is nil if every group was usable.
func BuildModels(groups []Group, opts Options) ([]*Model, error) {
	models := make([]*Model, 0, len(groups))
	var errs []error
	for _, g := range groups {
		m, err := BuildModel(g, opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		models = append(models, m)
	}
	return models, errors.Join(errs...)
}
