package stat

// Classification partitions an observation set into outliers and the
// whisker-contained rest.
type Classification struct {
	// Outliers is a multiset: the threshold policy may report the
	// same observation twice unless run in strict mode.
	Outliers []float64

	// Range is the closed index range [lo, hi] into the sorted data
	// which is not cut off by the whiskers (index policy) or by the
	// outlier fence (threshold policy). lo > hi for an empty range.
	Range [2]int

	// Whiskers are the values drawn as whiskers, either none or
	// exactly two.
	Whiskers []float64

	// Inliers are the observations not reported as outlier, in
	// ascending order.
	Inliers []float64
}

// Policy decides which observations are outliers.
type Policy interface {
	// Name of the policy.
	Name() string

	// Classify the ascending sequence sorted whose summary is s.
	Classify(sorted []float64, s Summary) Classification
}

// -------------------------------------------------------------------------
// Index Policy

// WhiskerFunc returns two ascending indices into sorted marking the
// whisker ends, or nil if there are no whiskers.
type WhiskerFunc func(sorted []float64) []int

// FullRange puts the whiskers on the first and last observation.
func FullRange(sorted []float64) []int {
	if len(sorted) == 0 {
		return nil
	}
	return []int{0, len(sorted) - 1}
}

// IndexPolicy treats every observation outside the closed index range
// returned by Whiskers as outlier. Without whiskers every observation is
// an outlier. A nil Whiskers uses FullRange.
type IndexPolicy struct {
	Whiskers WhiskerFunc
}

var _ Policy = IndexPolicy{}

func (IndexPolicy) Name() string { return "IndexPolicy" }

func (p IndexPolicy) Classify(sorted []float64, _ Summary) Classification {
	n := len(sorted)
	if n == 0 {
		return Classification{Range: [2]int{0, -1}}
	}
	wf := p.Whiskers
	if wf == nil {
		wf = FullRange
	}
	idx := wf(sorted)
	if len(idx) != 2 {
		out := make([]float64, n)
		copy(out, sorted)
		return Classification{Outliers: out, Range: [2]int{0, -1}}
	}

	lo, hi := clampIndex(idx[0], n), clampIndex(idx[1], n)
	if lo > hi {
		lo, hi = hi, lo
	}
	c := Classification{
		Range:    [2]int{lo, hi},
		Whiskers: []float64{sorted[lo], sorted[hi]},
	}
	c.Outliers = append(c.Outliers, sorted[:lo]...)
	c.Outliers = append(c.Outliers, sorted[hi+1:]...)
	c.Inliers = append(c.Inliers, sorted[lo:hi+1]...)
	return c
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// -------------------------------------------------------------------------
// Threshold Policy

// ThresholdPolicy reports an observation as outlier if it lies on or
// beyond a whisker. Boundary values count as outliers.
//
// With Factor > 0 a second pass adds everything beyond the fence
// Factor*(Q3-Q1) outside the whiskers, scanning inward from both ends
// of the sorted data. Q1 and Q3 are the configured box edges. Both passes
// append to the same list, so an observation beyond the fence is usually
// reported twice. Strict suppresses these repetitions.
type ThresholdPolicy struct {
	Factor float64
	Strict bool
}

var _ Policy = ThresholdPolicy{}

func (ThresholdPolicy) Name() string { return "ThresholdPolicy" }

func (p ThresholdPolicy) Classify(sorted []float64, s Summary) Classification {
	n := len(sorted)
	if n == 0 {
		return Classification{Range: [2]int{0, -1}}
	}
	fence := s.IQR() * p.Factor
	flagged := make([]bool, n)
	var out []float64
	add := func(i int) {
		if p.Strict && flagged[i] {
			return
		}
		flagged[i] = true
		out = append(out, sorted[i])
	}

	// Fence scan from both ends.
	i := 0
	for i < n && sorted[i] <= s.LowWhisker-fence {
		add(i)
		i++
	}
	j := n - 1
	for j >= 0 && sorted[j] >= s.HighWhisker+fence {
		add(j)
		j--
	}

	// Threshold scan.
	for k, v := range sorted {
		if v <= s.LowWhisker || v >= s.HighWhisker {
			add(k)
		}
	}

	c := Classification{
		Outliers: out,
		Range:    [2]int{i, j},
		Whiskers: []float64{s.LowWhisker, s.HighWhisker},
	}
	for k, v := range sorted {
		if !flagged[k] {
			c.Inliers = append(c.Inliers, v)
		}
	}
	return c
}
