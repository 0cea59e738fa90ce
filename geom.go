package boxwhisker

import (
	"github.com/vdobler/boxwhisker/scene"
)

// Layer names, also used as keys into Theme.Styles.
const (
	LayerCenter       = "center"
	LayerBox          = "box"
	LayerMedian       = "median"
	LayerMean         = "mean"
	LayerWhiskers     = "whisker"
	LayerOutliers     = "outlier"
	LayerDataPoints   = "datapoint"
	LayerBoxTicks     = "boxtick"
	LayerWhiskerTicks = "whiskertick"
	LayerGoal         = "goal"
)

// The painter's order is kept by inserting new layers in front of these.
var (
	beforeBox     = []string{LayerBox}
	beforeCircles = []string{LayerMean, LayerOutliers, LayerDataPoints, LayerBoxTicks, LayerWhiskerTicks}
	beforeText    = []string{LayerBoxTicks, LayerWhiskerTicks}
)

// layout is what a geom needs to place one group.
type layout struct {
	scale  DisplayScale
	width  float64 // of the band
	format func(float64) string
	opts   *Options
}

func (lay *layout) y(v float64) float64 { return lay.scale.Pos(v) }

// Geom is one visual artifact of a box plot.
type Geom interface {
	// The name of the geom, which is also the name of its layer.
	Name() string

	// reconcile brings the layer of the geom in container in line
	// with model m.
	reconcile(s *scene.Scene, container string, m *Model, lay *layout) scene.Diff

	// retarget places an element of the layer of the geom under lay.
	retarget(lay *layout) scene.RetargetFunc
}

// BoxGeoms are the geoms drawn for every group, in reconcile order.
var BoxGeoms = []Geom{
	GeomCenter{},
	GeomBox{},
	GeomMedian{},
	GeomWhiskers{},
	GeomMean{},
	GeomOutliers{},
	GeomDataPoints{},
	GeomBoxTicks{},
	GeomWhiskerTicks{},
}

// boxRetarget moves the elements of a whole group under lay, layer by
// layer.
func boxRetarget(lay *layout) scene.RetargetFunc {
	byLayer := make(map[string]scene.RetargetFunc, len(BoxGeoms))
	for _, g := range BoxGeoms {
		byLayer[g.Name()] = g.retarget(lay)
	}
	return func(e *scene.Element) scene.Geometry {
		if f, ok := byLayer[e.Layer]; ok {
			return f(e)
		}
		return e.Geometry
	}
}

// -------------------------------------------------------------------------
// Geom Center

// GeomCenter is the vertical line from the low to the high whisker.
// Groups without whiskers have none.
type GeomCenter struct{}

var _ Geom = GeomCenter{}

func (GeomCenter) Name() string { return LayerCenter }

func (GeomCenter) spec(lay *layout) scene.LayerSpec[[2]float64] {
	return scene.LayerSpec[[2]float64]{
		Name: LayerCenter,
		Key:  scene.ByIndex[[2]float64],
		Geometry: func(w [2]float64, _ int) scene.Geometry {
			return grobVLine(lay.width/2, lay.y(w[0]), lay.y(w[1]))
		},
		Before:   beforeBox,
		Duration: lay.opts.Duration,
	}
}

func (g GeomCenter) reconcile(s *scene.Scene, c string, m *Model, lay *layout) scene.Diff {
	var data [][2]float64
	if m.HasWhiskers() {
		data = [][2]float64{{m.Whiskers[0], m.Whiskers[1]}}
	}
	return scene.Reconcile(s, c, g.spec(lay), data)
}

func (g GeomCenter) retarget(lay *layout) scene.RetargetFunc { return g.spec(lay).Retarget }

// -------------------------------------------------------------------------
// Geom Box

// GeomBox is the rectangle from the lower to the upper quartile.
type GeomBox struct{}

var _ Geom = GeomBox{}

func (GeomBox) Name() string { return LayerBox }

func (GeomBox) spec(lay *layout) scene.LayerSpec[[3]float64] {
	return scene.LayerSpec[[3]float64]{
		Name: LayerBox,
		Key:  scene.ByIndex[[3]float64],
		Geometry: func(q [3]float64, _ int) scene.Geometry {
			return grobRect(0, lay.width, lay.y(q[2]), lay.y(q[0]))
		},
		Tooltip:  lay.boxTooltip,
		Fixed:    true,
		Duration: lay.opts.Duration,
	}
}

func (g GeomBox) reconcile(s *scene.Scene, c string, m *Model, lay *layout) scene.Diff {
	return scene.Reconcile(s, c, g.spec(lay), [][3]float64{m.Quartiles()})
}

func (g GeomBox) retarget(lay *layout) scene.RetargetFunc { return g.spec(lay).Retarget }

// -------------------------------------------------------------------------
// Geom Median

// GeomMedian is the horizontal line across the box at the median.
type GeomMedian struct{}

var _ Geom = GeomMedian{}

func (GeomMedian) Name() string { return LayerMedian }

func (GeomMedian) spec(lay *layout) scene.LayerSpec[float64] {
	return scene.LayerSpec[float64]{
		Name: LayerMedian,
		Key:  scene.ByIndex[float64],
		Geometry: func(v float64, _ int) scene.Geometry {
			return grobHLine(0, lay.width, lay.y(v))
		},
		Tooltip:  lay.medianTooltip,
		Fixed:    true,
		Duration: lay.opts.Duration,
	}
}

func (g GeomMedian) reconcile(s *scene.Scene, c string, m *Model, lay *layout) scene.Diff {
	return scene.Reconcile(s, c, g.spec(lay), []float64{m.Summary.Median})
}

func (g GeomMedian) retarget(lay *layout) scene.RetargetFunc { return g.spec(lay).Retarget }

// -------------------------------------------------------------------------
// Geom Mean

// GeomMean marks the mean with a circle right of the box center.
// Precomputed groups with an unknown mean draw nothing.
type GeomMean struct{}

var _ Geom = GeomMean{}

func (GeomMean) Name() string { return LayerMean }

func (GeomMean) spec(lay *layout) scene.LayerSpec[float64] {
	return scene.LayerSpec[float64]{
		Name: LayerMean,
		Key:  scene.ByIndex[float64],
		Geometry: func(v float64, _ int) scene.Geometry {
			return grobCircle(lay.width*3/4, lay.y(v), meanRadius)
		},
		Tooltip:  lay.meanTooltip,
		Before:   beforeText,
		Duration: lay.opts.Duration,
	}
}

func (g GeomMean) reconcile(s *scene.Scene, c string, m *Model, lay *layout) scene.Diff {
	var data []float64
	if m.Summary.HasMean() {
		data = []float64{m.Summary.Mean}
	}
	return scene.Reconcile(s, c, g.spec(lay), data)
}

func (g GeomMean) retarget(lay *layout) scene.RetargetFunc { return g.spec(lay).Retarget }

// -------------------------------------------------------------------------
// Geom Whiskers

// GeomWhiskers are the two horizontal lines at the whisker values.
type GeomWhiskers struct{}

var _ Geom = GeomWhiskers{}

func (GeomWhiskers) Name() string { return LayerWhiskers }

func (GeomWhiskers) spec(lay *layout) scene.LayerSpec[float64] {
	return scene.LayerSpec[float64]{
		Name: LayerWhiskers,
		Key:  scene.ByIndex[float64],
		Geometry: func(v float64, _ int) scene.Geometry {
			return grobHLine(0, lay.width, lay.y(v))
		},
		Tooltip:  lay.whiskerTooltip,
		Before:   beforeCircles,
		Duration: lay.opts.Duration,
	}
}

func (g GeomWhiskers) reconcile(s *scene.Scene, c string, m *Model, lay *layout) scene.Diff {
	return scene.Reconcile(s, c, g.spec(lay), m.Whiskers)
}

func (g GeomWhiskers) retarget(lay *layout) scene.RetargetFunc { return g.spec(lay).Retarget }

// -------------------------------------------------------------------------
// Geom Outliers

// GeomOutliers draws one circle per outlier, keyed by value.
type GeomOutliers struct{}

var _ Geom = GeomOutliers{}

func (GeomOutliers) Name() string { return LayerOutliers }

func (GeomOutliers) reconcile(s *scene.Scene, c string, m *Model, lay *layout) scene.Diff {
	return scene.Reconcile(s, c, pointSpec(LayerOutliers, lay), m.Outliers)
}

func (GeomOutliers) retarget(lay *layout) scene.RetargetFunc {
	return pointSpec(LayerOutliers, lay).Retarget
}

func pointSpec(name string, lay *layout) scene.LayerSpec[float64] {
	return scene.LayerSpec[float64]{
		Name: name,
		Geometry: func(v float64, _ int) scene.Geometry {
			return grobCircle(lay.width/2, lay.y(v), outlierRadius)
		},
		Tooltip:  lay.valueTooltip,
		Before:   beforeText,
		FadeIn:   true,
		Duration: lay.opts.Duration,
	}
}

// -------------------------------------------------------------------------
// Geom Data Points

// GeomDataPoints draws the distinct observations which are not outliers.
type GeomDataPoints struct{}

var _ Geom = GeomDataPoints{}

func (GeomDataPoints) Name() string { return LayerDataPoints }

func (GeomDataPoints) reconcile(s *scene.Scene, c string, m *Model, lay *layout) scene.Diff {
	var data []float64
	if lay.opts.ShowDataPoints {
		data = m.DataPoints()
	}
	return scene.Reconcile(s, c, pointSpec(LayerDataPoints, lay), data)
}

func (GeomDataPoints) retarget(lay *layout) scene.RetargetFunc {
	return pointSpec(LayerDataPoints, lay).Retarget
}

// -------------------------------------------------------------------------
// Geom Box Ticks

// GeomBoxTicks labels the quartiles: Q1 and Q3 left of the box, the
// median right of it.
type GeomBoxTicks struct{}

var _ Geom = GeomBoxTicks{}

func (GeomBoxTicks) Name() string { return LayerBoxTicks }

func (GeomBoxTicks) spec(lay *layout) scene.LayerSpec[float64] {
	return scene.LayerSpec[float64]{
		Name: LayerBoxTicks,
		Key:  scene.ByIndex[float64],
		Geometry: func(v float64, i int) scene.Geometry {
			right := i&1 == 1
			x := 0.0
			if right {
				x = lay.width
			}
			return grobLabel(x, lay.y(v), right, lay.format(v))
		},
		Duration: lay.opts.Duration,
	}
}

func (g GeomBoxTicks) reconcile(s *scene.Scene, c string, m *Model, lay *layout) scene.Diff {
	var data []float64
	if lay.opts.ShowLabels {
		q := m.Quartiles()
		data = q[:]
	}
	return scene.Reconcile(s, c, g.spec(lay), data)
}

func (g GeomBoxTicks) retarget(lay *layout) scene.RetargetFunc { return g.spec(lay).Retarget }

// -------------------------------------------------------------------------
// Geom Whisker Ticks

// GeomWhiskerTicks labels both whiskers right of the box.
type GeomWhiskerTicks struct{}

var _ Geom = GeomWhiskerTicks{}

func (GeomWhiskerTicks) Name() string { return LayerWhiskerTicks }

func (GeomWhiskerTicks) spec(lay *layout) scene.LayerSpec[float64] {
	return scene.LayerSpec[float64]{
		Name: LayerWhiskerTicks,
		Key:  scene.ByIndex[float64],
		Geometry: func(v float64, _ int) scene.Geometry {
			return grobLabel(lay.width, lay.y(v), true, lay.format(v))
		},
		Tooltip:  lay.whiskerTooltip,
		Duration: lay.opts.Duration,
	}
}

func (g GeomWhiskerTicks) reconcile(s *scene.Scene, c string, m *Model, lay *layout) scene.Diff {
	var data []float64
	if lay.opts.ShowLabels {
		data = m.Whiskers
	}
	return scene.Reconcile(s, c, g.spec(lay), data)
}

func (g GeomWhiskerTicks) retarget(lay *layout) scene.RetargetFunc { return g.spec(lay).Retarget }

// -------------------------------------------------------------------------
// Geom Goal

// GeomGoal is the plot wide horizontal line at the goal value. Its
// layout width is the full plot width.
type GeomGoal struct{}

var _ Geom = GeomGoal{}

func (GeomGoal) Name() string { return LayerGoal }

func (GeomGoal) spec(lay *layout) scene.LayerSpec[float64] {
	return scene.LayerSpec[float64]{
		Name: LayerGoal,
		Key:  scene.ByIndex[float64],
		Geometry: func(v float64, _ int) scene.Geometry {
			return grobHLine(0, lay.width, lay.y(v))
		},
		Tooltip: func(v float64, _ int) []scene.TooltipItem {
			return []scene.TooltipItem{tip("goal", v, lay.format)}
		},
		Duration: lay.opts.Duration,
	}
}

func (g GeomGoal) reconcile(s *scene.Scene, c string, _ *Model, lay *layout) scene.Diff {
	var data []float64
	if lay.opts.Goal != nil {
		data = []float64{*lay.opts.Goal}
	}
	return scene.Reconcile(s, c, g.spec(lay), data)
}

func (g GeomGoal) retarget(lay *layout) scene.RetargetFunc { return g.spec(lay).Retarget }
