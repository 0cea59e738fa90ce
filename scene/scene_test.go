package scene

import (
	"math"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) add(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func newTestScene() (*Scene, *fakeClock) {
	clock := &fakeClock{t: time.Date(2015, 9, 1, 12, 0, 0, 0, time.UTC)}
	return New(WithClock(clock)), clock
}

// pointSpec draws string items as circles at y = pos[item].
func pointSpec(pos map[string]float64, d time.Duration) LayerSpec[string] {
	return LayerSpec[string]{
		Name: "points",
		Geometry: func(s string, _ int) Geometry {
			return Geometry{Kind: Circle, X1: 5, Y1: pos[s], R: 3}
		},
		Duration: d,
	}
}

func sorted(s []string) []string {
	c := append([]string(nil), s...)
	sort.Strings(c)
	return c
}

func TestReconcilePartition(t *testing.T) {
	s, _ := newTestScene()
	pos := map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4}
	spec := pointSpec(pos, 0)

	diff := Reconcile(s, "g", spec, []string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, diff.Enter)
	assert.Empty(t, diff.Update)
	assert.Empty(t, diff.Exit)

	diff = Reconcile(s, "g", spec, []string{"b", "c", "d"})
	assert.Equal(t, []string{"d"}, diff.Enter)
	assert.Equal(t, []string{"b", "c"}, sorted(diff.Update))
	assert.Equal(t, []string{"a"}, diff.Exit)

	all := append(append(append([]string{}, diff.Enter...), diff.Update...), diff.Exit...)
	assert.Equal(t, []string{"a", "b", "c", "d"}, sorted(all))

	// Zero duration exits remove at once.
	var keys []string
	for _, e := range s.Layer("g", "points") {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"b", "c", "d"}, keys)
}

func TestReconcileUpdateInPlace(t *testing.T) {
	s, _ := newTestScene()
	pos := map[string]float64{"650": 10, "700": 20, "1070": 30}
	spec := pointSpec(pos, time.Second)

	Reconcile(s, "g", spec, []string{"650", "700", "1070"})
	before, ok := s.Lookup("g", "points", "650")
	require.True(t, ok)

	diff := Reconcile(s, "g", spec, []string{"650"})
	assert.Len(t, diff.Exit, 2)
	assert.Equal(t, []string{"650"}, diff.Update)
	assert.Empty(t, diff.Enter)
	assert.Equal(t, 0, diff.Changed)

	after, ok := s.Lookup("g", "points", "650")
	require.True(t, ok)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Version, after.Version)
	assert.Equal(t, Present, after.State)

	s.Settle()
	assert.Len(t, s.Layer("g", "points"), 1)
}

func TestReconcileGeometryChange(t *testing.T) {
	s, _ := newTestScene()
	pos := map[string]float64{"a": 1}
	spec := pointSpec(pos, 0)
	Reconcile(s, "g", spec, []string{"a"})

	pos["a"] = 50
	diff := Reconcile(s, "g", spec, []string{"a"})
	assert.Equal(t, 1, diff.Changed)
	e, _ := s.Lookup("g", "points", "a")
	assert.Equal(t, 50.0, e.Geometry.Y1)
	assert.Equal(t, 1, e.Version)
}

func TestExitRetargetsToNewScale(t *testing.T) {
	s, clock := newTestScene()
	scale := 1.0
	spec := LayerSpec[float64]{
		Name: "outliers",
		Geometry: func(v float64, _ int) Geometry {
			return Geometry{Kind: Circle, X1: 5, Y1: v * scale, R: 3}
		},
		Duration: time.Second,
	}
	Reconcile(s, "g", spec, []float64{10, 20})

	scale = 3
	diff := Reconcile(s, "g", spec, []float64{10})
	assert.Equal(t, []string{"20"}, diff.Exit)

	e, ok := s.Lookup("g", "outliers", "20")
	require.True(t, ok)
	assert.Equal(t, Exiting, e.State)

	assert.Equal(t, 1, s.Tick(clock.add(500*time.Millisecond)))
	e, _ = s.Lookup("g", "outliers", "20")
	// Half way from the old position 20 to the new position 60.
	assert.InDelta(t, 40, e.Geometry.Y1, 1e-9)
	assert.InDelta(t, 0.5, e.Opacity, 1e-6)

	assert.Equal(t, 0, s.Tick(clock.add(500*time.Millisecond)))
	_, ok = s.Lookup("g", "outliers", "20")
	assert.False(t, ok)
}

func TestReviveExitingElement(t *testing.T) {
	s, clock := newTestScene()
	pos := map[string]float64{"a": 1, "b": 2}
	spec := pointSpec(pos, time.Second)

	Reconcile(s, "g", spec, []string{"a", "b"})
	first, _ := s.Lookup("g", "points", "b")

	Reconcile(s, "g", spec, []string{"a"})
	s.Tick(clock.add(300 * time.Millisecond))
	e, _ := s.Lookup("g", "points", "b")
	assert.Equal(t, Exiting, e.State)

	diff := Reconcile(s, "g", spec, []string{"a", "b"})
	assert.Equal(t, []string{"b"}, diff.Enter)

	// The stale exit must not remove the revived element.
	s.Tick(clock.add(2 * time.Second))
	e, ok := s.Lookup("g", "points", "b")
	require.True(t, ok)
	assert.Equal(t, first.ID, e.ID)
	assert.Equal(t, Entering, e.State)
	assert.Equal(t, 1.0, e.Opacity)
	assert.Equal(t, 0, s.Pending())

	Reconcile(s, "g", spec, []string{"a", "b"})
	e, _ = s.Lookup("g", "points", "b")
	assert.Equal(t, Present, e.State)
}

func TestExitingElementKeepsDeadline(t *testing.T) {
	s, clock := newTestScene()
	spec := LayerSpec[float64]{
		Name: "outliers",
		Geometry: func(v float64, _ int) Geometry {
			return Geometry{Kind: Circle, Y1: v}
		},
		Duration: time.Second,
	}
	Reconcile(s, "g", spec, []float64{10})
	diff := Reconcile(s, "g", spec, nil)
	assert.Equal(t, []string{"10"}, diff.Exit)

	// Cycles faster than the exit neither report nor restart it.
	for i := 0; i < 3; i++ {
		s.Tick(clock.add(300 * time.Millisecond))
		diff = Reconcile(s, "g", spec, nil)
		assert.Empty(t, diff.Exit)
		assert.Empty(t, diff.Enter)
	}

	s.Tick(clock.add(200 * time.Millisecond))
	_, ok := s.Lookup("g", "outliers", "10")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Pending())
}

func TestFixedLayerNeverExits(t *testing.T) {
	s, _ := newTestScene()
	spec := LayerSpec[float64]{
		Name:     "median",
		Key:      ByIndex[float64],
		Geometry: func(v float64, _ int) Geometry { return Geometry{Kind: Line, Y1: v, Y2: v} },
		Fixed:    true,
	}
	Reconcile(s, "g", spec, []float64{5})
	diff := Reconcile(s, "g", spec, []float64{7})
	assert.Empty(t, diff.Enter)
	assert.Equal(t, []string{"0"}, diff.Update)
	assert.Empty(t, diff.Exit)

	diff = Reconcile(s, "g", spec, nil)
	assert.Empty(t, diff.Exit)
	assert.Len(t, s.Layer("g", "median"), 1)
}

func TestFadeIn(t *testing.T) {
	s, clock := newTestScene()
	spec := pointSpec(map[string]float64{"a": 1}, time.Second)
	spec.FadeIn = true

	Reconcile(s, "g", spec, []string{"a"})
	e, _ := s.Lookup("g", "points", "a")
	assert.Equal(t, 0.0, e.Opacity)
	assert.Equal(t, Entering, e.State)

	s.Tick(clock.add(500 * time.Millisecond))
	e, _ = s.Lookup("g", "points", "a")
	assert.InDelta(t, 0.5, e.Opacity, 1e-9)

	s.Tick(clock.add(time.Second))
	e, _ = s.Lookup("g", "points", "a")
	assert.Equal(t, 1.0, e.Opacity)
	assert.Equal(t, Present, e.State)
}

func TestLayerOrder(t *testing.T) {
	s, _ := newTestScene()
	line := func(name string, before ...string) LayerSpec[int] {
		return LayerSpec[int]{
			Name:     name,
			Geometry: func(int, int) Geometry { return Geometry{Kind: Line} },
			Before:   before,
		}
	}

	// The center line does not exist in the first cycle.
	Reconcile(s, "g", line("box"), []int{1})
	Reconcile(s, "g", line("text"), []int{1})
	Reconcile(s, "g", line("center", "box"), []int{1})
	Reconcile(s, "g", line("circle", "text"), []int{1})

	var layers []string
	for _, e := range s.Elements() {
		layers = append(layers, e.Layer)
	}
	assert.Equal(t, []string{"center", "box", "circle", "text"}, layers)
}

func TestDuplicateKeysLastWins(t *testing.T) {
	s, _ := newTestScene()
	spec := LayerSpec[float64]{
		Name:     "outliers",
		Geometry: func(v float64, i int) Geometry { return Geometry{Kind: Circle, X1: float64(i), Y1: v} },
	}
	diff := Reconcile(s, "g", spec, []float64{650, 1070, 650, 1070})
	assert.Equal(t, []string{"650", "1070"}, diff.Enter)

	els := s.Layer("g", "outliers")
	require.Len(t, els, 2)
	assert.Equal(t, 2.0, els[0].Geometry.X1)
	assert.Equal(t, 2, els[0].Index)
}

func TestTooltipAttached(t *testing.T) {
	s, _ := newTestScene()
	spec := pointSpec(map[string]float64{"a": 1}, 0)
	spec.Tooltip = func(d string, _ int) []TooltipItem {
		return []TooltipItem{{DisplayName: "", Value: d}}
	}
	Reconcile(s, "g", spec, []string{"a"})
	e, _ := s.Lookup("g", "points", "a")
	assert.Equal(t, []TooltipItem{{Value: "a"}}, e.Tooltip)
}

func TestExitContainer(t *testing.T) {
	s, clock := newTestScene()
	spec := pointSpec(map[string]float64{"a": 1, "b": 2}, time.Second)
	s.Container("g1", 0, 10)
	s.Container("g2", 100, 10)
	Reconcile(s, "g1", spec, []string{"a"})
	Reconcile(s, "g2", spec, []string{"a", "b"})

	s.ExitContainer("g2", time.Second, nil)
	assert.Equal(t, []string{"g1", "g2"}, s.Containers())
	for _, e := range s.Layer("g2", "points") {
		assert.Equal(t, Exiting, e.State)
		assert.Equal(t, [2]float64{100, 10}, e.Origin)
	}

	// A second exit leaves the running one alone.
	s.Tick(clock.add(500 * time.Millisecond))
	s.ExitContainer("g2", time.Second, nil)
	s.Tick(clock.add(600 * time.Millisecond))
	assert.Equal(t, []string{"g1"}, s.Containers())

	Reconcile(s, "g2", spec, []string{"a", "b"})
	s.ExitContainer("g2", time.Second, nil)

	s.Tick(clock.add(2 * time.Second))
	assert.Equal(t, []string{"g1"}, s.Containers())
}

func TestExitContainerRetargets(t *testing.T) {
	s, clock := newTestScene()
	scale := 1.0
	spec := LayerSpec[float64]{
		Name: "outliers",
		Geometry: func(v float64, _ int) Geometry {
			return Geometry{Kind: Circle, X1: 5, Y1: v * scale, R: 3}
		},
		Duration: time.Second,
	}
	Reconcile(s, "g", spec, []float64{10, 20})

	scale = 3
	s.ExitContainer("g", time.Second, spec.Retarget)
	s.Tick(clock.add(500 * time.Millisecond))
	ys := []float64{}
	for _, e := range s.Layer("g", "outliers") {
		ys = append(ys, e.Geometry.Y1)
	}
	// Half way to 30 and 60.
	assert.InDeltaSlice(t, []float64{20, 40}, ys, 1e-9)

	s.Settle()
	assert.Empty(t, s.Containers())
}

func TestSchedulerCancel(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	sched := NewScheduler(clock)
	done := 0
	h := sched.Schedule(time.Second, nil, func() { done++ })
	assert.True(t, h.Active())
	h.Cancel()
	assert.False(t, h.Active())
	assert.Equal(t, 0, sched.Advance(clock.add(2*time.Second)))
	assert.Equal(t, 0, done)

	h = sched.Schedule(0, nil, func() { done++ })
	assert.Equal(t, 1, done)
	assert.False(t, h.Active())
}

func TestEaseCubicInOut(t *testing.T) {
	for _, tc := range []struct{ t, want float64 }{
		{0, 0}, {0.5, 0.5}, {1, 1}, {0.25, 0.0625}, {0.75, 0.9375},
	} {
		if got := EaseCubicInOut(tc.t); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("EaseCubicInOut(%g) = %g, want %g", tc.t, got, tc.want)
		}
	}
}

func TestLerp(t *testing.T) {
	a := Geometry{Kind: Line, X1: 0, Y1: 10, X2: 4, Y2: 10}
	b := Geometry{Kind: Line, X1: 2, Y1: 20, X2: 4, Y2: 30, Text: "x"}
	g := Lerp(a, b, 0.5)
	assert.Equal(t, Geometry{Kind: Line, X1: 1, Y1: 15, X2: 4, Y2: 20, Text: "x"}, g)
}
