// Package scene keeps a persistent set of visual primitives and reconciles
// it against new data with keyed enter/update/exit diffing.
//
// A Scene holds containers (positioned sub-scenes, one per plotted group),
// each with an ordered list of named layers holding elements. The order of
// containers, layers and elements is the painter's order. Elements entering
// or leaving the scene are animated by cancellable transitions which run
// only when the host calls Tick.
//
// A Scene is not safe for concurrent use.
package scene

import (
	"io"
	"time"

	"github.com/op/go-logging"
)

// exitOpacity is the opacity exiting elements fade to before removal.
const exitOpacity = 1e-6

type container struct {
	name    string
	x, y    float64
	layers  []*layer
	exiting bool
}

type layer struct {
	name  string
	elems []*Element
	index map[string]*Element
}

// Scene is the retained element table.
type Scene struct {
	clock      Clock
	sched      *Scheduler
	log        *logging.Logger
	containers []*container
	byName     map[string]*container
	nextID     uint64
}

// Option configures a Scene.
type Option func(*Scene)

// WithClock sets the clock driving transitions.
func WithClock(c Clock) Option {
	return func(s *Scene) { s.clock = c }
}

// WithLogger sets the logger used for reconcile diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(s *Scene) { s.log = l }
}

// New returns an empty scene.
func New(opts ...Option) *Scene {
	s := &Scene{byName: make(map[string]*container)}
	for _, o := range opts {
		o(s)
	}
	if s.clock == nil {
		s.clock = systemClock{}
	}
	if s.log == nil {
		s.log = discardLogger()
	}
	s.sched = NewScheduler(s.clock)
	return s
}

func discardLogger() *logging.Logger {
	l := logging.MustGetLogger("scene")
	l.SetBackend(logging.AddModuleLevel(logging.NewLogBackend(io.Discard, "", 0)))
	return l
}

// Container positions the named container at (x, y), creating it if
// needed. A container which was fading out is kept alive.
func (s *Scene) Container(name string, x, y float64) {
	c := s.container(name)
	c.x, c.y = x, y
	c.exiting = false
}

// Containers returns the names of all containers in painter's order.
func (s *Scene) Containers() []string {
	names := make([]string, len(s.containers))
	for i, c := range s.containers {
		names[i] = c.name
	}
	return names
}

// RetargetFunc computes the geometry an exiting element moves to.
type RetargetFunc func(e *Element) Geometry

// ExitContainer fades out every element of the named container over d and
// removes the container once it is empty. The elements move to the
// geometry returned by retarget; a nil retarget keeps them in place.
// Elements already exiting keep their running exit.
func (s *Scene) ExitContainer(name string, d time.Duration, retarget RetargetFunc) {
	c, ok := s.byName[name]
	if !ok {
		return
	}
	c.exiting = true
	for _, l := range c.layers {
		for _, e := range append([]*Element(nil), l.elems...) {
			if e.State == Exiting {
				continue
			}
			target := e.Geometry
			if retarget != nil {
				target = retarget(e)
			}
			s.exit(c, l, e, target, d)
		}
	}
	s.dropIfDone(c)
}

// Tick advances all running transitions to now and returns the number of
// transitions still running.
func (s *Scene) Tick(now time.Time) int {
	return s.sched.Advance(now)
}

// Settle completes every running transition.
func (s *Scene) Settle() {
	s.sched.Flush()
}

// Pending returns the number of running transitions.
func (s *Scene) Pending() int {
	return s.sched.Pending()
}

// Elements returns a snapshot of all elements in painter's order.
func (s *Scene) Elements() []Element {
	var out []Element
	for _, c := range s.containers {
		for _, l := range c.layers {
			for _, e := range l.elems {
				cp := *e
				cp.handle = nil
				cp.Origin = [2]float64{c.x, c.y}
				out = append(out, cp)
			}
		}
	}
	return out
}

// Layer returns a snapshot of the elements of one layer.
func (s *Scene) Layer(containerName, layerName string) []Element {
	var out []Element
	for _, e := range s.Elements() {
		if e.Container == containerName && e.Layer == layerName {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds the element with the given key.
func (s *Scene) Lookup(containerName, layerName, key string) (Element, bool) {
	c, ok := s.byName[containerName]
	if !ok {
		return Element{}, false
	}
	for _, l := range c.layers {
		if l.name != layerName {
			continue
		}
		if e, ok := l.index[key]; ok {
			cp := *e
			cp.handle = nil
			cp.Origin = [2]float64{c.x, c.y}
			return cp, true
		}
	}
	return Element{}, false
}

func (s *Scene) container(name string) *container {
	if c, ok := s.byName[name]; ok {
		return c
	}
	c := &container{name: name}
	s.containers = append(s.containers, c)
	s.byName[name] = c
	return c
}

// layer returns the named layer of c. A new layer is inserted before the
// first existing layer named in before, or appended.
func (c *container) layer(name string, before []string) *layer {
	for _, l := range c.layers {
		if l.name == name {
			return l
		}
	}
	l := &layer{name: name, index: make(map[string]*Element)}
	pos := len(c.layers)
	for i, other := range c.layers {
		if contains(before, other.name) {
			pos = i
			break
		}
	}
	c.layers = append(c.layers, nil)
	copy(c.layers[pos+1:], c.layers[pos:])
	c.layers[pos] = l
	return l
}

func contains(s []string, t string) bool {
	for _, ss := range s {
		if t == ss {
			return true
		}
	}
	return false
}

func (s *Scene) newElement(c *container, l *layer, key string) *Element {
	s.nextID++
	e := &Element{
		ID:        s.nextID,
		Container: c.name,
		Layer:     l.name,
		Key:       key,
		State:     Absent,
	}
	l.elems = append(l.elems, e)
	l.index[key] = e
	return e
}

func (s *Scene) remove(c *container, l *layer, e *Element) {
	for i, x := range l.elems {
		if x == e {
			l.elems = append(l.elems[:i], l.elems[i+1:]...)
			break
		}
	}
	if l.index[e.Key] == e {
		delete(l.index, e.Key)
	}
	e.State = Absent
	s.dropIfDone(c)
}

func (s *Scene) dropIfDone(c *container) {
	if !c.exiting {
		return
	}
	for _, l := range c.layers {
		if len(l.elems) > 0 {
			return
		}
	}
	for i, x := range s.containers {
		if x == c {
			s.containers = append(s.containers[:i], s.containers[i+1:]...)
			break
		}
	}
	delete(s.byName, c.name)
}

// exit moves e towards target while fading it out and removes it
// afterwards. A running transition of e is superseded.
func (s *Scene) exit(c *container, l *layer, e *Element, target Geometry, d time.Duration) {
	e.setHandle(nil)
	e.State = Exiting
	if d <= 0 {
		s.remove(c, l, e)
		return
	}
	from, fromOpacity := e.Geometry, e.Opacity
	var h *Handle
	h = s.sched.Schedule(d,
		func(t float64) {
			e.Geometry = Lerp(from, target, t)
			e.Opacity = fromOpacity + (exitOpacity-fromOpacity)*t
		},
		func() {
			if e.handle == h && e.State == Exiting {
				s.remove(c, l, e)
			}
		})
	e.handle = h
}

// fadeIn animates the opacity of the entering element e from its current
// value to 1.
func (s *Scene) fadeIn(e *Element, d time.Duration) {
	e.setHandle(nil)
	from := e.Opacity
	var h *Handle
	h = s.sched.Schedule(d,
		func(t float64) { e.Opacity = from + (1-from)*t },
		func() {
			if e.handle == h && e.State == Entering {
				e.State = Present
			}
		})
	e.handle = h
}
