package scene

import (
	"fmt"
	"strconv"
	"time"
)

// LayerSpec describes how the data items of one layer map to elements.
type LayerSpec[T any] struct {
	// Name of the layer, unique within its container.
	Name string

	// Key extracts the identity of a data item. Nil compares items
	// by value, see ByValue.
	Key func(d T, i int) string

	// Geometry computes the geometry of a data item under the current
	// scale. It is also applied to the old datum of exiting elements.
	Geometry func(d T, i int) Geometry

	// Tooltip builds the tooltip payload of an element. May be nil.
	Tooltip func(d T, i int) []TooltipItem

	// Before lists the layers a newly created layer is inserted in
	// front of. The first one present wins.
	Before []string

	// Fixed layers always hold the same number of elements and never
	// produce exits.
	Fixed bool

	// FadeIn makes entering elements fade in over Duration.
	FadeIn bool

	// Duration of exit (and fade in) transitions.
	Duration time.Duration
}

// Retarget returns the geometry of the datum of e under the current
// Geometry func, or the geometry of e if its datum is not a T.
func (spec LayerSpec[T]) Retarget(e *Element) Geometry {
	if d, ok := e.Datum.(T); ok {
		return spec.Geometry(d, e.Index)
	}
	return e.Geometry
}

// ByValue is the default key: the formatted value of the item.
func ByValue[T any](d T, _ int) string { return fmt.Sprintf("%v", d) }

// ByIndex keys items by their position in the data.
func ByIndex[T any](_ T, i int) string { return strconv.Itoa(i) }

// Diff lists the keys of one reconcile cycle of a layer. Enter, Update and
// Exit are disjoint.
type Diff struct {
	Container string
	Layer     string
	Enter     []string
	Update    []string
	Exit      []string

	// Changed counts the updated elements whose geometry changed.
	Changed int
}

func (d Diff) String() string {
	return fmt.Sprintf("%s/%s: %d enter, %d update (%d changed), %d exit",
		d.Container, d.Layer, len(d.Enter), len(d.Update), d.Changed, len(d.Exit))
}

// Reconcile matches data against the elements of the named layer of a
// container.
//
// Items whose key matches an element update it in place without
// animation. Items without a match enter as new elements; an element
// matched while exiting is revived instead. Elements without a matching
// item exit: they move to the geometry of their old datum under the
// current Geometry func while fading out, and are removed afterwards.
// Elements already exiting are left to their running exit and are not
// reported again.
//
// Items sharing a key share one element, the last item wins.
func Reconcile[T any](s *Scene, containerName string, spec LayerSpec[T], data []T) Diff {
	c := s.container(containerName)
	l := c.layer(spec.Name, spec.Before)
	key := spec.Key
	if key == nil {
		key = ByValue[T]
	}
	diff := Diff{Container: c.name, Layer: l.name}

	seen := make(map[string]bool, len(data))
	for i, d := range data {
		k := key(d, i)
		dup := seen[k]
		if dup {
			s.log.Debugf("%s/%s: duplicate key %q, last item wins", c.name, l.name, k)
		}
		seen[k] = true

		g := spec.Geometry(d, i)
		e, ok := l.index[k]
		switch {
		case !ok:
			e = s.newElement(c, l, k)
			e.Geometry = g
			e.State = Entering
			e.Opacity = 1
			if spec.FadeIn && spec.Duration > 0 {
				e.Opacity = 0
				s.fadeIn(e, spec.Duration)
			}
			diff.Enter = append(diff.Enter, k)

		case e.State == Exiting:
			e.setHandle(nil)
			e.State = Entering
			if e.Geometry != g {
				e.Geometry = g
				e.Version++
			}
			if spec.FadeIn && spec.Duration > 0 {
				s.fadeIn(e, spec.Duration)
			} else {
				e.Opacity = 1
			}
			diff.Enter = append(diff.Enter, k)

		default:
			if e.Geometry != g {
				e.Geometry = g
				e.Version++
				if !dup {
					diff.Changed++
				}
			}
			if !dup {
				// A running fade in is left to finish.
				if !e.handle.Active() {
					e.Opacity = 1
				}
				e.State = Present
				diff.Update = append(diff.Update, k)
			}
		}
		e.Datum, e.Index = d, i
		if spec.Tooltip != nil {
			e.Tooltip = spec.Tooltip(d, i)
		}
	}

	if !spec.Fixed {
		for _, e := range append([]*Element(nil), l.elems...) {
			// Exiting elements keep their running exit.
			if seen[e.Key] || e.State == Exiting {
				continue
			}
			diff.Exit = append(diff.Exit, e.Key)
			s.exit(c, l, e, spec.Retarget(e), spec.Duration)
		}
	}

	s.log.Debugf("%s", diff)
	return diff
}
