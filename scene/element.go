package scene

import "fmt"

// State is the lifecycle state of a rendered element.
type State int

const (
	Absent State = iota
	Entering
	Present
	Exiting
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Entering:
		return "entering"
	case Present:
		return "present"
	case Exiting:
		return "exiting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Element is the record of one live visual primitive. Elements survive
// across reconcile cycles; they are identified by container, layer and key.
type Element struct {
	ID        uint64
	Container string
	Layer     string
	Key       string

	// Datum and Index are the data item last bound to the element.
	Datum any
	Index int

	Geometry Geometry
	Opacity  float64
	State    State
	Tooltip  []TooltipItem

	// Version increases whenever Geometry is set to a different value
	// by a reconcile cycle.
	Version int

	// Origin of the container, filled in snapshots only.
	Origin [2]float64

	handle *Handle
}

func (e *Element) String() string {
	return fmt.Sprintf("%s/%s[%s] #%d %s %s", e.Container, e.Layer, e.Key, e.ID, e.State, e.Geometry.Kind)
}

// setHandle replaces any transition running on e.
func (e *Element) setHandle(h *Handle) {
	e.handle.Cancel()
	e.handle = h
}
