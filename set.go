package boxwhisker

import (
	"fmt"
	"sort"
	"strings"
)

// -------------------------------------------------------------------------
// Float Set

// FloatSet is a set of float64 values. NaN cannot be stored.
type FloatSet map[float64]struct{}

// NewFloatSetFrom returns the set of all values in init.
func NewFloatSetFrom(init []float64) FloatSet {
	s := make(FloatSet, len(init))
	for _, x := range init {
		s.Add(x)
	}
	return s
}

func (s FloatSet) String() string {
	parts := make([]string, 0, len(s))
	for _, x := range s.Elements() {
		parts = append(parts, fmt.Sprintf("%g", x))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Add adds x to s.
func (s FloatSet) Add(x float64) {
	if x != x {
		return
	}
	s[x] = struct{}{}
}

// Del removes x from s.
func (s FloatSet) Del(x float64) {
	delete(s, x)
}

// Contains reports membership of x in s.
func (s FloatSet) Contains(x float64) bool {
	_, ok := s[x]
	return ok
}

// Remove removes all of xs from s.
func (s FloatSet) Remove(xs []float64) {
	for _, x := range xs {
		delete(s, x)
	}
}

// Elements returns the members of s in ascending order.
func (s FloatSet) Elements() []float64 {
	elems := make([]float64, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Float64s(elems)
	return elems
}

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of strings.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Elements returns the members of s in lexical order.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
