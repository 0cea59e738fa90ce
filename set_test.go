package boxwhisker

import (
	"math"
	"testing"
)

func TestFloatSet(t *testing.T) {
	a := NewFloatSetFrom([]float64{17, -2, 17, math.NaN()})
	if len(a) != 2 || !a.Contains(-2) || !a.Contains(17) {
		t.Errorf("Got a = %v", a)
	}

	a.Add(0)
	a.Add(99)
	a.Del(99)
	if got := a.String(); got != "[-2 0 17]" {
		t.Errorf("Got a = %s", got)
	}

	a.Remove([]float64{0, 17, 42})
	elem := a.Elements()
	if len(elem) != 1 || elem[0] != -2 {
		t.Errorf("Got elem = %v", elem)
	}
	if a.Contains(17) {
		t.Errorf("a contains 17")
	}
}

func TestFloatSetDataPoints(t *testing.T) {
	// Unique values not flagged as outliers, in ascending order.
	points := []float64{650, 650, 700, 940, 940, 1070, 1070}
	s := NewFloatSetFrom(points)
	s.Remove([]float64{650, 1070})
	elem := s.Elements()
	if len(elem) != 2 || elem[0] != 700 || elem[1] != 940 {
		t.Errorf("Got elem = %v", elem)
	}
}

func TestStringSet(t *testing.T) {
	a := NewStringSet()
	a.Add("fish")
	a.Add("cat")
	a.Add("dog")
	a.Add("dog")
	if len(a) != 3 || !a.Contains("dog") || a.Contains("cow") {
		t.Errorf("Got a = %v", a)
	}
	elem := a.Elements()
	if len(elem) != 3 || elem[0] != "cat" || elem[2] != "fish" {
		t.Errorf("Got elem = %v", elem)
	}
}
