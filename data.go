package boxwhisker

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

// Partition groups the measurements in data by the value of the category
// field and collects the value field of each measurement as observation.
//
// Data must be a slice (or array) of structs or pointers to structs.
// Category and value name either an exported field or a method without
// parameters and a single result. Categories may be of any type and are
// labeled by their fmt.Sprint form; values must be integer, float or
// time.Duration. Groups appear in the order their category is first seen.
func Partition(data interface{}, category, value string) ([]Group, error) {
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("cannot partition %T: need slice of measurements", data)
	}

	var groups []Group
	index := make(map[string]int)
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		cv, err := lookup(elem, category)
		if err != nil {
			return nil, fmt.Errorf("measurement %d: %w", i, err)
		}
		vv, err := lookup(elem, value)
		if err != nil {
			return nil, fmt.Errorf("measurement %d: %w", i, err)
		}
		x, err := toFloat(vv)
		if err != nil {
			return nil, fmt.Errorf("measurement %d: %s: %w", i, value, err)
		}

		label := fmt.Sprint(cv.Interface())
		j, ok := index[label]
		if !ok {
			j = len(groups)
			index[label] = j
			groups = append(groups, Group{Label: label, Values: Observations(nil)})
		}
		groups[j].Values = append(groups[j].Values.(Observations), x)
	}
	return groups, nil
}

// lookup returns the field or the result of the calculated value name of
// the measurement elem.
func lookup(elem reflect.Value, name string) (reflect.Value, error) {
	if m := elem.MethodByName(name); m.IsValid() {
		return call(m, name)
	}
	for elem.Kind() == reflect.Ptr || elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			return reflect.Value{}, fmt.Errorf("nil measurement")
		}
		elem = elem.Elem()
		if m := elem.MethodByName(name); m.IsValid() {
			return call(m, name)
		}
	}
	if elem.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("measurement of type %s is no struct", elem.Type())
	}
	f := elem.FieldByName(name)
	if !f.IsValid() {
		return reflect.Value{}, fmt.Errorf("no field or method %s in %s", name, elem.Type())
	}
	if !f.CanInterface() {
		return reflect.Value{}, fmt.Errorf("field %s of %s is unexported", name, elem.Type())
	}
	return f, nil
}

func call(m reflect.Value, name string) (reflect.Value, error) {
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return reflect.Value{}, fmt.Errorf("method %s must take no arguments and return one value", name)
	}
	return m.Call(nil)[0], nil
}

var durationType = reflect.TypeOf(time.Duration(0))

func toFloat(v reflect.Value) (float64, error) {
	if v.Type() == durationType {
		return time.Duration(v.Int()).Seconds(), nil
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	}
	return 0, fmt.Errorf("cannot use %s as value", v.Type())
}

// FromMap returns one group per key of m, ordered by label.
func FromMap(m map[string][]float64) []Group {
	labels := make([]string, 0, len(m))
	for l := range m {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	groups := make([]Group, len(labels))
	for i, l := range labels {
		groups[i] = Points(l, m[l]...)
	}
	return groups
}
