// Package boxwhisker draws box-and-whisker plots of grouped measurements
// and keeps them up to date incrementally.
//
//
// Groups
//
// A Group is a label and either raw observations or a precomputed
// summary. Measurements kept as a slice of structs can be partitioned
// into groups by a category field and a value field; calculated values
// are provided by methods without parameters:
//    func (m Measurement) BMI() float64 { return m.Weight / (m.Height * m.Height) }
//    groups, err := boxwhisker.Partition(data, "Country", "BMI")
//
//
// Models and Scale
//
// Every group is turned into a Model: quartiles, whiskers at configurable
// quantiles, mean and the outliers selected by the outlier policy. All
// models share one DisplayScale whose top is pulled in towards the median
// of medians so that a few extreme groups do not squash the rest.
//
//
// Updates
//
// A Plot owns a retained scene (see package scene). Each call to Update
// reconciles the scene with new groups: elements whose key is still
// present are updated in place, new ones enter and vanished ones move to
// their position under the new scale while fading out. The host drives
// transitions by calling Tick on the scene and paints the element
// snapshot, e.g. with package render.
package boxwhisker
