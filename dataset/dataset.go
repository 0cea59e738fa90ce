// Package dataset reads groups of measurements from YAML and TOML files.
//
// A data set lists its groups in order. Each group has either raw points
// or a precomputed summary with optional outliers:
//
//	title: Response times
//	goal: 900
//	groups:
//	  - label: Test 1
//	    points: [850, 740, 900]
//	  - label: Test 2
//	    summary: {q1: 800, median: 845, q3: 885, lowWhisker: 788.5, highWhisker: 960}
//	    outliers: [760, 960]
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/boxwhisker"
	"github.com/vdobler/boxwhisker/stat"
)

// ErrNoValues is returned for a group with neither points nor summary.
var ErrNoValues = errors.New("dataset: group without points or summary")

// Dataset is the content of one data file.
type Dataset struct {
	Title  string   `yaml:"title" toml:"title"`
	Goal   *float64 `yaml:"goal" toml:"goal"`
	Series []Series `yaml:"groups" toml:"groups"`
}

// Series is one group of a data set.
type Series struct {
	Label    string    `yaml:"label" toml:"label"`
	Points   []float64 `yaml:"points" toml:"points"`
	Summary  *Summary  `yaml:"summary" toml:"summary"`
	Outliers []float64 `yaml:"outliers" toml:"outliers"`
}

// Summary is a precomputed summary. Mean, minimum and maximum are
// optional.
type Summary struct {
	Q1          float64  `yaml:"q1" toml:"q1"`
	Median      float64  `yaml:"median" toml:"median"`
	Q3          float64  `yaml:"q3" toml:"q3"`
	LowWhisker  float64  `yaml:"lowWhisker" toml:"lowWhisker"`
	HighWhisker float64  `yaml:"highWhisker" toml:"highWhisker"`
	Mean        *float64 `yaml:"mean" toml:"mean"`
	Minimum     *float64 `yaml:"minimum" toml:"minimum"`
	Maximum     *float64 `yaml:"maximum" toml:"maximum"`
	NumPoints   int      `yaml:"numPoints" toml:"numPoints"`
}

// Stat converts s, marking left out statistics as stat.Unknown.
func (s *Summary) Stat() stat.Summary {
	opt := func(p *float64) float64 {
		if p == nil {
			return stat.Unknown
		}
		return *p
	}
	return stat.Summary{
		Q1:          s.Q1,
		Median:      s.Median,
		Q3:          s.Q3,
		LowWhisker:  s.LowWhisker,
		HighWhisker: s.HighWhisker,
		Mean:        opt(s.Mean),
		Minimum:     opt(s.Minimum),
		Maximum:     opt(s.Maximum),
		NumPoints:   s.NumPoints,
	}
}

// Groups converts the series to plot groups. Points take precedence over
// a summary.
func (d *Dataset) Groups() ([]boxwhisker.Group, error) {
	groups := make([]boxwhisker.Group, 0, len(d.Series))
	for i, s := range d.Series {
		switch {
		case len(s.Points) > 0:
			groups = append(groups, boxwhisker.Points(s.Label, s.Points...))
		case s.Summary != nil:
			groups = append(groups, boxwhisker.Group{
				Label:  s.Label,
				Values: boxwhisker.Precomputed{Summary: s.Summary.Stat(), Outliers: s.Outliers},
			})
		default:
			return nil, fmt.Errorf("group %d (%q): %w", i, s.Label, ErrNoValues)
		}
	}
	return groups, nil
}

// -------------------------------------------------------------------------
// Decoding

// Decoder is implemented by the yaml and toml decoders.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a DecoderFunc for a specific Decoder type.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

var (
	YAML = NewDecoderFunc(yaml.NewDecoder)
	TOML = NewDecoderFunc(toml.NewDecoder)
)

// Format returns the decoder for a file name by its extension.
func Format(filename string) (DecoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return nil, fmt.Errorf("dataset: unknown format of %s", filename)
}

// Read decodes a data set from r.
func Read(r io.Reader, f DecoderFunc) (*Dataset, error) {
	d := &Dataset{}
	if err := f(r).Decode(d); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	return d, nil
}

// Open reads the data set in filename, choosing the format by extension.
func Open(filename string) (*Dataset, error) {
	f, err := Format(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read(bufio.NewReader(fp), f)
}

// Playground is the built-in sample data set of five tests.
func Playground() *Dataset {
	return &Dataset{
		Title: "Simple box whisker data",
		Series: []Series{
			{Label: "Test 1", Points: []float64{850, 740, 900, 1070, 930, 850, 950, 980, 980, 880, 1000, 980, 930, 650, 760, 810, 1000, 1000, 960, 960}},
			{Label: "Test 2", Points: []float64{960, 940, 960, 940, 880, 800, 850, 880, 900, 840, 830, 790, 810, 880, 880, 830, 800, 790, 760, 800}},
			{Label: "Test 3", Points: []float64{880, 880, 880, 860, 720, 720, 620, 860, 970, 950, 880, 910, 850, 870, 840, 840, 850, 840, 840, 840}},
			{Label: "Test 4", Points: []float64{890, 810, 810, 820, 800, 770, 760, 740, 750, 760, 910, 920, 890, 860, 880, 720, 840, 850, 850, 780}},
			{Label: "Test 5", Points: []float64{890, 840, 780, 810, 760, 810, 790, 810, 820, 850, 870, 870, 810, 740, 810, 940, 950, 800, 810, 870}},
		},
	}
}
