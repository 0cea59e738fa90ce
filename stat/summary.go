package stat

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmpty is returned when statistics are requested for an empty
// observation set.
var ErrEmpty = errors.New("stat: empty observation set")

// Config selects the four quantile fractions of a box plot: the low
// whisker, the two box edges and the high whisker.
//
// The fractions are used as given. Nothing enforces Low < Q1 < Q3 < High;
// overlapping or inverted fractions yield whiskers inside the box or an
// inverted box, which is the caller's choice to make.
type Config struct {
	Low  float64 `yaml:"low" toml:"low"`
	Q1   float64 `yaml:"q1" toml:"q1"`
	Q3   float64 `yaml:"q3" toml:"q3"`
	High float64 `yaml:"high" toml:"high"`
}

// DefaultConfig has whiskers at the 5th and 95th percentile and the box
// spanning the quartiles.
var DefaultConfig = Config{Low: 0.05, Q1: 0.25, Q3: 0.75, High: 0.95}

// QuartileConfig puts the whiskers at the extremes of the data.
var QuartileConfig = Config{Low: 0, Q1: 0.25, Q3: 0.75, High: 1}

func (c Config) String() string {
	return fmt.Sprintf("[%g %g %g %g]", c.Low, c.Q1, c.Q3, c.High)
}

// Summary is the statistical summary of one observation set.
type Summary struct {
	Q1          float64 `yaml:"q1" toml:"q1"`
	Median      float64 `yaml:"median" toml:"median"`
	Q3          float64 `yaml:"q3" toml:"q3"`
	LowWhisker  float64 `yaml:"lowWhisker" toml:"lowWhisker"`
	HighWhisker float64 `yaml:"highWhisker" toml:"highWhisker"`
	Mean        float64 `yaml:"mean" toml:"mean"`
	Minimum     float64 `yaml:"minimum" toml:"minimum"`
	Maximum     float64 `yaml:"maximum" toml:"maximum"`
	NumPoints   int     `yaml:"numPoints" toml:"numPoints"`
}

// Unknown marks a statistic of a Summary which was not supplied. Only
// Mean, Minimum and Maximum may be unknown.
var Unknown = math.NaN()

// HasMean reports whether the mean of s is known.
func (s Summary) HasMean() bool { return !math.IsNaN(s.Mean) }

// IQR is the spread of the box, Q3 - Q1.
func (s Summary) IQR() float64 { return s.Q3 - s.Q1 }

// Summarize computes the summary of the ascending sequence sorted for the
// quantile fractions in cfg. The median always is the 0.5 quantile.
func Summarize(sorted []float64, cfg Config) (Summary, error) {
	n := len(sorted)
	if n == 0 {
		return Summary{}, ErrEmpty
	}
	return Summary{
		Q1:          Quantile(sorted, cfg.Q1),
		Median:      Quantile(sorted, 0.5),
		Q3:          Quantile(sorted, cfg.Q3),
		LowWhisker:  Quantile(sorted, cfg.Low),
		HighWhisker: Quantile(sorted, cfg.High),
		Mean:        Mean(sorted),
		Minimum:     sorted[0],
		Maximum:     sorted[n-1],
		NumPoints:   n,
	}, nil
}
