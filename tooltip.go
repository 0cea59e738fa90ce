package boxwhisker

import (
	"math"
	"strconv"

	"github.com/vdobler/boxwhisker/scene"
)

// Ordinal returns n with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// 11th, 12th, 13th, 21st and so on.
func Ordinal(n int) string {
	suffix := "th"
	if m := n % 100; m < 11 || m > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// quantileName names the quantile of level q, e.g. "95th quantile". Non
// integral percentages are printed as decimals.
func quantileName(q float64) string {
	pct := q * 100
	if r := math.Round(pct); math.Abs(pct-r) < 1e-9 {
		return Ordinal(int(r)) + " quantile"
	}
	return strconv.FormatFloat(pct, 'f', -1, 64) + "th quantile"
}

func tip(name string, v float64, format func(float64) string) scene.TooltipItem {
	return scene.TooltipItem{DisplayName: name, Value: format(v)}
}

// boxTooltip lists upper quartile, median and lower quartile, top down.
func (lay *layout) boxTooltip(q [3]float64, _ int) []scene.TooltipItem {
	cfg := lay.opts.Quantiles
	return []scene.TooltipItem{
		tip(quantileName(cfg.Q3), q[2], lay.format),
		tip("median", q[1], lay.format),
		tip(quantileName(cfg.Q1), q[0], lay.format),
	}
}

func (lay *layout) medianTooltip(v float64, _ int) []scene.TooltipItem {
	return []scene.TooltipItem{tip("median", v, lay.format)}
}

func (lay *layout) meanTooltip(v float64, _ int) []scene.TooltipItem {
	return []scene.TooltipItem{tip("Mean", v, lay.format)}
}

// whiskerTooltip names the low (i == 0) or high whisker.
func (lay *layout) whiskerTooltip(v float64, i int) []scene.TooltipItem {
	var name string
	switch {
	case lay.opts.IndexWhiskers != nil && i == 0:
		name = "low whisker"
	case lay.opts.IndexWhiskers != nil:
		name = "high whisker"
	case i == 0:
		name = quantileName(lay.opts.Quantiles.Low)
	default:
		name = quantileName(lay.opts.Quantiles.High)
	}
	return []scene.TooltipItem{tip(name, v, lay.format)}
}

// valueTooltip is used for outliers and data points.
func (lay *layout) valueTooltip(v float64, _ int) []scene.TooltipItem {
	return []scene.TooltipItem{tip("", v, lay.format)}
}
