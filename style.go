package boxwhisker

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// SetAlpha returns c with its alpha scaled by a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*a + 0.5)
	return n
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "", "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the on/off pattern of lt in multiples of the line width.
// Solid and blank lines have no pattern.
func (lt LineType) Dashes() []float64 {
	switch lt {
	case DashedLine:
		return []float64{4, 4}
	case DottedLine:
		return []float64{1, 3}
	case DotDashLine:
		return []float64{1, 3, 4, 3}
	case LongdashLine:
		return []float64{8, 4}
	case TwodashLine:
		return []float64{2, 2, 6, 2}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.NRGBA{
	"red":       {0xff, 0x00, 0x00, 0xff},
	"green":     {0x00, 0xff, 0x00, 0xff},
	"blue":      {0x00, 0x00, 0xff, 0xff},
	"steelblue": {0x46, 0x82, 0xb4, 0xff},
	"cyan":      {0x00, 0xff, 0xff, 0xff},
	"magenta":   {0xff, 0x00, 0xff, 0xff},
	"yellow":    {0xff, 0xff, 0x00, 0xff},
	"white":     {0xff, 0xff, 0xff, 0xff},
	"gray20":    {0x33, 0x33, 0x33, 0xff},
	"gray40":    {0x66, 0x66, 0x66, 0xff},
	"gray":      {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":    {0x99, 0x99, 0x99, 0xff},
	"gray80":    {0xcc, 0xcc, 0xcc, 0xff},
	"black":     {0x00, 0x00, 0x00, 0xff},
	"none":      {0x00, 0x00, 0x00, 0x00},
}

// String2Color parses "#rrggbb", "#rrggbbaa" and the names in
// BuiltinColors. Anything else is a translucent pink.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}
