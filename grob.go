package boxwhisker

import (
	"github.com/vdobler/boxwhisker/scene"
)

// Grobs are the graphical objects of one box, in coordinates relative to
// the group container. The y values are already mapped through the scale.

// labelDY is the baseline shift of tick labels (0.3em at 10px).
const labelDY = 3

const (
	meanRadius    = 4
	outlierRadius = 3
	labelDX       = 6
)

// -------------------------------------------------------------------------
// Grob Line

func grobHLine(x0, x1, y float64) scene.Geometry {
	return scene.Geometry{Kind: scene.Line, X1: x0, Y1: y, X2: x1, Y2: y}
}

func grobVLine(x, y0, y1 float64) scene.Geometry {
	return scene.Geometry{Kind: scene.Line, X1: x, Y1: y0, X2: x, Y2: y1}
}

// -------------------------------------------------------------------------
// Grob Rect

// grobRect spans x0..x1 horizontally and top..bottom vertically. A
// bottom above top yields a negative height which is kept as is.
func grobRect(x0, x1, top, bottom float64) scene.Geometry {
	return scene.Geometry{Kind: scene.Rect, X1: x0, Y1: top, X2: x1, Y2: bottom}
}

// -------------------------------------------------------------------------
// Grob Point

func grobCircle(x, y, r float64) scene.Geometry {
	return scene.Geometry{Kind: scene.Circle, X1: x, Y1: y, R: r}
}

// -------------------------------------------------------------------------
// Grob Text

// grobLabel is a tick label next to x. Labels right of x are left
// aligned, labels left of x are right aligned.
func grobLabel(x, y float64, right bool, text string) scene.Geometry {
	g := scene.Geometry{Kind: scene.Text, X1: x, Y1: y, DY: labelDY, Text: text}
	if right {
		g.DX, g.Anchor = labelDX, scene.AnchorStart
	} else {
		g.DX, g.Anchor = -labelDX, scene.AnchorEnd
	}
	return g
}
