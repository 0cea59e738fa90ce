package scene

import "fmt"

// Kind is the kind of visual primitive.
type Kind int

const (
	Line Kind = iota
	Rect
	Circle
	Text
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Rect:
		return "rect"
	case Circle:
		return "circle"
	case Text:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Anchor is the horizontal text anchor.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Geometry describes where and how a primitive is drawn in the local
// coordinates of its container. Y grows downward.
//
//	Line:   from (X1,Y1) to (X2,Y2)
//	Rect:   corners (X1,Y1) and (X2,Y2)
//	Circle: center (X1,Y1), radius R
//	Text:   anchor point (X1,Y1) shifted by (DX,DY)
type Geometry struct {
	Kind           Kind
	X1, Y1, X2, Y2 float64
	R              float64
	DX, DY         float64
	Anchor         Anchor
	Text           string
}

// Width of a Rect.
func (g Geometry) Width() float64 { return g.X2 - g.X1 }

// Height of a Rect.
func (g Geometry) Height() float64 { return g.Y2 - g.Y1 }

// Lerp interpolates the numeric fields of a and b at t in [0,1].
// Kind, anchor and text are taken from b.
func Lerp(a, b Geometry, t float64) Geometry {
	f := func(x, y float64) float64 { return x + (y-x)*t }
	return Geometry{
		Kind:   b.Kind,
		X1:     f(a.X1, b.X1),
		Y1:     f(a.Y1, b.Y1),
		X2:     f(a.X2, b.X2),
		Y2:     f(a.Y2, b.Y2),
		R:      f(a.R, b.R),
		DX:     f(a.DX, b.DX),
		DY:     f(a.DY, b.DY),
		Anchor: b.Anchor,
		Text:   b.Text,
	}
}

// TooltipItem is one line of the tooltip attached to an element.
type TooltipItem struct {
	DisplayName string
	Value       string
}
