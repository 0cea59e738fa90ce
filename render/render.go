// Package render paints scene snapshots and plot axes on a vg.Canvas.
//
// Scene coordinates have their origin in the top left corner with y
// growing downward. One scene unit is one point.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/vdobler/boxwhisker"
	"github.com/vdobler/boxwhisker/scene"
)

// Painter draws in scene coordinates on a canvas of the given height.
type Painter struct {
	Canvas vg.Canvas
	Height vg.Length
	Theme  boxwhisker.Theme
}

func (p *Painter) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: p.Height - vg.Length(y)}
}

// Draw paints elems in order.
func (p *Painter) Draw(elems []scene.Element) error {
	for _, e := range elems {
		if err := p.element(e); err != nil {
			return fmt.Errorf("render %s: %w", &e, err)
		}
	}
	return nil
}

func (p *Painter) element(e scene.Element) error {
	if e.Opacity <= 0 {
		return nil
	}
	st := p.Theme.Style(e.Layer)
	ox, oy := e.Origin[0], e.Origin[1]
	g := e.Geometry

	switch g.Kind {
	case scene.Line:
		var path vg.Path
		path.Move(p.pt(ox+g.X1, oy+g.Y1))
		path.Line(p.pt(ox+g.X2, oy+g.Y2))
		p.stroke(path, st, e.Opacity)

	case scene.Rect:
		x0, x1 := ox+math.Min(g.X1, g.X2), ox+math.Max(g.X1, g.X2)
		y0, y1 := oy+math.Min(g.Y1, g.Y2), oy+math.Max(g.Y1, g.Y2)
		var path vg.Path
		path.Move(p.pt(x0, y0))
		path.Line(p.pt(x1, y0))
		path.Line(p.pt(x1, y1))
		path.Line(p.pt(x0, y1))
		path.Close()
		p.fill(path, st, e.Opacity)
		p.stroke(path, st, e.Opacity)

	case scene.Circle:
		cx, cy := ox+g.X1, oy+g.Y1
		var path vg.Path
		path.Move(p.pt(cx+g.R, cy))
		path.Arc(p.pt(cx, cy), vg.Length(g.R), 0, 2*math.Pi)
		path.Close()
		p.fill(path, st, e.Opacity)
		p.stroke(path, st, e.Opacity)

	case scene.Text:
		return p.text(ox+g.X1+g.DX, oy+g.Y1+g.DY, g.Anchor, g.Text, e.Opacity)

	default:
		return fmt.Errorf("unknown kind %s", g.Kind)
	}
	return nil
}

func (p *Painter) stroke(path vg.Path, st boxwhisker.Style, opacity float64) {
	lt := boxwhisker.String2LineType(st.LineType)
	if st.Stroke == "" || st.LineWidth <= 0 || lt == boxwhisker.BlankLine {
		return
	}
	w := vg.Length(st.LineWidth)
	var dashes []vg.Length
	for _, d := range lt.Dashes() {
		dashes = append(dashes, vg.Length(d)*w)
	}
	p.Canvas.SetLineWidth(w)
	p.Canvas.SetLineDash(dashes, 0)
	p.Canvas.SetColor(boxwhisker.SetAlpha(st.StrokeColor(), opacity))
	p.Canvas.Stroke(path)
}

func (p *Painter) fill(path vg.Path, st boxwhisker.Style, opacity float64) {
	if st.Fill == "" {
		return
	}
	p.Canvas.SetColor(boxwhisker.SetAlpha(st.FillColor(), opacity))
	p.Canvas.Fill(path)
}

// text draws s with its baseline at y, horizontally placed by anchor.
func (p *Painter) text(x, y float64, anchor scene.Anchor, s string, opacity float64) error {
	if s == "" {
		return nil
	}
	font, err := vg.MakeFont(p.Theme.Font, vg.Points(p.Theme.FontSize))
	if err != nil {
		return err
	}
	at := p.pt(x, y)
	switch anchor {
	case scene.AnchorMiddle:
		at.X -= font.Width(s) / 2
	case scene.AnchorEnd:
		at.X -= font.Width(s)
	}
	p.Canvas.SetColor(boxwhisker.SetAlpha(boxwhisker.String2Color(p.Theme.Text), opacity))
	p.Canvas.FillString(font, at, s)
	return nil
}

// Axes draws the value axis with the tick labels of frame left of the
// plot area and the group labels below it.
func (p *Painter) Axes(frame *boxwhisker.Frame, opts boxwhisker.Options) error {
	_, h := opts.PlotArea()
	left, top := opts.Margin.Left, opts.Margin.Top
	axis := frame.Scale.Shift(top)
	st := boxwhisker.Style{Stroke: p.Theme.Text, LineWidth: 1}

	var path vg.Path
	path.Move(p.pt(left, top))
	path.Line(p.pt(left, top+h))
	p.stroke(path, st, 1)

	labels := frame.Labels()
	for i, t := range frame.Ticks {
		y := axis.Pos(t)
		var tick vg.Path
		tick.Move(p.pt(left-6, y))
		tick.Line(p.pt(left, y))
		p.stroke(tick, st, 1)
		if err := p.text(left-9, y+3, scene.AnchorEnd, labels[i], 1); err != nil {
			return err
		}
	}
	for _, b := range frame.Bands {
		if err := p.text(b.X+b.Width/2, top+h+20, scene.AnchorMiddle, b.Label, 1); err != nil {
			return err
		}
	}
	return nil
}

// -------------------------------------------------------------------------
// Output files

// WriterCanvas is a canvas which can write itself out.
type WriterCanvas interface {
	vg.Canvas
	io.WriterTo
}

// NewCanvas returns a canvas of w x h points writing the format given by
// the file extension: png, jpg, tiff, svg or pdf.
func NewCanvas(filename string, w, h vg.Length) (WriterCanvas, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case ".jpg", ".jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.New(w, h)}, nil
	case ".tif", ".tiff":
		return vgimg.TiffCanvas{Canvas: vgimg.New(w, h)}, nil
	case ".svg":
		return vgsvg.New(w, h), nil
	case ".pdf":
		return vgpdf.New(w, h), nil
	}
	return nil, fmt.Errorf("render: unsupported format %q", filepath.Ext(filename))
}

// Save paints the background, the axes and elems into filename.
func Save(filename string, frame *boxwhisker.Frame, opts boxwhisker.Options, elems []scene.Element, theme boxwhisker.Theme) error {
	w, h := vg.Length(opts.Width), vg.Length(opts.Height)
	c, err := NewCanvas(filename, w, h)
	if err != nil {
		return err
	}
	var bg vg.Path
	bg.Move(vg.Point{})
	bg.Line(vg.Point{X: w})
	bg.Line(vg.Point{X: w, Y: h})
	bg.Line(vg.Point{Y: h})
	bg.Close()
	c.SetColor(color.White)
	c.Fill(bg)

	p := &Painter{Canvas: c, Height: h, Theme: theme}
	if frame != nil {
		if err := p.Axes(frame, opts); err != nil {
			return err
		}
	}
	if err := p.Draw(elems); err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
