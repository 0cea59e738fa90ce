package boxwhisker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/op/go-logging"

	"github.com/vdobler/boxwhisker/scene"
	"github.com/vdobler/boxwhisker/stat"
)

var validate = validator.New()

// Margin around the plot area in pixel.
type Margin struct {
	Top    float64 `validate:"gte=0"`
	Right  float64 `validate:"gte=0"`
	Bottom float64 `validate:"gte=0"`
	Left   float64 `validate:"gte=0"`
}

// DefaultMargin leaves room for the axis on the left and the group labels
// at the bottom.
var DefaultMargin = Margin{Top: 10, Right: 50, Bottom: 70, Left: 70}

// minPlotSize is the smallest width and height of the plot area.
const minPlotSize = 30

// Options control how groups are modeled and drawn.
type Options struct {
	// Quantiles used for box and whiskers.
	Quantiles stat.Config

	// OutlierFactor widens the whisker fence by this multiple of the
	// IQR. Zero flags everything beyond the whiskers.
	OutlierFactor float64 `validate:"gte=0"`

	// StrictOutliers reports every outlier once even when it is found
	// by both scans.
	StrictOutliers bool

	// IndexWhiskers, if set, selects whiskers by index and flags
	// everything outside them. OutlierFactor is ignored then.
	IndexWhiskers stat.WhiskerFunc

	// ShowLabels draws the value labels next to box and whiskers.
	ShowLabels bool

	// ShowDataPoints draws the non outlier observations.
	ShowDataPoints bool

	// TickFormat formats labels and tooltips. Nil derives a format
	// from the scale.
	TickFormat func(float64) string

	// Duration of enter and exit transitions.
	Duration time.Duration `validate:"gte=0"`

	// Width and Height of the whole drawing, margins included.
	Width  float64 `validate:"gt=0"`
	Height float64 `validate:"gt=0"`
	Margin Margin

	// Goal draws a horizontal line at this value.
	Goal *float64

	// Polylinear switches to the three point scale.
	Polylinear bool

	// Logger for warnings and reconcile diagnostics. Nil discards.
	Logger *logging.Logger `validate:"-"`

	// Clock drives transitions. Nil is the wall clock.
	Clock scene.Clock `validate:"-"`
}

// DefaultOptions returns the options of a 800x500 plot with labels and
// data points.
func DefaultOptions() Options {
	return Options{
		Quantiles:      stat.DefaultConfig,
		ShowLabels:     true,
		ShowDataPoints: true,
		Duration:       time.Second,
		Width:          800,
		Height:         500,
		Margin:         DefaultMargin,
	}
}

// PlotArea is the size of the plot area, at least minPlotSize each way.
func (o *Options) PlotArea() (w, h float64) {
	w = o.Width - o.Margin.Left - o.Margin.Right
	h = o.Height - o.Margin.Top - o.Margin.Bottom
	if w < minPlotSize {
		w = minPlotSize
	}
	if h < minPlotSize {
		h = minPlotSize
	}
	return w, h
}

// -------------------------------------------------------------------------
// Plot

// Plot draws groups as box plots into a retained scene and updates the
// scene incrementally when the groups change.
type Plot struct {
	opts  Options
	scene *scene.Scene
	log   *logging.Logger

	// labels of the containers of the last update
	containers StringSet
}

// Band is the horizontal slot of one group.
type Band struct {
	Label     string
	Container string
	X, Width  float64
}

// Frame is the outcome of one Update.
type Frame struct {
	Scale  DisplayScale
	Models []*Model
	Bands  []Band
	Diffs  []scene.Diff

	// Ticks of the value axis and the format of all labels.
	Ticks  []float64
	Format func(float64) string

	// Dropped joins the reasons for groups left out, nil if none.
	Dropped error
}

// Labels of the tick values.
func (f *Frame) Labels() []string {
	labels := make([]string, len(f.Ticks))
	for i, t := range f.Ticks {
		labels[i] = f.Format(t)
	}
	return labels
}

// New returns a plot with an empty scene.
func New(opts Options) (*Plot, error) {
	p := &Plot{containers: NewStringSet()}
	if err := p.SetOptions(opts); err != nil {
		return nil, err
	}
	p.scene = scene.New(scene.WithClock(p.opts.Clock), scene.WithLogger(p.log))
	return p, nil
}

// SetOptions changes the options used by the next Update.
func (p *Plot) SetOptions(opts Options) error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("boxwhisker: invalid options: %w", err)
	}
	p.opts = opts
	if p.log == nil || opts.Logger != nil {
		p.log = opts.Logger
		if p.log == nil {
			p.log = discardLogger("boxwhisker")
		}
	}
	return nil
}

// Options returns the current options.
func (p *Plot) Options() Options { return p.opts }

// Scene returns the retained scene. The host calls Tick on it to run
// transitions and reads Elements to paint.
func (p *Plot) Scene() *scene.Scene { return p.scene }

func (p *Plot) Warnf(f string, args ...interface{}) {
	p.log.Warningf(strings.TrimSuffix(f, "\n"), args...)
}

// Update reconciles the scene with groups. Groups which cannot be modeled
// are dropped with a warning; the update fails only if none is left.
func (p *Plot) Update(groups []Group) (*Frame, error) {
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}
	models, dropped := BuildModels(groups, p.opts)
	if dropped != nil {
		p.Warnf("dropping groups: %v", dropped)
	}
	if len(models) == 0 {
		return nil, errors.Join(ErrNoUsableGroups, dropped)
	}

	w, h := p.opts.PlotArea()
	sc, err := DeriveScale(models, h, p.opts.Goal, p.opts.Polylinear)
	if err != nil {
		return nil, err
	}
	format := p.opts.TickFormat
	if format == nil {
		format = sc.TickFormat(8)
	}
	frame := &Frame{
		Scale:   sc,
		Models:  models,
		Ticks:   sc.Ticks(8),
		Format:  format,
		Dropped: dropped,
	}
	p.log.Debugf("%s", sc)

	offsets, width := bands(len(models), 0, w, 0.7, 0.3)
	keep := NewStringSet()
	for i, m := range models {
		name := containerName(m.Label, keep)
		keep.Add(name)
		x := p.opts.Margin.Left + offsets[i]
		p.scene.Container(name, x, p.opts.Margin.Top)
		frame.Bands = append(frame.Bands, Band{Label: m.Label, Container: name, X: x, Width: width})

		lay := &layout{scale: sc, width: width, format: format, opts: &p.opts}
		for _, g := range BoxGeoms {
			frame.Diffs = append(frame.Diffs, g.reconcile(p.scene, name, m, lay))
		}
	}

	p.scene.Container(goalContainer, p.opts.Margin.Left, p.opts.Margin.Top)
	lay := &layout{scale: sc, width: w, format: format, opts: &p.opts}
	frame.Diffs = append(frame.Diffs, GeomGoal{}.reconcile(p.scene, goalContainer, nil, lay))

	gone := boxRetarget(&layout{scale: sc, width: width, format: format, opts: &p.opts})
	for _, name := range p.containers.Elements() {
		if !keep.Contains(name) {
			p.log.Debugf("group container %q exits", name)
			p.scene.ExitContainer(name, p.opts.Duration, gone)
		}
	}
	p.containers = keep
	return frame, nil
}

const goalContainer = "goal"

// containerName derives a unique container name for a group label.
func containerName(label string, taken StringSet) string {
	name := "group/" + label
	for i := 2; taken.Contains(name); i++ {
		name = fmt.Sprintf("group/%s#%d", label, i)
	}
	return name
}
