package main

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/urfave/cli/v2"

	"github.com/vdobler/boxwhisker"
)

var HTMLOutputFlag = cli.StringFlag{
	Name:    "out",
	Aliases: []string{"o"},
	Usage:   "output html file",
	Value:   "boxwhisker.html",
}

var HTMLCommand = cli.Command{
	Action:    htmlAction,
	Name:      "html",
	Usage:     "write an interactive html page of the box plot",
	ArgsUsage: "[data.yaml|data.toml]",
	Flags:     append([]cli.Flag{&HTMLOutputFlag}, plotFlags...),
}

func htmlAction(ctx *cli.Context) error {
	ds, ms, err := models(ctx)
	if err != nil {
		return err
	}
	f, err := os.Create(ctx.String(HTMLOutputFlag.Name))
	if err != nil {
		return err
	}
	if err := writeHTML(f, ds.Title, ms); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeHTML renders a box plot chart of the models with the outliers
// overlaid as scatter points.
func writeHTML(w io.Writer, title string, ms []*boxwhisker.Model) error {
	if title == "" {
		title = "Box and whisker plot"
	}
	labels := make([]string, len(ms))
	boxes := make([]opts.BoxPlotData, len(ms))
	var outliers []opts.ScatterData
	for i, m := range ms {
		labels[i] = m.Label
		s := m.Summary
		// Without whiskers they collapse onto the box.
		lo, hi := s.Q1, s.Q3
		if m.HasWhiskers() {
			lo, hi = m.Whiskers[0], m.Whiskers[1]
		}
		boxes[i] = opts.BoxPlotData{
			Name:  m.Label,
			Value: []float64{lo, s.Q1, s.Median, s.Q3, hi},
		}
		for _, v := range boxwhisker.NewFloatSetFrom(m.Outliers).Elements() {
			outliers = append(outliers, opts.ScatterData{Value: []interface{}{m.Label, v}, SymbolSize: 6})
		}
	}

	bp := charts.NewBoxPlot()
	bp.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	bp.SetXAxis(labels).AddSeries("Groups", boxes)

	sc := charts.NewScatter()
	sc.AddSeries("Outliers", outliers)
	bp.Overlap(sc)

	return bp.Render(w)
}
