package main

import (
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/vdobler/boxwhisker"
)

var StatsCommand = cli.Command{
	Action:    statsAction,
	Name:      "stats",
	Usage:     "print the summary of every group",
	ArgsUsage: "[data.yaml|data.toml]",
	Flags:     plotFlags,
}

func statsAction(ctx *cli.Context) error {
	_, ms, err := models(ctx)
	if err != nil {
		return err
	}
	statsTable(ctx.App.Writer, ms)
	return nil
}

// statsTable sends a formatted table of the models into w.
func statsTable(w io.Writer, ms []*boxwhisker.Model) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Group", "N", "Low", "Q1", "Median", "Q3", "High", "Mean", "Outliers"})
	tbl.SetBorder(true)

	f := func(x float64) string {
		if math.IsNaN(x) {
			return "-"
		}
		return strconv.FormatFloat(x, 'g', 6, 64)
	}
	for _, m := range ms {
		s := m.Summary
		lo, hi := math.NaN(), math.NaN()
		if m.HasWhiskers() {
			lo, hi = m.Whiskers[0], m.Whiskers[1]
		}
		tbl.Append([]string{
			m.Label,
			strconv.Itoa(s.NumPoints),
			f(lo), f(s.Q1), f(s.Median), f(s.Q3), f(hi),
			f(s.Mean),
			strconv.Itoa(len(m.Outliers)),
		})
	}

	tbl.Render()
}
