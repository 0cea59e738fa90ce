package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/vdobler/boxwhisker"
	"github.com/vdobler/boxwhisker/dataset"
	"github.com/vdobler/boxwhisker/stat"
)

var (
	LogLevelFlag = cli.StringFlag{
		Name:    "log",
		Aliases: []string{"l"},
		Usage:   "Level of the logging (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
		Value:   "warning",
	}
	LowFlag = cli.Float64Flag{
		Name:  "low",
		Usage: "quantile of the low whisker",
		Value: stat.DefaultConfig.Low,
	}
	Q1Flag = cli.Float64Flag{
		Name:  "q1",
		Usage: "quantile of the lower box edge",
		Value: stat.DefaultConfig.Q1,
	}
	Q3Flag = cli.Float64Flag{
		Name:  "q3",
		Usage: "quantile of the upper box edge",
		Value: stat.DefaultConfig.Q3,
	}
	HighFlag = cli.Float64Flag{
		Name:  "high",
		Usage: "quantile of the high whisker",
		Value: stat.DefaultConfig.High,
	}
	OutlierFactorFlag = cli.Float64Flag{
		Name:  "outlier-factor",
		Usage: "extend the outlier fence by this multiple of the IQR",
	}
	StrictFlag = cli.BoolFlag{
		Name:  "strict",
		Usage: "report each outlier once",
	}
	FullRangeFlag = cli.BoolFlag{
		Name:  "full-range",
		Usage: "put the whiskers on the extremes of the data",
	}
	WidthFlag = cli.Float64Flag{
		Name:  "width",
		Usage: "width of the drawing in points",
		Value: 800,
	}
	HeightFlag = cli.Float64Flag{
		Name:  "height",
		Usage: "height of the drawing in points",
		Value: 500,
	}
	LabelsFlag = cli.BoolFlag{
		Name:  "labels",
		Usage: "label box and whiskers with their values",
		Value: true,
	}
	PointsFlag = cli.BoolFlag{
		Name:  "points",
		Usage: "draw the observations which are not outliers",
		Value: true,
	}
	PolylinearFlag = cli.BoolFlag{
		Name:  "polylinear",
		Usage: "use the three point scale around the median of medians",
	}
	GoalFlag = cli.Float64Flag{
		Name:  "goal",
		Usage: "draw a goal line at this value",
	}
)

var plotFlags = []cli.Flag{
	&LogLevelFlag,
	&LowFlag,
	&Q1Flag,
	&Q3Flag,
	&HighFlag,
	&OutlierFactorFlag,
	&StrictFlag,
	&FullRangeFlag,
	&WidthFlag,
	&HeightFlag,
	&LabelsFlag,
	&PointsFlag,
	&PolylinearFlag,
	&GoalFlag,
}

// loadDataset reads the data set named by the first argument or returns
// the built-in playground data.
func loadDataset(ctx *cli.Context) (*dataset.Dataset, error) {
	if ctx.NArg() == 0 {
		return dataset.Playground(), nil
	}
	if ctx.NArg() > 1 {
		return nil, fmt.Errorf("too many arguments: %v", ctx.Args().Slice())
	}
	return dataset.Open(ctx.Args().First())
}

// plotOptions builds the plot options from the flags. A goal given on the
// command line replaces the one of the data set.
func plotOptions(ctx *cli.Context, ds *dataset.Dataset) boxwhisker.Options {
	opts := boxwhisker.DefaultOptions()
	opts.Quantiles = stat.Config{
		Low:  ctx.Float64(LowFlag.Name),
		Q1:   ctx.Float64(Q1Flag.Name),
		Q3:   ctx.Float64(Q3Flag.Name),
		High: ctx.Float64(HighFlag.Name),
	}
	opts.OutlierFactor = ctx.Float64(OutlierFactorFlag.Name)
	opts.StrictOutliers = ctx.Bool(StrictFlag.Name)
	if ctx.Bool(FullRangeFlag.Name) {
		opts.IndexWhiskers = stat.FullRange
	}
	opts.Width = ctx.Float64(WidthFlag.Name)
	opts.Height = ctx.Float64(HeightFlag.Name)
	opts.ShowLabels = ctx.Bool(LabelsFlag.Name)
	opts.ShowDataPoints = ctx.Bool(PointsFlag.Name)
	opts.Polylinear = ctx.Bool(PolylinearFlag.Name)
	opts.Goal = ds.Goal
	if ctx.IsSet(GoalFlag.Name) {
		g := ctx.Float64(GoalFlag.Name)
		opts.Goal = &g
	}
	opts.Logger = boxwhisker.NewLogger(os.Stderr, ctx.String(LogLevelFlag.Name), "boxwhisker")
	return opts
}

// models computes the models of the data set without drawing.
func models(ctx *cli.Context) (*dataset.Dataset, []*boxwhisker.Model, error) {
	ds, err := loadDataset(ctx)
	if err != nil {
		return nil, nil, err
	}
	groups, err := ds.Groups()
	if err != nil {
		return nil, nil, err
	}
	opts := plotOptions(ctx, ds)
	ms, dropped := boxwhisker.BuildModels(groups, opts)
	if dropped != nil {
		opts.Logger.Warningf("dropping groups: %v", dropped)
	}
	if len(ms) == 0 {
		return nil, nil, boxwhisker.ErrNoUsableGroups
	}
	return ds, ms, nil
}
