package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/vdobler/boxwhisker"
	"github.com/vdobler/boxwhisker/dataset"
	"github.com/vdobler/boxwhisker/render"
)

var (
	OutputFlag = cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "output file; png, jpg, tiff, svg or pdf",
		Value:   "boxwhisker.png",
	}
	FromFlag = cli.StringFlag{
		Name:  "from",
		Usage: "data set shown before the transition to the main data set",
	}
	AtFlag = cli.Float64Flag{
		Name:  "at",
		Usage: "progress of the transition from --from in [0,1]",
		Value: 1,
	}
)

var RenderCommand = cli.Command{
	Action:    renderAction,
	Name:      "render",
	Usage:     "draw the box plot into an image file",
	ArgsUsage: "[data.yaml|data.toml]",
	Flags:     append([]cli.Flag{&OutputFlag, &FromFlag, &AtFlag}, plotFlags...),
}

// stepClock is advanced by hand to freeze a transition.
type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func renderAction(ctx *cli.Context) error {
	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	groups, err := ds.Groups()
	if err != nil {
		return err
	}
	opts := plotOptions(ctx, ds)
	clock := &stepClock{now: time.Unix(0, 0)}
	opts.Clock = clock
	plt, err := boxwhisker.New(opts)
	if err != nil {
		return err
	}

	if from := ctx.String(FromFlag.Name); from != "" {
		prev, err := dataset.Open(from)
		if err != nil {
			return err
		}
		prevGroups, err := prev.Groups()
		if err != nil {
			return err
		}
		if _, err := plt.Update(prevGroups); err != nil {
			return fmt.Errorf("%s: %w", from, err)
		}
		plt.Scene().Settle()
	}

	frame, err := plt.Update(groups)
	if err != nil {
		return err
	}
	at := ctx.Float64(AtFlag.Name)
	if at >= 1 {
		plt.Scene().Settle()
	} else if at > 0 {
		clock.now = clock.now.Add(time.Duration(at * float64(opts.Duration)))
		plt.Scene().Tick(clock.now)
	}
	opts.Logger.Infof("%d groups, %s", len(frame.Models), frame.Scale)

	out := ctx.String(OutputFlag.Name)
	if err := render.Save(out, frame, plt.Options(), plt.Scene().Elements(), boxwhisker.DefaultTheme); err != nil {
		return err
	}
	opts.Logger.Noticef("wrote %s", out)
	return nil
}
