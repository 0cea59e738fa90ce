package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// initApp sets up the command line interface.
func initApp() *cli.App {
	return &cli.App{
		Name:      "boxwhisker",
		HelpName:  "boxwhisker",
		Usage:     "draw box-and-whisker plots of grouped measurements",
		ArgsUsage: "[data.yaml|data.toml]",
		Commands: []*cli.Command{
			&RenderCommand,
			&StatsCommand,
			&HTMLCommand,
		},
	}
}

func main() {
	if err := initApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
