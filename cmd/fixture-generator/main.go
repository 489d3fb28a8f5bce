// Package main provides the CLI entrypoint for fixture-generator.
//
// fixture-generator prints synthetic test data:
//   - scalar values from any named generator or gofakeit template
//   - populated demo fixtures (products, customers, orders) as YAML
//   - the effective configuration, to start a config file from
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Error("fixture-generator failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "fixture-generator"
	app.Usage = "generate synthetic test fixtures"
	app.Version = "0.1.0"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "config file path",
		},
		cli.StringFlag{
			Name:  "log, l",
			Usage: "log level: debug,info,warning,error (overrides the config file)",
		},
		cli.Uint64Flag{
			Name:  "seed",
			Usage: "seed the random source for reproducible output (overrides the config file)",
		},
		cli.StringFlag{
			Name:  "string-length",
			Usage: "string length range as MIN,MAX (MAX exclusive)",
		},
		cli.StringFlag{
			Name:  "collection-count",
			Usage: "collection count range as MIN,MAX (MAX exclusive)",
		},
		cli.BoolFlag{
			Name:  "progress",
			Usage: "show a progress bar on stderr",
		},
	}

	app.Before = setup

	app.Commands = []cli.Command{
		{
			Name:      "scalar",
			Usage:     "print values of a named generator, one per line",
			ArgsUsage: "<generator|template>",
			Flags:     []cli.Flag{countFlag},
			Action:    scalarAction,
		},
		{
			Name:      "sample",
			Usage:     "print populated demo fixtures as YAML",
			ArgsUsage: "<product|customer|order>",
			Flags:     []cli.Flag{countFlag},
			Action:    sampleAction,
		},
		{
			Name:   "generators",
			Usage:  "list the built-in generator names",
			Action: generatorsAction,
		},
		{
			Name:   "config",
			Usage:  "print the effective configuration as YAML",
			Action: configAction,
		},
	}

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	return app
}

var countFlag = cli.IntFlag{
	Name:  "n",
	Usage: fmt.Sprintf("number of values to print (1 to %d)", maxCount),
	Value: 1,
}
