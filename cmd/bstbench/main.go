// Command bstbench explores persistent binary search trees: it measures the
// average height of random trees and the cost of inserting into them, and shows
// the shape of small trees.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/npillmayer/bst/workload"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newApp(os.Stdout).RunContext(ctx, args)
}

func newApp(out io.Writer) *cli.App {
	defaults := workload.DefaultConfig()
	app := &cli.App{
		Name:    "bstbench",
		Usage:   "measure and inspect persistent binary search trees",
		Version: versioninfo.Short(),
		Writer:  out,
		Before:  setupTracing,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "trace",
			Usage:   "trace level: error, info or debug",
			Value:   "error",
			EnvVars: []string{"BST_TRACE"},
		},
		&cli.BoolFlag{
			Name:    "no-color",
			Usage:   "disable colored output",
			EnvVars: []string{"NO_COLOR"},
		},
	}
	benchFlags := []cli.Flag{
		&cli.IntFlag{
			Name:    "trees",
			Aliases: []string{"t"},
			Usage:   "number of random trees per measurement",
			Value:   defaults.TreesPerRun,
			EnvVars: []string{"BST_TREES_PER_RUN"},
		},
		&cli.IntFlag{
			Name:  "start",
			Usage: "tree size to start calibration with",
			Value: defaults.Start,
		},
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"n"},
			Usage:   "largest tree size; skips calibration if positive",
		},
		&cli.DurationFlag{
			Name:  "window-min",
			Usage: "lower bound of the calibration target duration",
			Value: defaults.Window.Min,
		},
		&cli.DurationFlag{
			Name:  "window-max",
			Usage: "upper bound of the calibration target duration",
			Value: defaults.Window.Max,
		},
		&cli.IntFlag{
			Name:  "points",
			Usage: "number of intervals between 0 and the largest size",
			Value: defaults.Points,
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"j"},
			Usage:   "number of sizes sampled concurrently",
			Value:   defaults.Workers,
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "seed for random number generators",
			Value:   defaults.Seed,
			EnvVars: []string{"BST_SEED"},
		},
		&cli.StringFlag{
			Name:  "csv",
			Usage: "write measurements as CSV to this file",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "do not print progress",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "height",
			Usage:  "plot the average height of random trees over their size",
			Flags:  benchFlags,
			Action: runHeight,
		},
		{
			Name:   "insert",
			Usage:  "plot the average time to build a random tree and insert into it",
			Flags:  benchFlags,
			Action: runInsert,
		},
		{
			Name:      "show",
			Usage:     "build a tree of integers and print it",
			ArgsUsage: "<int>...",
			Flags: []cli.Flag{
				&cli.IntSliceFlag{
					Name:    "delete",
					Aliases: []string{"d"},
					Usage:   "values to delete after inserting",
				},
				&cli.BoolFlag{
					Name:  "verify",
					Usage: "check the tree invariants",
				},
			},
			Action: runShow,
		},
	}
	return app
}

// setupTracing routes tracing of all packages to a Go logger on stderr.
func setupTracing(cctx *cli.Context) error {
	tracer := gologadapter.New()
	tracer.SetTraceLevel(tracing.TraceLevelFromString(cctx.String("trace")))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return tracer }))
	return nil
}
