package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/npillmayer/bst/report"
	"github.com/npillmayer/bst/workload"
	"github.com/urfave/cli/v2"
)

// sampler is one of workload.AverageHeights and workload.InsertTimes.
type sampler func(context.Context, workload.Config, []int, *workload.Progress) ([]workload.Sample, error)

type experiment struct {
	title, ylabel string
	series        string
	unit          string
	sample        sampler
	theory        func(int) float64 // optional
}

func runHeight(cctx *cli.Context) error {
	return runExperiment(cctx, experiment{
		title:  "Average height of random binary search trees",
		ylabel: "height",
		series: "average height",
		sample: workload.AverageHeights,
		theory: workload.Theoretical,
	})
}

func runInsert(cctx *cli.Context) error {
	return runExperiment(cctx, experiment{
		title:  "Building a random tree and inserting into it",
		ylabel: "µs",
		series: "build and insert",
		unit:   "µs",
		sample: workload.InsertTimes,
	})
}

func configFrom(cctx *cli.Context) (workload.Config, error) {
	cfg := workload.DefaultConfig()
	cfg.TreesPerRun = cctx.Int("trees")
	cfg.Start = cctx.Int("start")
	cfg.Window = workload.Window{Min: cctx.Duration("window-min"), Max: cctx.Duration("window-max")}
	cfg.Points = cctx.Int("points")
	cfg.Workers = cctx.Int("workers")
	cfg.Seed = cctx.Uint64("seed")
	return cfg, cfg.Validate()
}

func runExperiment(cctx *cli.Context, x experiment) error {
	cfg, err := configFrom(cctx)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(cctx.Context)
	defer cancel()
	out := cctx.App.Writer
	noColor := cctx.Bool("no-color")
	var progress *workload.Progress
	var printed chan struct{}
	if !cctx.Bool("quiet") {
		progress = workload.NewProgress(ctx)
		events, ok := progress.Subscribe(ctx)
		if !ok {
			return fmt.Errorf("cannot subscribe to progress events")
		}
		printed = make(chan struct{})
		go func() {
			defer close(printed)
			printProgress(out, events, noColor)
		}()
	}
	nMax := cctx.Int("size")
	if nMax <= 0 {
		rng := rand.New(rand.NewPCG(cfg.Seed, 0))
		nMax, err = workload.NewCalibrator(cfg, progress).Calibrate(ctx, workload.BuildAndInsert(cfg, rng))
		if err != nil {
			closeProgress(progress, printed)
			return err
		}
	}
	start := time.Now()
	samples, err := x.sample(ctx, cfg, workload.Sizes(nMax, cfg.Points), progress)
	closeProgress(progress, printed)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "sampled %d sizes up to %d in %.1f seconds\n\n", len(samples), nMax,
		time.Since(start).Seconds())
	series := []report.Series{toSeries(x.series, x.unit, samples)}
	if x.theory != nil {
		sizes := make([]int, len(samples))
		for i, s := range samples {
			sizes[i] = s.N
		}
		series = append(series, report.Func("1.39·log₂(n)", sizes, x.theory))
	}
	chart := report.Chart{
		Title:   x.title,
		XLabel:  "tree size n",
		YLabel:  x.ylabel,
		Series:  series,
		NoColor: noColor,
	}
	if err := chart.Render(out); err != nil {
		return err
	}
	if path := cctx.String("csv"); path != "" {
		return writeCSV(path, series)
	}
	return nil
}

func toSeries(name, unit string, samples []workload.Sample) report.Series {
	s := report.Series{Name: name, Unit: unit, Points: make([]report.Point, len(samples))}
	for i, sample := range samples {
		s.Points[i] = report.Point{N: sample.N, Y: sample.Value}
	}
	return s
}

func writeCSV(path string, series []report.Series) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return report.WriteCSV(f, series...)
}

// closeProgress closes the broadcaster and waits for the printer to drain.
func closeProgress(progress *workload.Progress, printed chan struct{}) {
	if progress == nil {
		return
	}
	progress.Close()
	<-printed
}

func printProgress(w io.Writer, events <-chan interface{}, noColor bool) {
	label := color.New(color.FgBlue)
	if noColor {
		label.DisableColor()
	}
	for event := range events {
		switch e := event.(type) {
		case workload.Round:
			fmt.Fprintf(w, "%s n=%-9d %6.2f s  %s\n", label.Sprint("calibrate"), e.N,
				e.Elapsed.Seconds(), e.Verdict)
		case workload.Sampled:
			fmt.Fprintf(w, "%s %3d/%-3d n=%-9d %.3f\n", label.Sprint("sample"), e.Done, e.Total,
				e.Sample.N, e.Sample.Value)
		}
	}
}
