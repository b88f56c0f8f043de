package workload

import (
	"fmt"
	"runtime"
	"time"
)

// Config holds the parameters for calibrating and sampling workloads.
type Config struct {
	TreesPerRun int     // number of random trees per measurement
	Start       int     // tree size to start calibration with
	Window      Window  // target duration of a calibration batch
	Grow        float64 // factor for the tree size if a batch is too fast
	Shrink      float64 // factor for the tree size if a batch is too slow
	MaxRounds   int     // calibration gives up after this many rounds
	Points      int     // number of intervals between 0 and the calibrated size
	Workers     int     // number of sizes sampled concurrently
	Seed        uint64  // seed for random number generators
}

// Window is a range of durations, bounds included.
type Window struct {
	Min, Max time.Duration
}

// DefaultConfig returns the configuration of the classic experiment:
// 10,000 trees per run, batches of 1.5 to 2.5 seconds, 50 intervals.
func DefaultConfig() Config {
	return Config{
		TreesPerRun: 10000,
		Start:       1000,
		Window:      Window{Min: 1500 * time.Millisecond, Max: 2500 * time.Millisecond},
		Grow:        1.5,
		Shrink:      0.8,
		MaxRounds:   64,
		Points:      50,
		Workers:     runtime.GOMAXPROCS(0),
		Seed:        1,
	}
}

// Validate checks if a configuration is usable.
func (c Config) Validate() error {
	switch {
	case c.TreesPerRun <= 0:
		return fmt.Errorf("%w: trees per run must be positive, is %d", ErrInvalidConfig, c.TreesPerRun)
	case c.Start <= 0:
		return fmt.Errorf("%w: start size must be positive, is %d", ErrInvalidConfig, c.Start)
	case c.Window.Min <= 0 || c.Window.Max < c.Window.Min:
		return fmt.Errorf("%w: window [%v,%v] is empty", ErrInvalidConfig, c.Window.Min, c.Window.Max)
	case c.Grow <= 1:
		return fmt.Errorf("%w: grow factor must exceed 1, is %g", ErrInvalidConfig, c.Grow)
	case c.Shrink <= 0 || c.Shrink >= 1:
		return fmt.Errorf("%w: shrink factor must be in (0,1), is %g", ErrInvalidConfig, c.Shrink)
	case c.MaxRounds <= 0:
		return fmt.Errorf("%w: max rounds must be positive, is %d", ErrInvalidConfig, c.MaxRounds)
	case c.Points <= 0:
		return fmt.Errorf("%w: points must be positive, is %d", ErrInvalidConfig, c.Points)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, is %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

func (w Window) judge(d time.Duration) Verdict {
	switch {
	case d < w.Min:
		return TooFast
	case d > w.Max:
		return TooSlow
	}
	return InWindow
}
