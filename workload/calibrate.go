package workload

import (
	"context"
	"fmt"
	"time"
)

// Verdict is the outcome of timing a calibration batch.
type Verdict int

const (
	InWindow Verdict = iota // batch duration within the target window
	TooFast                 // batch finished before the window opened
	TooSlow                 // batch finished after the window closed
)

func (v Verdict) String() string {
	switch v {
	case TooFast:
		return "too fast"
	case TooSlow:
		return "too slow"
	}
	return "in window"
}

// Round is a progress event, published for every timed calibration batch.
type Round struct {
	Index   int
	N       int
	Elapsed time.Duration
	Verdict Verdict
}

// Calibrator searches for a workload size which makes a batch take a duration
// within the configured window.
type Calibrator struct {
	cfg      Config
	progress *Progress
	now      func() time.Time
}

// NewCalibrator creates a calibrator. progress may be nil.
func NewCalibrator(cfg Config, progress *Progress) *Calibrator {
	return &Calibrator{cfg: cfg, progress: progress, now: time.Now}
}

// Calibrate times batch(n), starting with n = cfg.Start. If a batch is too fast,
// n grows by factor cfg.Grow, if it is too slow, n shrinks by factor cfg.Shrink.
// The first n with a batch duration inside the window is returned.
//
// Calibration checks ctx between batches; a batch itself runs to completion.
func (c *Calibrator) Calibrate(ctx context.Context, batch func(n int)) (int, error) {
	if err := c.cfg.Validate(); err != nil {
		return 0, err
	}
	n := c.cfg.Start
	for i := 0; i < c.cfg.MaxRounds; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		start := c.now()
		batch(n)
		elapsed := c.now().Sub(start)
		round := Round{Index: i, N: n, Elapsed: elapsed, Verdict: c.cfg.Window.judge(elapsed)}
		tracer().Infof("calibrate: n=%d: %.2f seconds, %s", n, elapsed.Seconds(), round.Verdict)
		c.progress.publish(round)
		switch round.Verdict {
		case InWindow:
			return n, nil
		case TooFast:
			n = max(int(float64(n)*c.cfg.Grow), n+1)
		case TooSlow:
			n = max(int(float64(n)*c.cfg.Shrink), 1)
		}
	}
	return 0, fmt.Errorf("%w after %d rounds", ErrNoConvergence, c.cfg.MaxRounds)
}

// Calibrate is a shortcut for calibrating without progress reporting.
func Calibrate(ctx context.Context, cfg Config, batch func(n int)) (int, error) {
	return NewCalibrator(cfg, nil).Calibrate(ctx, batch)
}
