package workload

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// fakeClock advances only when a batch tells it to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

// linear returns a batch taking perItem of fake time for each unit of n.
func (c *fakeClock) linear(perItem time.Duration) func(int) {
	return func(n int) {
		c.t = c.t.Add(time.Duration(n) * perItem)
	}
}

func calibratorForTest(cfg Config) (*Calibrator, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	c := NewCalibrator(cfg, nil)
	c.now = clock.now
	return c, clock
}

func TestCalibrateGrows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst.workload")
	defer teardown()
	//
	c, clock := calibratorForTest(DefaultConfig())
	n, err := c.Calibrate(context.Background(), clock.linear(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	// 1000 → 1.0s is too fast, 1500 → 1.5s hits the window
	if n != 1500 {
		t.Errorf("expected calibration to settle at 1500, is %d", n)
	}
}

func TestCalibrateShrinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst.workload")
	defer teardown()
	//
	cfg := DefaultConfig()
	cfg.Start = 4000
	c, clock := calibratorForTest(cfg)
	n, err := c.Calibrate(context.Background(), clock.linear(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	// 4000 → 3200 → 2560 → 2048
	if n != 2048 {
		t.Errorf("expected calibration to settle at 2048, is %d", n)
	}
}

func TestCalibrateGivesUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst.workload")
	defer teardown()
	//
	cfg := DefaultConfig()
	cfg.MaxRounds = 5
	c, clock := calibratorForTest(cfg)
	calls := 0
	slow := func(n int) {
		calls++
		clock.t = clock.t.Add(10 * time.Second)
	}
	_, err := c.Calibrate(context.Background(), slow)
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("expected calibration to fail with ErrNoConvergence, got %v", err)
	}
	if calls != 5 {
		t.Errorf("expected 5 batches, got %d", calls)
	}
}

func TestCalibrateNeverReachesZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = 1
	cfg.MaxRounds = 3
	c, clock := calibratorForTest(cfg)
	var seen []int
	slow := func(n int) {
		seen = append(seen, n)
		clock.t = clock.t.Add(time.Minute)
	}
	_, _ = c.Calibrate(context.Background(), slow)
	for _, n := range seen {
		if n < 1 {
			t.Fatalf("expected sizes to stay positive, saw %v", seen)
		}
	}
	cfg.Start = 1
	c, clock = calibratorForTest(cfg)
	seen = seen[:0]
	fast := func(n int) {
		seen = append(seen, n)
	}
	_, _ = c.Calibrate(context.Background(), fast)
	if len(seen) != 3 || seen[1] <= seen[0] || seen[2] <= seen[1] {
		t.Errorf("expected sizes to grow even from 1, saw %v", seen)
	}
}

func TestCalibrateCancelled(t *testing.T) {
	c, clock := calibratorForTest(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Calibrate(ctx, clock.linear(time.Millisecond)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected calibration to be cancelled, got %v", err)
	}
}

func TestCalibrateInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grow = 0.5
	if _, err := Calibrate(context.Background(), cfg, func(int) {}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected invalid config to be rejected, got %v", err)
	}
}

func TestCalibratePublishesRounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst.workload")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	progress := NewProgress(ctx)
	defer progress.Close()
	events, ok := progress.Subscribe(ctx)
	if !ok {
		t.Fatal("cannot subscribe to progress")
	}
	c, clock := calibratorForTest(DefaultConfig())
	c.progress = progress
	if _, err := c.Calibrate(ctx, clock.linear(time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	var rounds []Round
	for len(rounds) < 2 {
		select {
		case ev := <-events:
			if r, ok := ev.(Round); ok {
				rounds = append(rounds, r)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("expected 2 rounds to be published, got %v", rounds)
		}
	}
	if rounds[0].Verdict != TooFast || rounds[1].Verdict != InWindow || rounds[1].N != 1500 {
		t.Errorf("unexpected rounds %v", rounds)
	}
}

func TestWindowJudge(t *testing.T) {
	w := DefaultConfig().Window
	c := []struct {
		d time.Duration
		v Verdict
	}{
		{time.Second, TooFast},
		{1500 * time.Millisecond, InWindow},
		{2 * time.Second, InWindow},
		{2500 * time.Millisecond, InWindow},
		{3 * time.Second, TooSlow},
	}
	for i, x := range c {
		if v := w.judge(x.d); v != x.v {
			t.Errorf("%d: expected %v to be judged %v, is %v", i, x.d, x.v, v)
		}
	}
}
