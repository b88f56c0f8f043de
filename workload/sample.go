package workload

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/npillmayer/bst/result"
	"golang.org/x/sync/errgroup"
)

// Sample is a measurement for a tree size.
type Sample struct {
	N     int
	Value float64
}

// Sampled is a progress event, published whenever a size has been measured.
type Sampled struct {
	Index  int // index of the size
	Done   int // number of sizes measured so far
	Total  int
	Sample Sample
}

// measure computes a value for tree size n > 0.
type measure func(ctx context.Context, rng *rand.Rand, n int) (float64, error)

// AverageHeights measures the average height of cfg.TreesPerRun random trees
// for every size of sizes. Sizes are measured concurrently by cfg.Workers
// goroutines, each with its own random number generator, seeded from cfg.Seed and
// the index of the size. Results are therefore reproducible.
func AverageHeights(ctx context.Context, cfg Config, sizes []int, progress *Progress) ([]Sample, error) {
	return sampleSizes(ctx, cfg, sizes, progress, meanHeight(cfg.TreesPerRun))
}

// InsertTimes measures, for every size of sizes, the average time in µs it takes
// to build a random tree and insert one more random value into it.
//
// Concurrent workers compete for CPU and memory bandwidth; set cfg.Workers to 1
// for undisturbed timings.
func InsertTimes(ctx context.Context, cfg Config, sizes []int, progress *Progress) ([]Sample, error) {
	return sampleSizes(ctx, cfg, sizes, progress, meanInsertMicros(cfg.TreesPerRun))
}

func meanHeight(trees int) measure {
	return func(ctx context.Context, rng *rand.Rand, n int) (float64, error) {
		total := 0
		for i := 0; i < trees; i++ {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			total += RandomTree(rng, n).Height()
		}
		return float64(total) / float64(trees), nil
	}
}

func meanInsertMicros(trees int) measure {
	return func(ctx context.Context, rng *rand.Rand, n int) (float64, error) {
		start := time.Now()
		for i := 0; i < trees; i++ {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			_ = RandomTree(rng, n).Insert(rng.Float64())
		}
		micros := float64(time.Since(start).Nanoseconds()) / 1e3
		return micros / float64(trees), nil
	}
}

type outcome struct {
	index int
	res   result.Result[Sample]
}

func sampleSizes(ctx context.Context, cfg Config, sizes []int, progress *Progress, m measure) ([]Sample, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	outcomes := make(chan outcome)
	var waitErr error
	go func() {
		for i, n := range sizes {
			g.Go(func() error {
				rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
				r := measureSize(gctx, rng, n, m)
				outcomes <- outcome{index: i, res: r}
				_, err := r.Get()
				return err
			})
		}
		waitErr = g.Wait()
		close(outcomes)
	}()
	samples := make([]Sample, len(sizes))
	done := 0
	for o := range outcomes {
		var s Sample
		var err error
		switch x := o.res.Match(); x {
		case x.Ok(&s):
			samples[o.index] = s
			done++
			tracer().Debugf("sample %d/%d: n=%d → %.3f", done, len(sizes), s.N, s.Value)
			progress.publish(Sampled{Index: o.index, Done: done, Total: len(sizes), Sample: s})
		case x.Err(&err):
			tracer().Errorf("sample for n=%d failed: %v", sizes[o.index], err)
		}
	}
	if waitErr != nil {
		return nil, waitErr
	}
	return samples, nil
}

func measureSize(ctx context.Context, rng *rand.Rand, n int, m measure) result.Result[Sample] {
	if n <= 0 {
		return result.Ok(Sample{N: n})
	}
	v, err := m(ctx, rng, n)
	if err != nil {
		return result.Err[Sample](err)
	}
	return result.Ok(Sample{N: n, Value: v})
}
