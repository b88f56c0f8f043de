/*
Package workload measures the shape and performance of random binary search trees.

It builds trees of uniformly distributed random floats, calibrates a tree size
for a workload to take a target wall-clock time, and samples average tree height
and average insertion time over a range of tree sizes. Trees are used through
their public operations only.

A typical session first calibrates the largest size of interest, then samples
sizes up to it:

	cfg := workload.DefaultConfig()
	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	nMax, err := workload.Calibrate(ctx, cfg, workload.BuildAndInsert(cfg, rng))
	…
	samples, err := workload.AverageHeights(ctx, cfg, workload.Sizes(nMax, cfg.Points), nil)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package workload

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bst.workload'.
func tracer() tracing.Trace {
	return tracing.Select("bst.workload")
}

// WorkloadError is an error type for the workload package.
type WorkloadError string

func (e WorkloadError) Error() string {
	return string(e)
}

// ErrInvalidConfig is flagged for configurations which cannot drive a workload.
const ErrInvalidConfig = WorkloadError("invalid workload configuration")

// ErrNoConvergence is flagged if calibration did not hit the target time window
// within the configured number of rounds.
const ErrNoConvergence = WorkloadError("calibration did not converge")
