package workload

import (
	"context"

	"github.com/guiguan/caster"
)

// Progress broadcasts progress events of calibration (Round) and sampling
// (Sampled) to any number of subscribers. A nil *Progress discards events.
type Progress struct {
	cast *caster.Caster
}

// NewProgress creates a broadcaster. It is closed when ctx is done or when
// Close is called.
func NewProgress(ctx context.Context) *Progress {
	return &Progress{cast: caster.New(ctx)}
}

// Subscribe returns a channel receiving events published after the call.
// The channel is closed when the broadcaster or ctx is done. Subscribers have to
// keep up with reading, as publishing blocks on full channels.
func (p *Progress) Subscribe(ctx context.Context) (<-chan interface{}, bool) {
	ch, ok := p.cast.Sub(ctx, 16)
	return ch, ok
}

// Close stops the broadcaster and closes all subscriber channels.
func (p *Progress) Close() {
	p.cast.Close()
}

func (p *Progress) publish(event interface{}) {
	if p == nil {
		return
	}
	if !p.cast.Pub(event) {
		tracer().Debugf("progress: event dropped, broadcaster closed: %v", event)
	}
}
