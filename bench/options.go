// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mmbench/workerpool"
)

// Option configures the collaborators of Run.
type Option func(*options)

type options struct {
	now  func() time.Time
	log  zerolog.Logger
	pool *workerpool.Pool
}

// WithClock replaces the wall-clock reader used to time each pass.
// A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the structured logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithPool runs parallel passes on a persistent pool instead of spawning
// goroutines per pass. The caller keeps ownership and closes the pool.
func WithPool(p *workerpool.Pool) Option {
	return func(o *options) { o.pool = p }
}

func gatherOptions(opts ...Option) options {
	o := options{
		now: time.Now,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
