// Package workerpool runs a producer/consumer demo over the conqueue
// two-lock queue: N producers push distinct integers, M consumers poll them
// back out, and shutdown is signalled by one poison value per consumer once
// all producers have finished. The pool talks to the queue only through its
// public operations.
package workerpool

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/xyhelper/conqueue"
)

// poison is pushed once per consumer after all producers finish. Real
// payloads are always non-negative, so the value can never collide with one.
const poison = -1

// Result carries the pool's final tallies.
type Result struct {
	Produced int64
	Consumed int64
}

// Balanced reports whether every produced value was consumed exactly once.
func (r Result) Balanced() bool {
	return r.Produced == r.Consumed
}

// Pool owns the queue and the worker lifecycle for one demo run.
type Pool struct {
	cfg   Config
	log   *slog.Logger
	queue *conqueue.Queue[int]
}

// New creates a pool for the given configuration.
// A nil logger falls back to slog.Default.
func New(cfg Config, logger *slog.Logger) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		cfg:   cfg,
		log:   logger,
		queue: conqueue.New[int](),
	}, nil
}

// Run starts all producers and consumers and blocks until every worker has
// exited. Producers push cfg.ItemsPerProducer distinct values each; once they
// are done, Run pushes one poison per consumer so the consumers drain the
// queue and stop. On context cancellation the workers stop early and Run
// returns the context error alongside the partial tallies.
func (p *Pool) Run(ctx context.Context) (Result, error) {
	var produced, consumed atomic.Int64

	consumers, cctx := errgroup.WithContext(ctx)
	for c := 0; c < p.cfg.Consumers; c++ {
		id := c
		consumers.Go(func() error {
			return p.consume(cctx, id, &consumed)
		})
	}

	producers, pctx := errgroup.WithContext(ctx)
	for w := 0; w < p.cfg.Producers; w++ {
		base := w * p.cfg.ItemsPerProducer
		producers.Go(func() error {
			return p.produce(pctx, base, &produced)
		})
	}

	err := producers.Wait()
	p.log.Debug("producers finished", "produced", produced.Load())

	// Even after a producer error the consumers must be released, so the
	// poisons are pushed unconditionally.
	for c := 0; c < p.cfg.Consumers; c++ {
		p.queue.Enqueue(poison)
	}

	if cerr := consumers.Wait(); err == nil {
		err = cerr
	}

	res := Result{Produced: produced.Load(), Consumed: consumed.Load()}
	p.log.Info("pool finished",
		"produced", res.Produced,
		"consumed", res.Consumed,
		"balanced", res.Balanced(),
	)
	return res, err
}

func (p *Pool) produce(ctx context.Context, base int, produced *atomic.Int64) error {
	for i := 0; i < p.cfg.ItemsPerProducer; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		p.queue.Enqueue(base + i)
		produced.Add(1)
	}
	return nil
}

func (p *Pool) consume(ctx context.Context, id int, consumed *atomic.Int64) error {
	for {
		v, ok := p.queue.Dequeue()
		if !ok {
			// Empty is an expected race with the producers; poll again
			// after yielding unless the run was cancelled.
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				runtime.Gosched()
				continue
			}
		}
		if v == poison {
			p.log.Debug("consumer shutting down", "consumer", id)
			return nil
		}
		consumed.Add(1)
	}
}
