package dispatch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Policy names accepted by Config.Policy.
const (
	PolicySequential = "sequential"
	PolicyParallel   = "parallel"
)

// SendFunc attempts a single item. A non-nil error marks the item as failed.
type SendFunc func(ctx context.Context, req Request) error

// Policy decides how a batch is walked. Implementations must call send exactly
// once per item and account for every item in the returned Outcome.
type Policy interface {
	Run(ctx context.Context, batch []Request, send SendFunc) Outcome
}

// Config selects and tunes the dispatch policy.
type Config struct {
	Policy      string        `env:"DISPATCH_POLICY" envDefault:"sequential"`
	Pacing      time.Duration `env:"DISPATCH_PACING" envDefault:"1s"`
	Workers     int           `env:"DISPATCH_WORKERS" envDefault:"4"`
	LogFailures bool          `env:"DISPATCH_LOG_FAILURES" envDefault:"true"`
}

// NewPolicy builds the policy named by cfg.Policy.
func NewPolicy(cfg Config) (Policy, error) {
	switch cfg.Policy {
	case PolicySequential, "":
		if cfg.Pacing < 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPacing, cfg.Pacing)
		}
		return Sequential{Pacing: cfg.Pacing}, nil
	case PolicyParallel:
		if cfg.Workers < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, cfg.Workers)
		}
		return Parallel{Workers: cfg.Workers}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, cfg.Policy)
	}
}

// Sequential sends one item at a time in input order and waits Pacing after
// every attempt, successful or not.
type Sequential struct {
	Pacing time.Duration
}

// Run implements Policy.
func (p Sequential) Run(ctx context.Context, batch []Request, send SendFunc) Outcome {
	c := newCollector(len(batch))
	for _, req := range batch {
		c.record(req, send(ctx, req))
		if p.Pacing > 0 {
			time.Sleep(p.Pacing)
		}
	}
	return c.outcome()
}

func (p Sequential) String() string {
	return fmt.Sprintf("sequential(pacing=%s)", p.Pacing)
}

// Parallel sends items concurrently on at most Workers goroutines, without pacing.
type Parallel struct {
	Workers int
}

// Run implements Policy. It returns after every item has been attempted.
func (p Parallel) Run(ctx context.Context, batch []Request, send SendFunc) Outcome {
	c := newCollector(len(batch))

	var g errgroup.Group
	g.SetLimit(max(p.Workers, 1))
	for _, req := range batch {
		g.Go(func() error {
			c.record(req, send(ctx, req))
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return c.outcome()
}

func (p Parallel) String() string {
	return fmt.Sprintf("parallel(workers=%d)", p.Workers)
}
