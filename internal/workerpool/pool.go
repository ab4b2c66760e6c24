// Package workerpool runs detached units of work on a fixed set of
// goroutines. Callers submit and move on; Shutdown drains what is queued and
// cancels whatever outlives the shutdown timeout.
//
// Outcome counters are kept twice: as atomics for Metrics snapshots, and as
// a Prometheus counter vector registered on the configured Registerer.
package workerpool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/marcodamonte/concurrency/exercises/internal/metrics"
)

// Job is the unit of work submitted to the pool. It receives the pool's
// context and must return once that context is cancelled.
type Job func(ctx context.Context) error

// Sentinel errors returned by the pool.
var (
	ErrPoolClosed      = errors.New("worker pool is closed")
	ErrShutdownTimeout = errors.New("shutdown timeout elapsed; workers were force-cancelled")
)

// Outcome label values of the jobs counter.
const (
	outcomeSubmitted = "submitted"
	outcomeStarted   = "started"
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
	outcomeDropped   = "dropped"
)

// Config holds pool construction parameters.
type Config struct {
	// Workers is the number of goroutines consuming jobs. Defaults to 1.
	Workers int

	// QueueSize is the job channel capacity. 0 makes Submit block until a
	// worker is free.
	QueueSize int

	// ShutdownTimeout bounds how long Shutdown waits for queued and running
	// jobs before cancelling them. Defaults to 30s.
	ShutdownTimeout time.Duration

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Registerer receives the pool's counters. nil leaves them unregistered.
	// Pools built against the same Registerer share one counter vector.
	Registerer prometheus.Registerer
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.QueueSize < 0 {
		c.QueueSize = 0
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Metrics is a snapshot of the pool counters.
type Metrics struct {
	Submitted int64 // jobs accepted into the queue
	Started   int64 // jobs a worker picked up
	Succeeded int64 // jobs that returned nil
	Failed    int64 // jobs that returned an error or were skipped after cancel
	Dropped   int64 // jobs rejected after shutdown or abandoned by the caller
}

type counters struct {
	submitted, started, succeeded, failed, dropped atomic.Int64
}

// Pool is a fixed-size worker pool.
//
//	pool := workerpool.New(cfg)
//	pool.Submit(ctx, job)
//	pool.Shutdown()
type Pool struct {
	cfg  Config
	jobs chan Job
	wg   sync.WaitGroup

	counts counters
	vec    *prometheus.CounterVec

	workerCtx     context.Context
	cancelWorkers context.CancelFunc

	// mu orders sends on jobs against close(jobs) in Shutdown.
	mu     sync.RWMutex
	closed bool

	once        sync.Once
	shutdownErr error
}

// New starts cfg.Workers goroutines. They run until Shutdown.
func New(cfg Config) *Pool {
	cfg = cfg.withDefaults()

	workerCtx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		cfg:           cfg,
		jobs:          make(chan Job, cfg.QueueSize),
		workerCtx:     workerCtx,
		cancelWorkers: cancel,
		vec: metrics.CounterVec(cfg.Registerer, prometheus.CounterOpts{
			Namespace: "exercises",
			Subsystem: "pool",
			Name:      "jobs_total",
			Help:      "Jobs seen by the worker pool, by outcome.",
		}, []string{"outcome"}),
	}

	cfg.Logger.Debug("pool.starting",
		"workers", cfg.Workers, "queue", cfg.QueueSize, "shutdown_timeout", cfg.ShutdownTimeout)

	for i := range cfg.Workers {
		p.wg.Add(1)
		go p.runWorker(i)
	}
	return p
}

// Submit enqueues job. It blocks while the queue is full and gives up when
// ctx is done. After Shutdown has begun it returns ErrPoolClosed. A Submit
// blocked on a full queue holds off Shutdown until it gets a slot or its ctx
// ends.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.inc(&p.counts.dropped, outcomeDropped)
		return ErrPoolClosed
	}

	select {
	case p.jobs <- job:
		p.inc(&p.counts.submitted, outcomeSubmitted)
		return nil
	case <-ctx.Done():
		p.inc(&p.counts.dropped, outcomeDropped)
		return fmt.Errorf("submit cancelled: %w", ctx.Err())
	}
}

// Shutdown stops accepting jobs, lets workers drain the queue, and waits up
// to ShutdownTimeout. If the timeout fires, running jobs are cancelled via
// their context and ErrShutdownTimeout is returned once workers exit.
// Calling Shutdown again returns the first call's result.
func (p *Pool) Shutdown() error {
	p.once.Do(func() {
		log := p.cfg.Logger
		log.Debug("pool.shutdown.begin")

		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		timer := time.NewTimer(p.cfg.ShutdownTimeout)
		defer timer.Stop()

		select {
		case <-done:
			log.Debug("pool.shutdown.complete", "forced", false)
		case <-timer.C:
			log.Warn("pool.shutdown.timeout", "timeout", p.cfg.ShutdownTimeout)
			p.cancelWorkers()
			<-done
			p.shutdownErr = ErrShutdownTimeout
		}
		p.cancelWorkers()
	})
	return p.shutdownErr
}

// Metrics returns a snapshot. Each field is read atomically; fields are not
// mutually consistent while jobs are running.
func (p *Pool) Metrics() Metrics {
	return Metrics{
		Submitted: p.counts.submitted.Load(),
		Started:   p.counts.started.Load(),
		Succeeded: p.counts.succeeded.Load(),
		Failed:    p.counts.failed.Load(),
		Dropped:   p.counts.dropped.Load(),
	}
}

func (p *Pool) inc(c *atomic.Int64, outcome string) {
	c.Add(1)
	p.vec.WithLabelValues(outcome).Inc()
}

func (p *Pool) runWorker(id int) {
	defer p.wg.Done()
	log := p.cfg.Logger.With("worker", id)

	for job := range p.jobs {
		if p.workerCtx.Err() != nil {
			log.Debug("pool.job.skipped", "reason", "cancelled")
			p.inc(&p.counts.failed, outcomeFailed)
			continue
		}

		p.inc(&p.counts.started, outcomeStarted)
		if err := job(p.workerCtx); err != nil {
			p.inc(&p.counts.failed, outcomeFailed)
			log.Warn("pool.job.failed", "err", err)
			continue
		}
		p.inc(&p.counts.succeeded, outcomeSucceeded)
	}
	log.Debug("pool.worker.exited")
}
