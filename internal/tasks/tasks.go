// Package tasks unifies the two ways of starting concurrent work: a type with
// its own Run method, and a plain function adapted to the same interface.
// Either kind can be awaited as a group or detached onto a worker pool.
package tasks

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/marcodamonte/concurrency/exercises/internal/workerpool"
)

// Runner is a unit of work.
type Runner interface {
	Run(ctx context.Context) error
}

// Func adapts an ordinary function to Runner.
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error { return f(ctx) }

// ── The two launch styles ────────────────────────────────────────────────────

// Thread carries its own Run method, like a type that embeds the behaviour of
// a thread.
type Thread struct {
	Out io.Writer
}

func (t *Thread) Run(context.Context) error {
	_, err := fmt.Fprintln(t.Out, "Thread is running")
	return err
}

// Runnable returns a standalone function handed to whatever runs it.
func Runnable(out io.Writer) Func {
	return func(context.Context) error {
		_, err := fmt.Fprintln(out, "Runnable is running")
		return err
	}
}

// ── Await / Detach ───────────────────────────────────────────────────────────

// Await runs every runner in its own goroutine and waits for all of them. It
// returns the first error; the context passed to the others is cancelled
// once that happens.
func Await(ctx context.Context, runners ...Runner) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, r := range runners {
		g.Go(func() error { return r.Run(ctx) })
	}
	return g.Wait()
}

// Submitter accepts jobs for background execution. *workerpool.Pool
// satisfies it.
type Submitter interface {
	Submit(ctx context.Context, job workerpool.Job) error
}

// Detach hands every runner to s and returns without waiting for them to
// run. Errors from the runners themselves are only visible through the
// submitter (pool metrics and logs).
func Detach(ctx context.Context, s Submitter, runners ...Runner) error {
	for i, r := range runners {
		if err := s.Submit(ctx, r.Run); err != nil {
			return fmt.Errorf("detach runner %d (%T): %w", i, r, err)
		}
	}
	return nil
}
