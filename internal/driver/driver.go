// Package driver runs every exercise once, in a fixed order, and prints each
// result under its own section.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/marcodamonte/concurrency/exercises/internal/config"
	"github.com/marcodamonte/concurrency/exercises/internal/metrics"
	"github.com/marcodamonte/concurrency/exercises/internal/person"
	"github.com/marcodamonte/concurrency/exercises/internal/singleton"
	"github.com/marcodamonte/concurrency/exercises/internal/tasks"
	"github.com/marcodamonte/concurrency/exercises/internal/transforms"
	"github.com/marcodamonte/concurrency/exercises/internal/ux"
	"github.com/marcodamonte/concurrency/exercises/internal/workerpool"
)

// ErrUnknownStep is returned when Options.Only names a step that does not
// exist.
var ErrUnknownStep = errors.New("unknown step")

// Options configures a Driver. Zero values fall back to io.Discard and
// slog.Default(); a nil Registerer leaves the counters unregistered.
type Options struct {
	Out    io.Writer
	Inputs config.Inputs

	// Only restricts the run to these step names. Empty runs every step.
	Only []string

	// Detach submits the concurrent-work step to a worker pool instead of
	// waiting for it; the pool is drained when Run returns.
	Detach bool

	Logger     *slog.Logger
	Registerer prometheus.Registerer
}

// Driver executes the exercise steps against one set of inputs.
type Driver struct {
	opts  Options
	p     *ux.Printer
	log   *slog.Logger
	pool  *workerpool.Pool
	steps *prometheus.CounterVec
}

// New builds a Driver. Drivers sharing a Registerer share their counters.
func New(opts Options) *Driver {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Driver{
		opts: opts,
		p:    ux.NewPrinter(opts.Out),
		log:  opts.Logger,
		steps: metrics.CounterVec(opts.Registerer, prometheus.CounterOpts{
			Namespace: "exercises",
			Subsystem: "driver",
			Name:      "steps_total",
			Help:      "Driver steps executed, by step name.",
		}, []string{"step"}),
	}
}

// Run executes the selected steps in order. It stops at the first failing
// step or when ctx is done. Run may be called again once it has returned;
// each detached run gets its own pool. It is not safe for concurrent use.
func (d *Driver) Run(ctx context.Context) (err error) {
	selected, err := selectSteps(d.opts.Only)
	if err != nil {
		return err
	}

	if d.opts.Detach {
		d.pool = workerpool.New(workerpool.Config{
			Workers:         2,
			QueueSize:       2,
			ShutdownTimeout: 5 * time.Second,
			Logger:          d.log,
			Registerer:      d.opts.Registerer,
		})
		defer func() {
			err = errors.Join(err, d.pool.Shutdown())
		}()
	}

	for _, s := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		d.p.Section(s.title)
		if err := s.run(d, ctx); err != nil {
			d.p.Error(err)
			return fmt.Errorf("step %s: %w", s.name, err)
		}
		d.steps.WithLabelValues(s.name).Inc()
		d.log.Debug("driver.step.done", "step", s.name, "elapsed", time.Since(start))
	}
	return nil
}

// Steps lists every step name in execution order.
func Steps() []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.name
	}
	return names
}

func selectSteps(only []string) ([]step, error) {
	if len(only) == 0 {
		return steps, nil
	}

	want := make(map[string]bool, len(only))
	for _, name := range only {
		name = strings.TrimSpace(name)
		if !hasStep(name) {
			return nil, fmt.Errorf("%w: %q (see `exercises list`)", ErrUnknownStep, name)
		}
		want[name] = true
	}

	var out []step
	for _, s := range steps {
		if want[s.name] {
			out = append(out, s)
		}
	}
	return out, nil
}

func hasStep(name string) bool {
	for _, s := range steps {
		if s.name == name {
			return true
		}
	}
	return false
}

// ── Steps ────────────────────────────────────────────────────────────────────

type step struct {
	name  string
	title string
	run   func(d *Driver, ctx context.Context) error
}

var steps = []step{
	{"singleton", "Singleton — lazy, once-guarded handle", (*Driver).singleton},
	{"two-sum", "Two-sum", (*Driver).twoSum},
	{"count-words", "Count words", (*Driver).countWords},
	{"factorial", "Factorial", (*Driver).factorial},
	{"rotate-left", "Rotate left", (*Driver).rotateLeft},
	{"rotate-right", "Rotate right", (*Driver).rotateRight},
	{"reverse", "Reverse string", (*Driver).reverse},
	{"common", "Common elements", (*Driver).common},
	{"first-non-repeated", "First non-repeated character", (*Driver).firstNonRepeated},
	{"person", "Immutable person", (*Driver).person},
	{"leaders", "Leaders", (*Driver).leaders},
	{"most-common", "Most common element", (*Driver).mostCommon},
	{"dedup", "Remove duplicates", (*Driver).dedup},
	{"dedup-words", "Remove duplicate words", (*Driver).dedupWords},
	{"reverse-alphabets", "Reverse alphabets", (*Driver).reverseAlphabets},
	{"second-largest", "Second largest", (*Driver).secondLargest},
	{"count-chars", "Count characters", (*Driver).countChars},
	{"palindrome", "Palindrome", (*Driver).palindrome},
	{"max", "Max number", (*Driver).max},
	{"tasks", "Concurrent work — method vs function", (*Driver).tasks},
	{"greeting", "Function literal", (*Driver).greeting},
	{"concat", "Join lists", (*Driver).concat},
	{"merge", "Join maps", (*Driver).merge},
}

func (d *Driver) singleton(context.Context) error {
	h := singleton.Get()
	d.log.Debug("driver.singleton", "id", h.ID())
	return h.DoSomething(d.p)
}

func (d *Driver) twoSum(context.Context) error {
	in := d.opts.Inputs.TwoSum
	d.p.Result(fmt.Sprintf("TwoSum(%v, %d)", in.Nums, in.Target), orNone(transforms.TwoSum(in.Nums, in.Target)))
	return nil
}

func (d *Driver) countWords(context.Context) error {
	s := d.opts.Inputs.Sentence
	d.p.Result(fmt.Sprintf("CountWords(%q)", s), transforms.CountWords(s))
	return nil
}

func (d *Driver) factorial(context.Context) error {
	n := d.opts.Inputs.Factorial
	d.p.Result(fmt.Sprintf("Factorial(%d)", n), transforms.Factorial(n))
	return nil
}

func (d *Driver) rotateLeft(context.Context) error {
	in := d.opts.Inputs.Rotate
	d.p.Result(fmt.Sprintf("RotateLeft(%v, %d)", in.Nums, in.By), transforms.RotateLeft(in.Nums, in.By))
	return nil
}

func (d *Driver) rotateRight(context.Context) error {
	in := d.opts.Inputs.Rotate
	d.p.Result(fmt.Sprintf("RotateRight(%v, %d)", in.Nums, in.By), transforms.RotateRight(in.Nums, in.By))
	return nil
}

func (d *Driver) reverse(context.Context) error {
	s := d.opts.Inputs.Reverse
	d.p.Result(fmt.Sprintf("Reverse(%q)", s), transforms.Reverse(s))
	return nil
}

func (d *Driver) common(context.Context) error {
	in := d.opts.Inputs.Common
	d.p.Result(fmt.Sprintf("Common(%v, %v)", in.A, in.B), transforms.Common(in.A, in.B))
	return nil
}

func (d *Driver) firstNonRepeated(context.Context) error {
	s := d.opts.Inputs.FirstNonRepeated
	label := fmt.Sprintf("FirstNonRepeated(%q)", s)
	if r, ok := transforms.FirstNonRepeated(s); ok {
		d.p.Result(label, string(r))
		return nil
	}
	d.p.Result(label, "(none)")
	return nil
}

func (d *Driver) person(context.Context) error {
	in := d.opts.Inputs.Person
	p := person.New(in.ID, in.Name)
	d.p.Result(p.String()+".Name()", p.Name())
	return nil
}

func (d *Driver) leaders(context.Context) error {
	s := d.opts.Inputs.Leaders
	d.p.Result(fmt.Sprintf("Leaders(%v)", s), transforms.Leaders(s))
	return nil
}

func (d *Driver) mostCommon(context.Context) error {
	s := d.opts.Inputs.MostCommon
	v, ok := transforms.MostCommon(s)
	d.p.Result(fmt.Sprintf("MostCommon(%v)", s), optional(v, ok))
	return nil
}

func (d *Driver) dedup(context.Context) error {
	s := d.opts.Inputs.Dedup
	d.p.Result(fmt.Sprintf("Dedup(%v)", s), transforms.Dedup(s))
	return nil
}

func (d *Driver) dedupWords(context.Context) error {
	s := d.opts.Inputs.DedupWords
	d.p.Result(fmt.Sprintf("DedupWords(%q)", s), transforms.DedupWords(s))
	return nil
}

func (d *Driver) reverseAlphabets(context.Context) error {
	s := d.opts.Inputs.ReverseAlphabets
	d.p.Result(fmt.Sprintf("ReverseAlphabets(%q)", s), transforms.ReverseAlphabets(s))
	return nil
}

func (d *Driver) secondLargest(context.Context) error {
	s := d.opts.Inputs.SecondLargest
	v, ok := transforms.SecondLargest(s)
	d.p.Result(fmt.Sprintf("SecondLargest(%v)", s), optional(v, ok))
	return nil
}

func (d *Driver) countChars(context.Context) error {
	s := d.opts.Inputs.CountChars
	counts := transforms.CountChars(s)

	parts := make([]string, 0, len(counts))
	for _, r := range transforms.SortedKeys(counts) {
		parts = append(parts, fmt.Sprintf("%q:%d", r, counts[r]))
	}
	d.p.Result(fmt.Sprintf("CountChars(%q)", s), "map["+strings.Join(parts, " ")+"]")
	return nil
}

func (d *Driver) palindrome(context.Context) error {
	s := d.opts.Inputs.Palindrome
	d.p.Result(fmt.Sprintf("IsPalindrome(%q)", s), transforms.IsPalindrome(s))
	return nil
}

func (d *Driver) max(context.Context) error {
	s := d.opts.Inputs.Max
	v, ok := transforms.Max(s)
	d.p.Result(fmt.Sprintf("Max(%v)", s), optional(v, ok))
	return nil
}

func (d *Driver) tasks(ctx context.Context) error {
	runners := []tasks.Runner{&tasks.Thread{Out: d.p}, tasks.Runnable(d.p)}

	if d.pool != nil {
		d.log.Debug("driver.tasks.detach", "runners", len(runners))
		return tasks.Detach(ctx, d.pool, runners...)
	}
	return tasks.Await(ctx, runners...)
}

func (d *Driver) greeting(context.Context) error {
	greet := func(name string) string { return "Hello, " + name }
	d.p.Line(greet(d.opts.Inputs.Greeting))
	return nil
}

func (d *Driver) concat(context.Context) error {
	in := d.opts.Inputs.Concat
	d.p.Result(fmt.Sprintf("Concat(%v, %v)", in.A, in.B), transforms.Concat(in.A, in.B))
	return nil
}

func (d *Driver) merge(context.Context) error {
	in := d.opts.Inputs.Merge
	d.p.Result(fmt.Sprintf("MergeMaps(%v, %v)", in.A, in.B), transforms.MergeMaps(in.A, in.B))
	return nil
}

// ── Formatting helpers ───────────────────────────────────────────────────────

func optional[T any](v T, ok bool) any {
	if !ok {
		return "(none)"
	}
	return v
}

func orNone(idx []int) any {
	if idx == nil {
		return "(none)"
	}
	return idx
}
