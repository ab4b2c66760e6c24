package driver

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concurrency/exercises/internal/config"
	"github.com/marcodamonte/concurrency/exercises/internal/logger"
)

func run(t *testing.T, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	opts.Out = &buf
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Inputs.Greeting == "" {
		opts.Inputs = config.Defaults()
	}
	require.NoError(t, New(opts).Run(context.Background()))
	return buf.String()
}

// TestDefaultRun checks the stock inputs produce the stock answers.
func TestDefaultRun(t *testing.T) {
	out := run(t, Options{})

	for _, want := range []string{
		"Singleton action performed!",
		"TwoSum([2 7 11 15], 9): [0 1]",
		`CountWords("hello world hello"): map[hello:2 world:1]`,
		"Factorial(5): 120",
		"RotateLeft([1 2 3 4 5], 2): [3 4 5 1 2]",
		"RotateRight([1 2 3 4 5], 2): [4 5 1 2 3]",
		`Reverse("hello"): olleh`,
		"Common([1 2 3], [3 4 5]): [3]",
		`FirstNonRepeated("swiss"): w`,
		"Person(1, Zeeshan).Name(): Zeeshan",
		"Leaders([16 17 4 3 5 2]): [17 5 2]",
		"MostCommon([1 2 3 2 4 2 5]): 2",
		"Dedup([1 2 3 3 4 5 5]): [1 2 3 4 5]",
		`DedupWords("hello world hello universe"): hello world universe`,
		`ReverseAlphabets("abcdef"): fedcba`,
		"SecondLargest([10 20 30 40 50]): 40",
		`CountChars("hello world"): map[' ':1 'd':1 'e':1 'h':1 'l':3 'o':2 'r':1 'w':1]`,
		`IsPalindrome("radar"): true`,
		"Max([10 20 30 40 50]): 50",
		"Thread is running",
		"Runnable is running",
		"Hello, Zeeshan",
		"Concat([1 2 3], [4 5 6]): [1 2 3 4 5 6]",
		"MergeMaps(map[A:Apple B:Banana], map[B:Blueberry C:Cherry]): map[A:Apple B:Banana, Blueberry C:Cherry]",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSectionsFollowStepOrder(t *testing.T) {
	out := run(t, Options{})

	last := -1
	for _, s := range steps {
		i := strings.Index(out, "━━━ "+s.title+" ━━━")
		require.GreaterOrEqual(t, i, 0, "section %q missing", s.name)
		assert.Greater(t, i, last, "section %q out of order", s.name)
		last = i
	}
}

func TestOnlyRunsSelectedSteps(t *testing.T) {
	out := run(t, Options{Only: []string{"palindrome", " two-sum "}})

	assert.Contains(t, out, "TwoSum(")
	assert.Contains(t, out, "IsPalindrome(")
	assert.NotContains(t, out, "Factorial(")
	assert.Less(t, strings.Index(out, "TwoSum("), strings.Index(out, "IsPalindrome("),
		"execution order comes from the step list, not the filter")
}

func TestUnknownStep(t *testing.T) {
	err := New(Options{Only: []string{"nope"}, Logger: logger.Discard()}).Run(context.Background())
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestAbsentResultsPrintNone(t *testing.T) {
	in := config.Defaults()
	in.TwoSum.Target = 1000
	in.FirstNonRepeated = "aabb"
	in.SecondLargest = []int{7, 7}

	out := run(t, Options{Inputs: in, Only: []string{"two-sum", "first-non-repeated", "second-largest"}})
	assert.Equal(t, 3, strings.Count(out, "(none)"))
}

func TestDetachDrainsBeforeReturn(t *testing.T) {
	reg := prometheus.NewRegistry()
	out := run(t, Options{Detach: true, Only: []string{"tasks"}, Registerer: reg})

	assert.Contains(t, out, "Thread is running")
	assert.Contains(t, out, "Runnable is running")

	n, err := testutil.GatherAndCount(reg, "exercises_pool_jobs_total")
	require.NoError(t, err)
	assert.Positive(t, n)
}

func TestStepCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	run(t, Options{Registerer: reg})

	n, err := testutil.GatherAndCount(reg, "exercises_driver_steps_total")
	require.NoError(t, err)
	assert.Equal(t, len(steps), n)
}

func TestRunTwiceWithDetachSharesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	var buf bytes.Buffer
	d := New(Options{
		Out:        &buf,
		Inputs:     config.Defaults(),
		Only:       []string{"tasks"},
		Detach:     true,
		Logger:     logger.Discard(),
		Registerer: reg,
	})

	for range 2 {
		require.NotPanics(t, func() {
			require.NoError(t, d.Run(context.Background()))
		})
	}
	assert.Equal(t, 2, strings.Count(buf.String(), "Thread is running"))
	assert.Equal(t, 2.0, testutil.ToFloat64(d.steps.WithLabelValues("tasks")))
}

func TestDriversShareCountersOnOneRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	opts := Options{Only: []string{"factorial"}, Registerer: reg}

	run(t, opts)
	require.NotPanics(t, func() { run(t, opts) })

	n, err := testutil.GatherAndCount(reg, "exercises_driver_steps_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 1)
	assert.Equal(t, 2.0, mfs[0].GetMetric()[0].GetCounter().GetValue())
}

func TestCancelledContextStopsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := New(Options{Out: &buf, Inputs: config.Defaults(), Logger: logger.Discard()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestStepsListsEveryStep(t *testing.T) {
	names := Steps()
	require.Len(t, names, len(steps))
	assert.Equal(t, "singleton", names[0])
	assert.Equal(t, "merge", names[len(names)-1])
}
