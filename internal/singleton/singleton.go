// Package singleton provides the process-wide handle and the once-guarded
// lazy holder it is built on.
package singleton

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ── Lazy[T] ──────────────────────────────────────────────────────────────────
// sync.Once runs build exactly once no matter how many goroutines call Get at
// the same time; later calls skip the lock entirely and read the cached value.

// Lazy holds a value that is built on first use. Create one with NewLazy.
type Lazy[T any] struct {
	once  sync.Once
	build func() T
	value T
	built atomic.Int64
}

// NewLazy returns a Lazy that will call build on the first Get.
func NewLazy[T any](build func() T) *Lazy[T] {
	return &Lazy[T]{build: build}
}

// Get returns the value, building it if this is the first call.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.build()
		l.built.Add(1)
	})
	return l.value
}

// Built reports how many times build ran: 0 before the first Get, 1 after.
func (l *Lazy[T]) Built() int64 { return l.built.Load() }

// ── Handle ───────────────────────────────────────────────────────────────────

// Handle is the shared process-wide instance. It is never modified after
// construction, so it is safe to use from any goroutine.
type Handle struct {
	id        uuid.UUID
	createdAt time.Time
}

// ID is assigned once at construction.
func (h *Handle) ID() uuid.UUID { return h.id }

// CreatedAt is the UTC construction time.
func (h *Handle) CreatedAt() time.Time { return h.createdAt }

// DoSomething writes the handle's action line to w.
func (h *Handle) DoSomething(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Singleton action performed!")
	return err
}

func newHandle() *Handle {
	h := &Handle{id: uuid.New(), createdAt: time.Now().UTC()}
	slog.Debug("singleton.constructed", "id", h.id)
	return h
}

var instance = NewLazy(newHandle)

// Get returns the process-wide Handle, constructing it on the first call.
func Get() *Handle { return instance.Get() }

// Constructions reports how many times the process-wide Handle was built.
func Constructions() int64 { return instance.Built() }
