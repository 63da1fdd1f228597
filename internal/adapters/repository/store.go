// Package repository provides the fixture-seeded in-memory entity stores.
//
// Every store shares one contract: list, lookup, create with stamped
// defaults, patch, delete. Backing state is a mutable slice in insertion
// order; every operation simulates a network round-trip by sleeping inside a
// configured latency window before touching the slice. The only domain error
// is ErrNotFound.
package repository

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/localhood/skillswap/internal/domain/model"
	"github.com/localhood/skillswap/pkg/metrics"
)

// Operation names used for metrics labels.
const (
	opGetAll  = "get_all"
	opGetByID = "get_by_id"
	opCreate  = "create"
	opUpdate  = "update"
	opDelete  = "delete"
)

// Default simulated latency windows, mirroring the per-call delays of the
// original client: reads 250-300ms, mutations 300-400ms.
var (
	defaultReadWindow  = Window{Min: 250 * time.Millisecond, Max: 300 * time.Millisecond}
	defaultWriteWindow = Window{Min: 300 * time.Millisecond, Max: 400 * time.Millisecond}
)

// Window bounds a simulated latency range. A zero Max disables the wait.
type Window struct {
	Min time.Duration
	Max time.Duration
}

// Patch applies a typed, field-by-field update to an entity.
type Patch[E any] interface {
	Apply(*E)
}

// Stamp fills in store-generated fields (fresh id, creation time) and
// entity-specific defaults on a record being created.
type Stamp[E model.Entity] func(e E, id string, now time.Time) E

// Store is a fixture-seeded in-memory repository over one entity type.
// All operations honor ctx while waiting out the simulated latency window;
// a cancelled context aborts the call before the collection is touched.
type Store[E model.Entity] struct {
	mu    sync.RWMutex
	kind  string
	items []E
	stamp Stamp[E]
	clock func() time.Time
	read  Window
	write Window
}

// New creates a store of the given kind seeded with a copy of seed.
func New[E model.Entity](kind string, seed []E, stamp Stamp[E], opts ...Option[E]) *Store[E] {
	s := &Store[E]{
		kind:  kind,
		items: append([]E(nil), seed...),
		stamp: stamp,
		clock: time.Now,
		read:  defaultReadWindow,
		write: defaultWriteWindow,
	}

	for _, opt := range opts {
		opt(s)
	}

	metrics.UpdateEntityCount(kind, len(s.items))
	return s
}

// Kind returns the entity kind label, e.g. "skills".
func (s *Store[E]) Kind() string { return s.kind }

// Count returns the current number of records.
func (s *Store[E]) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// GetAll returns a defensive copy of the whole collection in insertion order.
func (s *Store[E]) GetAll(ctx context.Context) ([]E, error) {
	done := s.observe(opGetAll)
	if err := s.wait(ctx, s.read); err != nil {
		return nil, done(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]E(nil), s.items...)
	return out, done(nil)
}

// GetByID returns a copy of the record with the given id.
func (s *Store[E]) GetByID(ctx context.Context, id string) (E, error) {
	var zero E
	done := s.observe(opGetByID)
	if err := s.wait(ctx, s.read); err != nil {
		return zero, done(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.items {
		if e.EntityID() == id {
			return e, done(nil)
		}
	}
	return zero, done(s.notFound(id))
}

// Create stamps a fresh id, creation time, and entity defaults onto e,
// appends it, and returns a copy of the stored record.
func (s *Store[E]) Create(ctx context.Context, e E) (E, error) {
	var zero E
	done := s.observe(opCreate)
	if err := s.wait(ctx, s.write); err != nil {
		return zero, done(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.stamp(e, nextID(), s.clock())
	s.items = append(s.items, stored)
	metrics.UpdateEntityCount(s.kind, len(s.items))
	return stored, done(nil)
}

// Update applies patch to the record with the given id and returns a copy of
// the result. The collection is unchanged when the id is absent.
func (s *Store[E]) Update(ctx context.Context, id string, patch Patch[E]) (E, error) {
	var zero E
	done := s.observe(opUpdate)
	if err := s.wait(ctx, s.write); err != nil {
		return zero, done(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			patch.Apply(&s.items[i])
			return s.items[i], done(nil)
		}
	}
	return zero, done(s.notFound(id))
}

// Delete removes the record with the given id.
func (s *Store[E]) Delete(ctx context.Context, id string) error {
	done := s.observe(opDelete)
	if err := s.wait(ctx, s.write); err != nil {
		return done(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			metrics.UpdateEntityCount(s.kind, len(s.items))
			return done(nil)
		}
	}
	return done(s.notFound(id))
}

// wait sleeps a uniformly random duration inside the window, honoring ctx.
func (s *Store[E]) wait(ctx context.Context, w Window) error {
	if w.Max <= 0 {
		return nil
	}
	d := w.Min
	if w.Max > w.Min {
		d += time.Duration(rand.Int63n(int64(w.Max - w.Min))) //nolint:gosec // jitter, not security
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s store: %w", s.kind, ctx.Err())
	case <-time.After(d):
		return nil
	}
}

// observe records operation counters and latency; the returned func is called
// with the operation's outcome and passes the error through.
func (s *Store[E]) observe(op string) func(error) error {
	start := time.Now()
	return func(err error) error {
		metrics.RecordStoreOp(s.kind, op)
		metrics.RecordStoreOpLatency(s.kind, op, float64(time.Since(start).Milliseconds()))
		if err != nil {
			metrics.RecordStoreOpError(s.kind, op)
		}
		return err
	}
}

func (s *Store[E]) notFound(id string) error {
	return fmt.Errorf("%s %q: %w", s.kind, id, ErrNotFound)
}

// lastID tracks the most recently issued id so two creations in the same
// nanosecond still get distinct, strictly increasing ids.
var lastID atomic.Int64 //nolint:gochecknoglobals // process-wide id sequence

// nextID returns a unique, monotonically increasing id derived from the
// current unix-nano clock. Ids are never reused.
func nextID() string {
	for {
		now := time.Now().UnixNano()
		prev := lastID.Load()
		if now <= prev {
			now = prev + 1
		}
		if lastID.CompareAndSwap(prev, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
