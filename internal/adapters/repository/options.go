package repository

import (
	"time"

	"github.com/localhood/skillswap/internal/domain/model"
)

// Option applies a configuration option to a Store.
type Option[E model.Entity] func(*Store[E])

// WithReadLatency sets the simulated latency window for reads.
func WithReadLatency[E model.Entity](minLatency, maxLatency time.Duration) Option[E] {
	return func(s *Store[E]) {
		if minLatency >= 0 && maxLatency >= minLatency {
			s.read = Window{Min: minLatency, Max: maxLatency}
		}
	}
}

// WithWriteLatency sets the simulated latency window for mutations.
func WithWriteLatency[E model.Entity](minLatency, maxLatency time.Duration) Option[E] {
	return func(s *Store[E]) {
		if minLatency >= 0 && maxLatency >= minLatency {
			s.write = Window{Min: minLatency, Max: maxLatency}
		}
	}
}

// WithNoLatency disables the simulated latency entirely. Intended for tests.
func WithNoLatency[E model.Entity]() Option[E] {
	return func(s *Store[E]) {
		s.read = Window{}
		s.write = Window{}
	}
}

// WithClock overrides the creation-time source. Intended for tests.
func WithClock[E model.Entity](clock func() time.Time) Option[E] {
	return func(s *Store[E]) {
		if clock != nil {
			s.clock = clock
		}
	}
}
