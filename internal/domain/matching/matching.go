// Package matching defines the contract for computing compatibility scores
// between a skill listing and the connecting user.
//
// No real algorithm exists yet: StaticScorer returns a configured placeholder
// after a simulated service round-trip. The Scorer interface is the seam a
// future implementation plugs into.
package matching

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/localhood/skillswap/pkg/metrics"
)

// Default scoring configuration constants.
const (
	defaultScore      = 0.85
	defaultMinLatency = 200 * time.Millisecond
	defaultMaxLatency = 400 * time.Millisecond
	defaultRandomSeed = 42
	percentScale      = 100
)

// Input abstracts the fields a compatibility computation may consider.
type Input struct {
	SkillID   string
	TeacherID string
	LearnerID string
}

// Result contains the computed compatibility for a connection request.
type Result struct {
	SkillID string
	// Score is always in [0, 1].
	Score float64
}

// Percent renders a compatibility score as a 0-100 percentage for display.
func Percent(score float64) int {
	return int(math.Round(score * percentScale))
}

// Scorer computes a compatibility score. The implementation may simulate
// latency to model an external matching service.
type Scorer interface {
	// Score computes a score in [0, 1], honoring ctx for cancellation.
	Score(ctx context.Context, in Input) (Result, error)
}

// Option applies a configuration option to the StaticScorer.
type Option func(*StaticScorer)

// WithScore sets the placeholder compatibility score, clamped into [0, 1].
func WithScore(score float64) Option {
	return func(s *StaticScorer) {
		s.score = clamp(score)
	}
}

// WithLatencyRange sets the simulated latency range.
func WithLatencyRange(minLatency, maxLatency time.Duration) Option {
	return func(s *StaticScorer) {
		if minLatency >= 0 && maxLatency >= minLatency {
			s.minLatency = minLatency
			s.maxLatency = maxLatency
		}
	}
}

// StaticScorer implements Scorer with a constant placeholder score.
type StaticScorer struct {
	score      float64
	minLatency time.Duration
	maxLatency time.Duration
	rng        *rand.Rand
}

// NewStaticScorer creates a placeholder scorer with configuration options.
func NewStaticScorer(opts ...Option) *StaticScorer {
	s := &StaticScorer{
		score:      defaultScore,
		minLatency: defaultMinLatency,
		maxLatency: defaultMaxLatency,
		rng:        rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // deterministic seed for reproducible latency
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score returns the configured placeholder after the simulated round-trip.
func (s *StaticScorer) Score(ctx context.Context, in Input) (Result, error) {
	start := time.Now()
	if s.maxLatency > 0 {
		latency := s.minLatency
		if s.maxLatency > s.minLatency {
			latency += time.Duration(s.rng.Int63n(int64(s.maxLatency - s.minLatency)))
		}
		select {
		case <-ctx.Done():
			return Result{}, fmt.Errorf("context cancelled: %w", ctx.Err())
		case <-time.After(latency):
		}
	}
	metrics.RecordMatchScoreLatency(float64(time.Since(start).Milliseconds()))

	return Result{
		SkillID: in.SkillID,
		Score:   clamp(s.score),
	}, nil
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(1, score))
}
