// Package service provides the core application service: it owns the entity
// stores, keeps the local snapshots the views render from, and drives the
// interaction workflows.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/localhood/skillswap/internal/adapters/notify"
	"github.com/localhood/skillswap/internal/adapters/repository"
	"github.com/localhood/skillswap/internal/domain/matching"
	"github.com/localhood/skillswap/internal/domain/model"
	"github.com/localhood/skillswap/pkg/logger"
	"github.com/localhood/skillswap/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultCurrentUserID         = "current-user"
	defaultMatchedUserID         = "matched-user"
	defaultViewCacheTTL          = 2 * time.Second
	defaultMetricsUpdateInterval = 5 * time.Second
)

// defaultAvailability is stamped onto new skills created without explicit
// availability tags.
var defaultAvailability = []string{"weekends", "evenings"} //nolint:gochecknoglobals // shared immutable default

// Service implements the interaction workflows and derived-view access over
// the six entity stores. Snapshots of each entity list act as the local UI
// state: they are only replaced after a store call resolves, so a failed
// workflow leaves them untouched.
type Service struct {
	mu sync.RWMutex

	// Core components
	stores   repository.Stores
	scorer   matching.Scorer
	notifier notify.Notifier

	// Configuration
	currentUserID         string
	matchedUserID         string
	viewCacheTTL          time.Duration
	metricsUpdateInterval time.Duration

	// Local snapshots (the UI state)
	users    []model.User
	skills   []model.Skill
	matches  []model.Match
	sessions []model.Session
	messages []model.Message
	ratings  []model.Rating

	// Derived-view cache
	viewCache *gocache.Cache

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStores sets the entity stores the service works against.
func WithStores(stores repository.Stores) Option {
	return func(s *Service) {
		s.stores = stores
	}
}

// WithScorer sets the compatibility scorer used by connection requests.
func WithScorer(scorer matching.Scorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithNotifier sets the user-notice sink.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithCurrentUser sets the identity all workflows act as.
func WithCurrentUser(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.currentUserID = id
		}
	}
}

// WithMatchedUser sets the placeholder counterpart for connection requests.
func WithMatchedUser(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.matchedUserID = id
		}
	}
}

// WithViewCacheTTL bounds how long derived views are served from cache.
// Zero or negative disables caching.
func WithViewCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.viewCacheTTL = ttl
	}
}

// WithMetricsUpdateInterval sets the interval for background gauge updates.
func WithMetricsUpdateInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.metricsUpdateInterval = interval
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates the service. Call Start before use.
func New(opts ...Option) *Service {
	s := &Service{
		scorer:                matching.NewStaticScorer(),
		currentUserID:         defaultCurrentUserID,
		matchedUserID:         defaultMatchedUserID,
		viewCacheTTL:          defaultViewCacheTTL,
		metricsUpdateInterval: defaultMetricsUpdateInterval,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.notifier == nil {
		s.notifier = notify.NewInMemoryNotifier()
	}
	if s.viewCacheTTL > 0 {
		s.viewCache = gocache.New(s.viewCacheTTL, 2*s.viewCacheTTL)
	}

	return s
}

// Start performs the initial load and launches the background gauge updater.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	if s.stores.Skills == nil {
		s.mu.Unlock()
		return ErrNotConfigured
	}
	if s.log == nil {
		s.log = logger.Get().Named("service")
	}
	s.started = true
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	if err := s.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "initial load incomplete", logger.Error(err))
	}

	go s.runMetricsUpdater(ctx)

	s.log.Info(ctx, "service started",
		logger.String("current_user", s.currentUserID),
		logger.Int("skills", len(s.snapshotSkills())))
	return nil
}

// Stop shuts the service down and closes the notifier.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	close(s.stopCh)
	_ = s.notifier.Close()
}

// Notices exposes the notice stream for whatever front end is attached.
func (s *Service) Notices(ctx context.Context) <-chan notify.Notice {
	return s.notifier.Subscribe(ctx)
}

// CurrentUserID returns the configured acting identity.
func (s *Service) CurrentUserID() string { return s.currentUserID }

// Refresh reloads every snapshot. The six fetches run concurrently and their
// completions may arrive in any order; each list is swapped in independently.
// Lists whose fetch failed keep their previous snapshot.
func (s *Service) Refresh(ctx context.Context) error {
	var wg sync.WaitGroup
	errMu := sync.Mutex{}
	var errs []error

	fail := func(err error) {
		errMu.Lock()
		errs = append(errs, err)
		errMu.Unlock()
	}

	wg.Add(6)
	go func() {
		defer wg.Done()
		if users, err := s.stores.Users.GetAll(ctx); err != nil {
			fail(err)
		} else {
			s.mu.Lock()
			s.users = users
			s.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		if skills, err := s.stores.Skills.GetAll(ctx); err != nil {
			fail(err)
		} else {
			s.mu.Lock()
			s.skills = skills
			s.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		if matches, err := s.stores.Matches.GetAll(ctx); err != nil {
			fail(err)
		} else {
			s.mu.Lock()
			s.matches = matches
			s.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		if sessions, err := s.stores.Sessions.GetAll(ctx); err != nil {
			fail(err)
		} else {
			s.mu.Lock()
			s.sessions = sessions
			s.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		if messages, err := s.stores.Messages.GetAll(ctx); err != nil {
			fail(err)
		} else {
			s.mu.Lock()
			s.messages = messages
			s.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		if ratings, err := s.stores.Ratings.GetAll(ctx); err != nil {
			fail(err)
		} else {
			s.mu.Lock()
			s.ratings = ratings
			s.mu.Unlock()
		}
	}()
	wg.Wait()

	s.invalidateViews()

	if len(errs) > 0 {
		metrics.RecordWorkflowOutcome("refresh", "failure")
		return errors.Join(errs...)
	}
	metrics.RecordWorkflowOutcome("refresh", "success")
	return nil
}

// runMetricsUpdater refreshes the per-store record gauges until Stop.
func (s *Service) runMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(s.metricsUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.UpdateEntityCount(repository.KindUsers, s.stores.Users.Count(ctx))
			metrics.UpdateEntityCount(repository.KindSkills, s.stores.Skills.Count(ctx))
			metrics.UpdateEntityCount(repository.KindMatches, s.stores.Matches.Count(ctx))
			metrics.UpdateEntityCount(repository.KindSessions, s.stores.Sessions.Count(ctx))
			metrics.UpdateEntityCount(repository.KindMessages, s.stores.Messages.Count(ctx))
			metrics.UpdateEntityCount(repository.KindRatings, s.stores.Ratings.Count(ctx))
		}
	}
}

// notify publishes a user-facing notice; delivery is best effort.
func (s *Service) notify(ctx context.Context, level notify.Level, text string) {
	if ok := s.notifier.Publish(ctx, notify.Notice{Level: level, Text: text}); !ok {
		s.log.Debug(ctx, "notice dropped", logger.String("text", text))
	}
}

// fail logs a workflow failure, surfaces the user notice, and wraps err.
func (s *Service) fail(ctx context.Context, workflow, text string, err error) error {
	s.log.Warn(ctx, "workflow failed", logger.String("workflow", workflow), logger.Error(err))
	s.notify(ctx, notify.LevelError, text)
	metrics.RecordWorkflowOutcome(workflow, "failure")
	return err
}

// succeed records a successful workflow and its notice.
func (s *Service) succeed(ctx context.Context, workflow, text string) {
	s.notify(ctx, notify.LevelSuccess, text)
	metrics.RecordWorkflowOutcome(workflow, "success")
}
