package service

import (
	"context"
	"time"

	"github.com/localhood/skillswap/internal/domain/model"
	"github.com/localhood/skillswap/internal/domain/views"
	"github.com/localhood/skillswap/pkg/metrics"
)

// View names used for cache keys and metrics labels.
const (
	viewBrowse        = "browse"
	viewConversations = "conversations"
	viewCalendar      = "calendar"
	viewProfile       = "profile"
)

// BrowseSkills returns the skill snapshot filtered by the given criteria.
func (s *Service) BrowseSkills(_ context.Context, f views.SkillFilter) []model.Skill {
	key := viewBrowse + "|" + f.Query + "|" + f.Category + "|" + f.Type
	if hit, ok := s.cachedView(viewBrowse, key); ok {
		return hit.([]model.Skill)
	}

	start := time.Now()
	result := views.FilterSkills(s.snapshotSkills(), f)
	metrics.RecordViewBuild(viewBrowse, float64(time.Since(start).Milliseconds()))

	s.storeView(key, result)
	return result
}

// Conversations returns the per-partner message threads for the current user.
func (s *Service) Conversations(_ context.Context) []views.Conversation {
	if hit, ok := s.cachedView(viewConversations, viewConversations); ok {
		return hit.([]views.Conversation)
	}

	start := time.Now()
	result := views.Conversations(s.snapshotMessages(), s.currentUserID)
	metrics.RecordViewBuild(viewConversations, float64(time.Since(start).Milliseconds()))

	s.storeView(viewConversations, result)
	return result
}

// WeekSchedule buckets the non-cancelled sessions into the Sunday-start week
// containing anchor.
func (s *Service) WeekSchedule(_ context.Context, anchor time.Time) [7]views.DaySchedule {
	key := viewCalendar + "|" + views.WeekStart(anchor).Format("2006-01-02")
	if hit, ok := s.cachedView(viewCalendar, key); ok {
		return hit.([7]views.DaySchedule)
	}

	start := time.Now()
	result := views.WeekSchedule(views.ExcludeCancelled(s.snapshotSessions()), anchor)
	metrics.RecordViewBuild(viewCalendar, float64(time.Since(start).Milliseconds()))

	s.storeView(key, result)
	return result
}

// Profile aggregates the session history and the ratings feed.
func (s *Service) Profile(_ context.Context) views.ProfileStats {
	if hit, ok := s.cachedView(viewProfile, viewProfile); ok {
		return hit.(views.ProfileStats)
	}

	start := time.Now()
	result := views.Profile(s.snapshotSessions(), s.snapshotRatings())
	metrics.RecordViewBuild(viewProfile, float64(time.Since(start).Milliseconds()))

	s.storeView(viewProfile, result)
	return result
}

// cachedView looks a view result up, recording hit/miss metrics.
func (s *Service) cachedView(view, key string) (interface{}, bool) {
	if s.viewCache == nil {
		return nil, false
	}
	if hit, ok := s.viewCache.Get(key); ok {
		metrics.RecordViewCacheHit(view)
		return hit, true
	}
	metrics.RecordViewCacheMiss(view)
	return nil, false
}

// storeView caches a computed view with the configured TTL.
func (s *Service) storeView(key string, value interface{}) {
	if s.viewCache == nil {
		return
	}
	s.viewCache.SetDefault(key, value)
}

// invalidateViews drops every cached view after a snapshot change.
func (s *Service) invalidateViews() {
	if s.viewCache != nil {
		s.viewCache.Flush()
	}
}
