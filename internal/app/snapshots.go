package service

import (
	"github.com/localhood/skillswap/internal/domain/model"
)

// Snapshot accessors hand out defensive copies of the local UI state so view
// builders never observe a half-applied workflow.

func (s *Service) snapshotUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

func (s *Service) snapshotSkills() []model.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Skill(nil), s.skills...)
}

func (s *Service) snapshotMatches() []model.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Match(nil), s.matches...)
}

func (s *Service) snapshotSessions() []model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Session(nil), s.sessions...)
}

func (s *Service) snapshotMessages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Message(nil), s.messages...)
}

func (s *Service) snapshotRatings() []model.Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Rating(nil), s.ratings...)
}

// Matches exposes the match snapshot for listings.
func (s *Service) Matches() []model.Match { return s.snapshotMatches() }

// Users exposes the user snapshot.
func (s *Service) Users() []model.User { return s.snapshotUsers() }

// Sessions exposes the session snapshot.
func (s *Service) Sessions() []model.Session { return s.snapshotSessions() }
