package repository

import (
	"time"

	"github.com/localhood/skillswap/internal/domain/model"
)

// Store kind labels, shared with metrics.
const (
	KindUsers    = "users"
	KindSkills   = "skills"
	KindMatches  = "matches"
	KindSessions = "sessions"
	KindMessages = "messages"
	KindRatings  = "ratings"
)

// defaultSessionCredits is the reward stamped onto a session created without
// an explicit credit amount.
const defaultSessionCredits = 1

// Stores bundles the six entity stores the application works against.
type Stores struct {
	Users    *Store[model.User]
	Skills   *Store[model.Skill]
	Matches  *Store[model.Match]
	Sessions *Store[model.Session]
	Messages *Store[model.Message]
	Ratings  *Store[model.Rating]
}

// NewUserStore builds the user store. Creation stamps the join date.
func NewUserStore(seed []model.User, opts ...Option[model.User]) *Store[model.User] {
	return New(KindUsers, seed, func(u model.User, id string, now time.Time) model.User {
		u.ID = id
		if u.JoinDate.IsZero() {
			u.JoinDate = now
		}
		return u
	}, opts...)
}

// NewSkillStore builds the skill store.
func NewSkillStore(seed []model.Skill, opts ...Option[model.Skill]) *Store[model.Skill] {
	return New(KindSkills, seed, func(s model.Skill, id string, now time.Time) model.Skill {
		s.ID = id
		s.CreatedAt = now
		return s
	}, opts...)
}

// NewMatchStore builds the match store. New matches default to pending.
func NewMatchStore(seed []model.Match, opts ...Option[model.Match]) *Store[model.Match] {
	return New(KindMatches, seed, func(m model.Match, id string, now time.Time) model.Match {
		m.ID = id
		m.CreatedAt = now
		if m.Status == "" {
			m.Status = model.MatchPending
		}
		return m
	}, opts...)
}

// NewSessionStore builds the session store. New sessions default to
// scheduled and reward one credit.
func NewSessionStore(seed []model.Session, opts ...Option[model.Session]) *Store[model.Session] {
	return New(KindSessions, seed, func(s model.Session, id string, now time.Time) model.Session {
		s.ID = id
		s.CreatedAt = now
		if s.Status == "" {
			s.Status = model.SessionScheduled
		}
		if s.Credits <= 0 {
			s.Credits = defaultSessionCredits
		}
		return s
	}, opts...)
}

// NewMessageStore builds the message store.
func NewMessageStore(seed []model.Message, opts ...Option[model.Message]) *Store[model.Message] {
	return New(KindMessages, seed, func(m model.Message, id string, now time.Time) model.Message {
		m.ID = id
		if m.Timestamp.IsZero() {
			m.Timestamp = now
		}
		return m
	}, opts...)
}

// NewRatingStore builds the rating store.
func NewRatingStore(seed []model.Rating, opts ...Option[model.Rating]) *Store[model.Rating] {
	return New(KindRatings, seed, func(r model.Rating, id string, now time.Time) model.Rating {
		r.ID = id
		r.CreatedAt = now
		return r
	}, opts...)
}
