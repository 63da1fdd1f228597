// Package model contains domain models passed between layers.
package model

import (
	"math"
	"time"
)

// SkillType distinguishes skills offered to teach from skills requested to learn.
type SkillType string

// Skill types.
const (
	SkillOffer   SkillType = "offer"
	SkillRequest SkillType = "request"
)

// SkillLevel is the self-reported proficiency attached to a skill listing.
type SkillLevel string

// Skill levels.
const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// MatchStatus tracks a match through its lifecycle.
type MatchStatus string

// Match statuses.
const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
)

// SessionStatus tracks a session through its lifecycle. Cancellation is a
// status transition, never a removal, so calendar views can keep showing
// cancelled slots.
type SessionStatus string

// Session statuses.
const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Entity is implemented by every record the stores hold.
type Entity interface {
	EntityID() string
}

// User is a neighborhood member. Seeded at load, edited in place by the
// profile workflow, never deleted.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Bio      string    `json:"bio"`
	Location string    `json:"location"`
	Credits  int       `json:"credits"`
	JoinDate time.Time `json:"joinDate"`
}

func (u User) EntityID() string { return u.ID }

// Skill is something a user can teach or wants to learn. UserID is an
// unvalidated reference; the stores enforce no referential integrity.
type Skill struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Type         SkillType  `json:"type"`
	Level        SkillLevel `json:"level"`
	Availability []string   `json:"availability"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (s Skill) EntityID() string { return s.ID }

// Match pairs a teacher and a learner around one skill. Score is a
// compatibility value in [0, 1].
type Match struct {
	ID        string      `json:"id"`
	SkillID   string      `json:"skillId"`
	TeacherID string      `json:"teacherId"`
	LearnerID string      `json:"learnerId"`
	Score     float64     `json:"score"`
	Status    MatchStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (m Match) EntityID() string { return m.ID }

// ScorePercent renders the compatibility score as a 0-100 percentage.
func (m Match) ScorePercent() int { return int(math.Round(m.Score * 100)) }

// Session is a scheduled meeting for an accepted match. Duration is in
// minutes; Credits is the reward granted on completion and defaults to 1.
type Session struct {
	ID        string        `json:"id"`
	MatchID   string        `json:"matchId"`
	Datetime  time.Time     `json:"datetime"`
	Location  string        `json:"location"`
	Duration  int           `json:"duration"`
	Credits   int           `json:"credits"`
	Status    SessionStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (s Session) EntityID() string { return s.ID }

// Message is one chat message between two users. SessionID is an optional,
// unvalidated correlation to a session. Append-only in practice.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	SessionID   string    `json:"sessionId,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func (m Message) EntityID() string { return m.ID }

// Rating is a 1-5 review. The profile view aggregates ratings globally; they
// carry no session or user attribution.
type Rating struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r Rating) EntityID() string { return r.ID }
