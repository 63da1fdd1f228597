package model

import "time"

// Patches enumerate the fields each workflow may legally change. A nil field
// leaves the stored value untouched; unknown keys cannot exist by
// construction, unlike a free-form merge.

// UserPatch covers the profile-edit workflow.
type UserPatch struct {
	Name     *string
	Bio      *string
	Location *string
	Credits  *int
}

// Apply overwrites the set fields on u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Credits != nil {
		u.Credits = *p.Credits
	}
}

// SkillPatch covers listing edits.
type SkillPatch struct {
	Title        *string
	Description  *string
	Category     *string
	Type         *SkillType
	Level        *SkillLevel
	Availability *[]string
}

// Apply overwrites the set fields on s.
func (p SkillPatch) Apply(s *Skill) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Level != nil {
		s.Level = *p.Level
	}
	if p.Availability != nil {
		s.Availability = append([]string(nil), *p.Availability...)
	}
}

// MatchPatch covers the accept workflow.
type MatchPatch struct {
	Status *MatchStatus
	Score  *float64
}

// Apply overwrites the set fields on m.
func (p MatchPatch) Apply(m *Match) {
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Score != nil {
		m.Score = *p.Score
	}
}

// SessionPatch covers rescheduling and status transitions.
type SessionPatch struct {
	Status   *SessionStatus
	Datetime *time.Time
	Location *string
	Duration *int
	Credits  *int
}

// Apply overwrites the set fields on s.
func (p SessionPatch) Apply(s *Session) {
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Datetime != nil {
		s.Datetime = *p.Datetime
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Credits != nil {
		s.Credits = *p.Credits
	}
}

// MessagePatch exists for contract completeness; exercised flows never edit
// a sent message.
type MessagePatch struct {
	Content *string
}

// Apply overwrites the set fields on m.
func (p MessagePatch) Apply(m *Message) {
	if p.Content != nil {
		m.Content = *p.Content
	}
}

// RatingPatch exists for contract completeness.
type RatingPatch struct {
	Rating  *int
	Comment *string
}

// Apply overwrites the set fields on r.
func (p RatingPatch) Apply(r *Rating) {
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
}
