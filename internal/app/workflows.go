package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/localhood/skillswap/internal/domain/matching"
	"github.com/localhood/skillswap/internal/domain/model"
	"github.com/localhood/skillswap/pkg/metrics"
)

// AddSkill creates a skill listing owned by the current user. Availability
// defaults to the usual neighborhood slots when the draft carries none.
func (s *Service) AddSkill(ctx context.Context, draft model.Skill) (model.Skill, error) {
	draft.UserID = s.currentUserID
	if len(draft.Availability) == 0 {
		draft.Availability = append([]string(nil), defaultAvailability...)
	}

	created, err := s.stores.Skills.Create(ctx, draft)
	if err != nil {
		return model.Skill{}, s.fail(ctx, "add_skill", "Failed to add skill", err)
	}

	s.mu.Lock()
	s.skills = append(s.skills, created)
	s.mu.Unlock()
	s.invalidateViews()

	s.succeed(ctx, "add_skill", "Skill added successfully!")
	return created, nil
}

// RemoveSkill deletes one of the current user's listings.
func (s *Service) RemoveSkill(ctx context.Context, skillID string) error {
	if err := s.stores.Skills.Delete(ctx, skillID); err != nil {
		return s.fail(ctx, "remove_skill", "Failed to delete skill", err)
	}

	s.mu.Lock()
	for i := range s.skills {
		if s.skills[i].ID == skillID {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.invalidateViews()

	s.succeed(ctx, "remove_skill", "Skill removed")
	return nil
}

// Connect requests a match against a skill listing. The counterpart is the
// configured placeholder until real matching exists; the compatibility score
// comes from the scorer stub.
func (s *Service) Connect(ctx context.Context, skillID string) (model.Match, error) {
	result, err := s.scorer.Score(ctx, matching.Input{
		SkillID:   skillID,
		TeacherID: s.currentUserID,
		LearnerID: s.matchedUserID,
	})
	if err != nil {
		return model.Match{}, s.fail(ctx, "connect", "Failed to process request", err)
	}

	created, err := s.stores.Matches.Create(ctx, model.Match{
		SkillID:   skillID,
		TeacherID: s.currentUserID,
		LearnerID: s.matchedUserID,
		Score:     result.Score,
		Status:    model.MatchPending,
	})
	if err != nil {
		return model.Match{}, s.fail(ctx, "connect", "Failed to process request", err)
	}

	s.mu.Lock()
	s.matches = append(s.matches, created)
	s.mu.Unlock()
	s.invalidateViews()

	s.succeed(ctx, "connect", "Match request sent!")
	return created, nil
}

// AcceptMatch transitions a pending match to accepted. Any other starting
// status is rejected.
func (s *Service) AcceptMatch(ctx context.Context, matchID string) (model.Match, error) {
	current, err := s.stores.Matches.GetByID(ctx, matchID)
	if err != nil {
		return model.Match{}, s.fail(ctx, "accept_match", "Failed to accept match", err)
	}
	if current.Status != model.MatchPending {
		err := fmt.Errorf("match %q is %s: %w", matchID, current.Status, ErrBadTransition)
		return model.Match{}, s.fail(ctx, "accept_match", "Match can no longer be accepted", err)
	}

	accepted := model.MatchAccepted
	updated, err := s.stores.Matches.Update(ctx, matchID, model.MatchPatch{Status: &accepted})
	if err != nil {
		return model.Match{}, s.fail(ctx, "accept_match", "Failed to accept match", err)
	}

	s.replaceMatch(updated)
	s.invalidateViews()

	s.succeed(ctx, "accept_match", "Match accepted!")
	return updated, nil
}

// ScheduleSession books a session for a match. Status and credit defaults
// are stamped by the store.
func (s *Service) ScheduleSession(ctx context.Context, matchID string, when time.Time, location string, durationMinutes int) (model.Session, error) {
	created, err := s.stores.Sessions.Create(ctx, model.Session{
		MatchID:  matchID,
		Datetime: when,
		Location: location,
		Duration: durationMinutes,
	})
	if err != nil {
		return model.Session{}, s.fail(ctx, "schedule_session", "Failed to schedule session", err)
	}

	s.mu.Lock()
	s.sessions = append(s.sessions, created)
	s.mu.Unlock()
	s.invalidateViews()

	s.succeed(ctx, "schedule_session", "Session scheduled successfully!")
	return created, nil
}

// CompleteSession marks a session completed. Credits stay recomputed from
// completed sessions at view time; no balance is written to the user record.
func (s *Service) CompleteSession(ctx context.Context, sessionID string) (model.Session, error) {
	completed := model.SessionCompleted
	updated, err := s.stores.Sessions.Update(ctx, sessionID, model.SessionPatch{Status: &completed})
	if err != nil {
		return model.Session{}, s.fail(ctx, "complete_session", "Failed to complete session", err)
	}

	s.replaceSession(updated)
	s.invalidateViews()

	s.succeed(ctx, "complete_session", "Session marked as completed! Credits have been added.")
	return updated, nil
}

// CancelSession soft-cancels a session via status so calendar views can keep
// rendering the slot. The record is never deleted.
func (s *Service) CancelSession(ctx context.Context, sessionID string) (model.Session, error) {
	cancelled := model.SessionCancelled
	updated, err := s.stores.Sessions.Update(ctx, sessionID, model.SessionPatch{Status: &cancelled})
	if err != nil {
		return model.Session{}, s.fail(ctx, "cancel_session", "Failed to cancel session", err)
	}

	s.replaceSession(updated)
	s.invalidateViews()

	s.succeed(ctx, "cancel_session", "Session cancelled successfully.")
	return updated, nil
}

// SendMessage sends a chat message from the current user to a conversation
// partner. Blank content never reaches the store.
func (s *Service) SendMessage(ctx context.Context, partnerID, content string) (model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return model.Message{}, s.fail(ctx, "send_message", "Failed to send message", ErrEmptyMessage)
	}

	created, err := s.stores.Messages.Create(ctx, model.Message{
		SenderID:    s.currentUserID,
		RecipientID: partnerID,
		Content:     content,
	})
	if err != nil {
		return model.Message{}, s.fail(ctx, "send_message", "Failed to send message", err)
	}

	s.mu.Lock()
	s.messages = append(s.messages, created)
	s.mu.Unlock()
	s.invalidateViews()

	// Chat sends show no success toast; the message appearing is the feedback.
	metrics.RecordWorkflowOutcome("send_message", "success")
	return created, nil
}

// UpdateProfile edits the current user's editable fields.
func (s *Service) UpdateProfile(ctx context.Context, name, bio, location string) (model.User, error) {
	updated, err := s.stores.Users.Update(ctx, s.currentUserID, model.UserPatch{
		Name:     &name,
		Bio:      &bio,
		Location: &location,
	})
	if err != nil {
		return model.User{}, s.fail(ctx, "update_profile", "Failed to update profile", err)
	}

	s.mu.Lock()
	for i := range s.users {
		if s.users[i].ID == updated.ID {
			s.users[i] = updated
			break
		}
	}
	s.mu.Unlock()
	s.invalidateViews()

	s.succeed(ctx, "update_profile", "Profile updated successfully!")
	return updated, nil
}

func (s *Service) replaceMatch(m model.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.matches {
		if s.matches[i].ID == m.ID {
			s.matches[i] = m
			return
		}
	}
	s.matches = append(s.matches, m)
}

func (s *Service) replaceSession(sess model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID == sess.ID {
			s.sessions[i] = sess
			return
		}
	}
	s.sessions = append(s.sessions, sess)
}
