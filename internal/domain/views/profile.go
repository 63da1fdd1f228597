package views

import (
	"github.com/localhood/skillswap/internal/domain/model"
)

// fallbackSessionCredits mirrors the store default for sessions whose credit
// amount is missing from older fixture data.
const fallbackSessionCredits = 1

// ProfileStats aggregates a user's session history and the ratings feed.
type ProfileStats struct {
	// Completed holds the completed sessions, newest fixture order kept.
	Completed      []model.Session
	CompletedCount int
	// CreditsEarned sums credits over completed sessions only, treating a
	// missing amount as one credit. The user record's balance field is
	// display-only and is never reconciled against this.
	CreditsEarned int
	// AverageRating is the arithmetic mean over all ratings; Rated is false
	// when there are none and AverageRating is then 0.
	AverageRating float64
	Rated         bool
}

// Profile computes the profile aggregates from session and rating snapshots.
func Profile(sessions []model.Session, ratings []model.Rating) ProfileStats {
	stats := ProfileStats{Completed: make([]model.Session, 0)}

	for _, s := range sessions {
		if s.Status != model.SessionCompleted {
			continue
		}
		stats.Completed = append(stats.Completed, s)
		credits := s.Credits
		if credits <= 0 {
			credits = fallbackSessionCredits
		}
		stats.CreditsEarned += credits
	}
	stats.CompletedCount = len(stats.Completed)

	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Rating
		}
		stats.AverageRating = float64(sum) / float64(len(ratings))
		stats.Rated = true
	}
	return stats
}
