package views

import (
	"time"

	"github.com/localhood/skillswap/internal/domain/model"
)

// daysPerWeek is the calendar week length; weeks start on Sunday.
const daysPerWeek = 7

// DaySchedule is one calendar day and the sessions falling on it.
type DaySchedule struct {
	Day      time.Time
	Sessions []model.Session
}

// WeekStart returns midnight on the Sunday of the week containing anchor, in
// anchor's location.
func WeekStart(anchor time.Time) time.Time {
	midnight := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// WeekDays returns the seven days of the week containing anchor.
func WeekDays(anchor time.Time) [daysPerWeek]time.Time {
	var days [daysPerWeek]time.Time
	start := WeekStart(anchor)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// SameDay reports whether a and b fall on the same calendar day. This is a
// year/month/day equality check, not a 24-hour range: two instants minutes
// apart across midnight land on different days.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SessionsOn returns the subsequence of sessions whose datetime falls on the
// given calendar day, in input order.
func SessionsOn(sessions []model.Session, day time.Time) []model.Session {
	out := make([]model.Session, 0)
	for _, s := range sessions {
		if SameDay(s.Datetime, day) {
			out = append(out, s)
		}
	}
	return out
}

// WeekSchedule buckets sessions into the seven days of the week containing
// anchor. Sessions outside the week appear in no bucket.
func WeekSchedule(sessions []model.Session, anchor time.Time) [daysPerWeek]DaySchedule {
	var week [daysPerWeek]DaySchedule
	for i, day := range WeekDays(anchor) {
		week[i] = DaySchedule{Day: day, Sessions: SessionsOn(sessions, day)}
	}
	return week
}

// ExcludeCancelled filters out cancelled sessions. Cancellation is a status
// flag, so calendar rendering drops them here instead of relying on deletes.
func ExcludeCancelled(sessions []model.Session) []model.Session {
	out := make([]model.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Status != model.SessionCancelled {
			out = append(out, s)
		}
	}
	return out
}
