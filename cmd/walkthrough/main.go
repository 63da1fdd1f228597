// Command walkthrough drives every interaction workflow against an
// in-process service seeded from the embedded fixtures, printing the derived
// views along the way. It doubles as executable documentation of the call
// contract.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/localhood/skillswap/internal/adapters/notify"
	"github.com/localhood/skillswap/internal/adapters/repository"
	app "github.com/localhood/skillswap/internal/app"
	"github.com/localhood/skillswap/internal/domain/matching"
	"github.com/localhood/skillswap/internal/domain/model"
	"github.com/localhood/skillswap/internal/domain/views"
	"github.com/localhood/skillswap/internal/fixtures"
	"github.com/localhood/skillswap/pkg/logger"
)

// Latency windows are shortened so a full run stays under a few seconds
// while still exercising the simulated round-trips.
const (
	readMin  = 20 * time.Millisecond
	readMax  = 30 * time.Millisecond
	writeMin = 30 * time.Millisecond
	writeMax = 40 * time.Millisecond
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("walkthrough failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	if err := logger.Init(); err != nil {
		return err
	}
	_ = logger.SetLevelString("warn") // keep stdout readable; notices are printed directly

	ctx := context.Background()

	seed, err := fixtures.Load()
	if err != nil {
		return err
	}

	svc := app.New(
		app.WithLogger(logger.Get().Named("walkthrough")),
		app.WithStores(buildStores(seed)),
		app.WithScorer(matching.NewStaticScorer(matching.WithLatencyRange(writeMin, writeMax))),
		app.WithNotifier(notify.NewInMemoryNotifier()),
	)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	noticeCtx, stopNotices := context.WithCancel(ctx)
	defer stopNotices()
	go func() {
		for n := range svc.Notices(noticeCtx) {
			fmt.Printf("  [%s] %s\n", n.Level, n.Text)
		}
	}()

	step("Browse: cooking offers")
	for _, s := range svc.BrowseSkills(ctx, views.SkillFilter{Category: "cooking", Type: "offer"}) {
		fmt.Printf("  %-28s %s (%s)\n", s.Title, s.Category, s.Level)
	}

	step("Browse: search 'guitar' across everything")
	for _, s := range svc.BrowseSkills(ctx, views.SkillFilter{Query: "guitar", Category: views.Wildcard, Type: views.Wildcard}) {
		fmt.Printf("  %-28s by %s\n", s.Title, s.UserID)
	}

	step("Add a new skill listing")
	tag := uuid.New().String()[:8]
	added, err := svc.AddSkill(ctx, model.Skill{
		Title:       "Knife Sharpening " + tag,
		Description: "Whetstone basics for kitchen knives.",
		Category:    "crafts",
		Type:        model.SkillOffer,
		Level:       model.LevelIntermediate,
	})
	if err != nil {
		return err
	}
	fmt.Printf("  created %s owned by %s, availability %v\n", added.ID, added.UserID, added.Availability)

	step("Connect to the yoga offer")
	match, err := svc.Connect(ctx, "skill-105")
	if err != nil {
		return err
	}
	fmt.Printf("  match %s, compatibility %d%%, status %s\n", match.ID, match.ScorePercent(), match.Status)

	step("Accept the match")
	match, err = svc.AcceptMatch(ctx, match.ID)
	if err != nil {
		return err
	}
	fmt.Printf("  match %s now %s\n", match.ID, match.Status)

	step("Schedule a session for tomorrow")
	when := time.Now().AddDate(0, 0, 1).Truncate(time.Hour)
	booked, err := svc.ScheduleSession(ctx, match.ID, when, "Park pavilion", 60)
	if err != nil {
		return err
	}
	fmt.Printf("  session %s at %s, %d credits on completion\n", booked.ID, booked.Datetime.Format(time.RFC822), booked.Credits)

	step("Complete one session, cancel another")
	if _, err := svc.CompleteSession(ctx, booked.ID); err != nil {
		return err
	}
	if _, err := svc.CancelSession(ctx, "session-303"); err != nil {
		return err
	}

	step("This week's calendar")
	for _, day := range svc.WeekSchedule(ctx, when) {
		if len(day.Sessions) == 0 {
			continue
		}
		fmt.Printf("  %s: %d session(s)\n", day.Day.Format("Mon Jan 2"), len(day.Sessions))
	}

	step("Chat with the guitar teacher")
	if _, err := svc.SendMessage(ctx, "user-2847", "See you Wednesday! "+tag); err != nil {
		return err
	}
	for _, c := range svc.Conversations(ctx) {
		fmt.Printf("  %-12s %-10s unread=%d last=%q\n", c.PartnerID, c.PartnerName, c.Unread, truncate(c.LastMessage, 40))
	}

	step("Profile")
	stats := svc.Profile(ctx)
	fmt.Printf("  completed=%d creditsEarned=%d", stats.CompletedCount, stats.CreditsEarned)
	if stats.Rated {
		fmt.Printf(" avgRating=%.1f", stats.AverageRating)
	}
	fmt.Println()

	step("Edit profile")
	me, err := svc.UpdateProfile(ctx, "Jordan Avery", "Baker, sysadmin, newly minted knife sharpener.", "Maple Street")
	if err != nil {
		return err
	}
	fmt.Printf("  %s: %q\n", me.Name, me.Bio)

	// Give the notice drain a beat to flush before teardown.
	time.Sleep(100 * time.Millisecond)
	return nil
}

func step(title string) {
	fmt.Printf("\n== %s ==\n", title)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func buildStores(seed fixtures.Data) repository.Stores {
	return repository.Stores{
		Users: repository.NewUserStore(seed.Users,
			repository.WithReadLatency[model.User](readMin, readMax),
			repository.WithWriteLatency[model.User](writeMin, writeMax)),
		Skills: repository.NewSkillStore(seed.Skills,
			repository.WithReadLatency[model.Skill](readMin, readMax),
			repository.WithWriteLatency[model.Skill](writeMin, writeMax)),
		Matches: repository.NewMatchStore(seed.Matches,
			repository.WithReadLatency[model.Match](readMin, readMax),
			repository.WithWriteLatency[model.Match](writeMin, writeMax)),
		Sessions: repository.NewSessionStore(seed.Sessions,
			repository.WithReadLatency[model.Session](readMin, readMax),
			repository.WithWriteLatency[model.Session](writeMin, writeMax)),
		Messages: repository.NewMessageStore(seed.Messages,
			repository.WithReadLatency[model.Message](readMin, readMax),
			repository.WithWriteLatency[model.Message](writeMin, writeMax)),
		Ratings: repository.NewRatingStore(seed.Ratings,
			repository.WithReadLatency[model.Rating](readMin, readMax),
			repository.WithWriteLatency[model.Rating](writeMin, writeMax)),
	}
}
