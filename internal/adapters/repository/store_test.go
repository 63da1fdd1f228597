package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/localhood/skillswap/internal/adapters/repository"
	"github.com/localhood/skillswap/internal/domain/model"
)

func seedSkills() []model.Skill {
	return []model.Skill{
		{ID: "skill-1", UserID: "user-a", Title: "Guitar", Category: "music", Type: model.SkillOffer},
		{ID: "skill-2", UserID: "user-b", Title: "Spanish", Category: "language", Type: model.SkillRequest},
	}
}

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()

	Convey("Given a skill store seeded from fixtures", t, func() {
		store := repository.NewSkillStore(seedSkills(), repository.WithNoLatency[model.Skill]())

		Convey("When listing all records", func() {
			all, err := store.GetAll(ctx)
			So(err, ShouldBeNil)

			Convey("Then insertion order is preserved", func() {
				So(all, ShouldHaveLength, 2)
				So(all[0].ID, ShouldEqual, "skill-1")
				So(all[1].ID, ShouldEqual, "skill-2")
			})

			Convey("And the returned slice is a defensive copy", func() {
				all[0].Title = "mutated"
				again, err := store.GetAll(ctx)
				So(err, ShouldBeNil)
				So(again[0].Title, ShouldEqual, "Guitar")
			})
		})

		Convey("When looking up an existing id", func() {
			got, err := store.GetByID(ctx, "skill-2")
			So(err, ShouldBeNil)
			So(got.Title, ShouldEqual, "Spanish")
		})

		Convey("When looking up an unknown id", func() {
			_, err := store.GetByID(ctx, "skill-404")

			Convey("Then it fails with ErrNotFound", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When creating a record", func() {
			created, err := store.Create(ctx, model.Skill{
				UserID: "user-a",
				Title:  "Sourdough",
				Type:   model.SkillOffer,
			})
			So(err, ShouldBeNil)

			Convey("Then caller fields are kept and store fields stamped", func() {
				So(created.Title, ShouldEqual, "Sourdough")
				So(created.ID, ShouldNotBeBlank)
				So(created.CreatedAt.IsZero(), ShouldBeFalse)
			})

			Convey("And the record is retrievable by its new id", func() {
				got, err := store.GetByID(ctx, created.ID)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, created)
			})

			Convey("And ids are unique across creations", func() {
				other, err := store.Create(ctx, model.Skill{Title: "Another"})
				So(err, ShouldBeNil)
				So(other.ID, ShouldNotEqual, created.ID)
			})
		})

		Convey("When updating an existing record with a typed patch", func() {
			title := "Flamenco Guitar"
			level := model.LevelAdvanced
			updated, err := store.Update(ctx, "skill-1", model.SkillPatch{Title: &title, Level: &level})
			So(err, ShouldBeNil)

			Convey("Then patched fields are overwritten and the rest preserved", func() {
				So(updated.Title, ShouldEqual, "Flamenco Guitar")
				So(updated.Level, ShouldEqual, model.LevelAdvanced)
				So(updated.UserID, ShouldEqual, "user-a")
				So(updated.Category, ShouldEqual, "music")
			})
		})

		Convey("When updating an unknown id", func() {
			title := "nope"
			_, err := store.Update(ctx, "skill-404", model.SkillPatch{Title: &title})

			Convey("Then it fails with ErrNotFound and the collection is unchanged", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				all, err := store.GetAll(ctx)
				So(err, ShouldBeNil)
				So(all, ShouldHaveLength, 2)
				So(all[0].Title, ShouldEqual, "Guitar")
			})
		})

		Convey("When deleting an existing id", func() {
			err := store.Delete(ctx, "skill-1")
			So(err, ShouldBeNil)

			Convey("Then the collection shrinks by exactly one and the id is gone", func() {
				all, err := store.GetAll(ctx)
				So(err, ShouldBeNil)
				So(all, ShouldHaveLength, 1)
				_, err = store.GetByID(ctx, "skill-1")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When deleting an unknown id", func() {
			err := store.Delete(ctx, "skill-404")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestStore_Defaults(t *testing.T) {
	ctx := context.Background()

	Convey("Given the match and session stores", t, func() {
		matches := repository.NewMatchStore(nil, repository.WithNoLatency[model.Match]())
		sessions := repository.NewSessionStore(nil, repository.WithNoLatency[model.Session]())

		Convey("When creating a match without a status", func() {
			m, err := matches.Create(ctx, model.Match{SkillID: "skill-1", Score: 0.85})
			So(err, ShouldBeNil)

			Convey("Then it defaults to pending", func() {
				So(m.Status, ShouldEqual, model.MatchPending)
			})
		})

		Convey("When creating a session without status or credits", func() {
			sess, err := sessions.Create(ctx, model.Session{MatchID: "match-1", Duration: 60})
			So(err, ShouldBeNil)

			Convey("Then it defaults to scheduled with one credit", func() {
				So(sess.Status, ShouldEqual, model.SessionScheduled)
				So(sess.Credits, ShouldEqual, 1)
			})
		})

		Convey("When creating a session with explicit credits", func() {
			sess, err := sessions.Create(ctx, model.Session{MatchID: "match-1", Credits: 3})
			So(err, ShouldBeNil)
			So(sess.Credits, ShouldEqual, 3)
		})
	})
}

func TestStore_Latency(t *testing.T) {
	Convey("Given a store with a simulated latency window", t, func() {
		store := repository.NewSkillStore(seedSkills(),
			repository.WithReadLatency[model.Skill](20*time.Millisecond, 30*time.Millisecond),
			repository.WithWriteLatency[model.Skill](20*time.Millisecond, 30*time.Millisecond),
		)

		Convey("When reading with a live context", func() {
			start := time.Now()
			_, err := store.GetAll(context.Background())

			Convey("Then the call waits out the window", func() {
				So(err, ShouldBeNil)
				So(time.Since(start), ShouldBeGreaterThanOrEqualTo, 20*time.Millisecond)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := store.GetAll(ctx)

			Convey("Then the call aborts before touching the collection", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestStore_MonotonicIDs(t *testing.T) {
	ctx := context.Background()

	Convey("Given rapid creations against one store", t, func() {
		store := repository.NewRatingStore(nil, repository.WithNoLatency[model.Rating]())

		Convey("When many records are created back to back", func() {
			seen := make(map[string]bool)
			prev := ""
			for i := 0; i < 100; i++ {
				r, err := store.Create(ctx, model.Rating{Rating: 5})
				So(err, ShouldBeNil)
				So(seen[r.ID], ShouldBeFalse)
				seen[r.ID] = true
				if prev != "" {
					So(r.ID > prev || len(r.ID) > len(prev), ShouldBeTrue)
				}
				prev = r.ID
			}
		})
	})
}
