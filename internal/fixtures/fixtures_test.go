package fixtures_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/localhood/skillswap/internal/domain/model"
	"github.com/localhood/skillswap/internal/fixtures"
)

func TestLoad(t *testing.T) {
	Convey("Given the embedded seed data", t, func() {
		Convey("When decoding it", func() {
			data, err := fixtures.Load()
			So(err, ShouldBeNil)

			Convey("Then every entity list is populated", func() {
				So(data.Users, ShouldHaveLength, 5)
				So(data.Skills, ShouldHaveLength, 7)
				So(data.Matches, ShouldHaveLength, 3)
				So(data.Sessions, ShouldHaveLength, 4)
				So(data.Messages, ShouldHaveLength, 6)
				So(data.Ratings, ShouldHaveLength, 3)
			})

			Convey("Then the signed-in placeholder user exists", func() {
				ids := make(map[string]bool, len(data.Users))
				for _, u := range data.Users {
					ids[u.ID] = true
				}
				So(ids["current-user"], ShouldBeTrue)
				So(ids["matched-user"], ShouldBeTrue)
			})

			Convey("Then every skill references a seeded user", func() {
				users := make(map[string]bool, len(data.Users))
				for _, u := range data.Users {
					users[u.ID] = true
				}
				for _, s := range data.Skills {
					So(users[s.UserID], ShouldBeTrue)
					So(s.Type == model.SkillOffer || s.Type == model.SkillRequest, ShouldBeTrue)
				}
			})

			Convey("Then every session references a seeded match", func() {
				matches := make(map[string]bool, len(data.Matches))
				for _, m := range data.Matches {
					matches[m.ID] = true
				}
				for _, s := range data.Sessions {
					So(matches[s.MatchID], ShouldBeTrue)
				}
			})

			Convey("Then ratings stay within the five-star scale", func() {
				for _, r := range data.Ratings {
					So(r.Rating, ShouldBeBetweenOrEqual, 1, 5)
				}
			})
		})
	})
}
