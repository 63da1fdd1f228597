package matching_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/localhood/skillswap/internal/domain/matching"
)

func TestStaticScorer(t *testing.T) {
	Convey("Given a scorer with no simulated latency", t, func() {
		scorer := matching.NewStaticScorer(matching.WithLatencyRange(0, 0))

		Convey("When scoring a connection request", func() {
			res, err := scorer.Score(context.Background(), matching.Input{
				SkillID:   "skill-105",
				TeacherID: "user-2847",
				LearnerID: "current-user",
			})

			Convey("Then the placeholder score is returned", func() {
				So(err, ShouldBeNil)
				So(res.SkillID, ShouldEqual, "skill-105")
				So(res.Score, ShouldAlmostEqual, 0.85)
			})
		})
	})

	Convey("Given a configured score outside the valid range", t, func() {
		scorer := matching.NewStaticScorer(
			matching.WithScore(1.7),
			matching.WithLatencyRange(0, 0),
		)

		Convey("When scoring", func() {
			res, err := scorer.Score(context.Background(), matching.Input{SkillID: "skill-101"})

			Convey("Then the score is clamped into [0, 1]", func() {
				So(err, ShouldBeNil)
				So(res.Score, ShouldEqual, 1)
			})
		})
	})

	Convey("Given a scorer with simulated latency", t, func() {
		scorer := matching.NewStaticScorer(
			matching.WithLatencyRange(20*time.Millisecond, 30*time.Millisecond),
		)

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := scorer.Score(ctx, matching.Input{SkillID: "skill-101"})

			Convey("Then the round-trip is abandoned", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When scoring with a live context", func() {
			start := time.Now()
			res, err := scorer.Score(context.Background(), matching.Input{SkillID: "skill-101"})

			Convey("Then it waits at least the minimum latency", func() {
				So(err, ShouldBeNil)
				So(res.Score, ShouldAlmostEqual, 0.85)
				So(time.Since(start), ShouldBeGreaterThanOrEqualTo, 20*time.Millisecond)
			})
		})
	})
}

func TestPercent(t *testing.T) {
	Convey("Given fractional compatibility scores", t, func() {
		Convey("When rendering as percentages", func() {
			Convey("Then values round to the nearest whole percent", func() {
				So(matching.Percent(0.85), ShouldEqual, 85)
				So(matching.Percent(0.854), ShouldEqual, 85)
				So(matching.Percent(0.855), ShouldEqual, 86)
				So(matching.Percent(0), ShouldEqual, 0)
				So(matching.Percent(1), ShouldEqual, 100)
			})
		})
	})
}
