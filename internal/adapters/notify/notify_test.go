package notify_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/localhood/skillswap/internal/adapters/notify"
)

func TestInMemoryNotifier(t *testing.T) {
	Convey("Given an in-memory notifier", t, func() {
		n := notify.NewInMemoryNotifier()
		defer n.Close() //nolint:errcheck // already-closed is fine in teardown

		Convey("When publishing a notice", func() {
			ok := n.Publish(context.Background(), notify.Notice{
				Level: notify.LevelSuccess,
				Text:  "Match request sent!",
			})

			Convey("Then it is queued for delivery", func() {
				So(ok, ShouldBeTrue)
				So(n.Pending(context.Background()), ShouldEqual, 1)
			})

			Convey("Then a subscriber receives it with a publish timestamp", func() {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()

				notice := <-n.Subscribe(ctx)
				So(notice.Level, ShouldEqual, notify.LevelSuccess)
				So(notice.Text, ShouldEqual, "Match request sent!")
				So(notice.At.IsZero(), ShouldBeFalse)
			})
		})

		Convey("When publishing several notices", func() {
			ctx := context.Background()
			n.Publish(ctx, notify.Notice{Level: notify.LevelInfo, Text: "first"})
			n.Publish(ctx, notify.Notice{Level: notify.LevelInfo, Text: "second"})

			Convey("Then they are delivered in order", func() {
				sctx, cancel := context.WithTimeout(ctx, time.Second)
				defer cancel()

				out := n.Subscribe(sctx)
				So((<-out).Text, ShouldEqual, "first")
				So((<-out).Text, ShouldEqual, "second")
			})
		})
	})

	Convey("Given a notifier at capacity", t, func() {
		n := notify.NewInMemoryNotifier(notify.WithCapacity(1))
		defer n.Close() //nolint:errcheck

		ctx := context.Background()
		So(n.Publish(ctx, notify.Notice{Text: "kept"}), ShouldBeTrue)

		Convey("When publishing past capacity", func() {
			ok := n.Publish(ctx, notify.Notice{Text: "dropped"})

			Convey("Then the notice is dropped instead of blocking", func() {
				So(ok, ShouldBeFalse)
				So(n.Pending(ctx), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a closed notifier", t, func() {
		n := notify.NewInMemoryNotifier()
		So(n.Close(), ShouldBeNil)

		Convey("When publishing", func() {
			ok := n.Publish(context.Background(), notify.Notice{Text: "late"})

			Convey("Then the publish is dropped", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When closing again", func() {
			Convey("Then the second close reports the closed state", func() {
				So(n.Close(), ShouldEqual, notify.ErrClosed)
			})
		})

		Convey("When subscribing", func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			Convey("Then the subscription channel closes", func() {
				_, open := <-n.Subscribe(ctx)
				So(open, ShouldBeFalse)
			})
		})
	})
}
