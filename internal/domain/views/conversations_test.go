package views_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/localhood/skillswap/internal/domain/model"
	"github.com/localhood/skillswap/internal/domain/views"
)

func ts(sec int) time.Time {
	return time.Date(2024, 3, 1, 12, 0, sec, 0, time.UTC)
}

func TestConversations(t *testing.T) {
	const me = "current-user"

	Convey("Given messages with two distinct partners", t, func() {
		messages := []model.Message{
			{ID: "m1", SenderID: "user-aaaa", RecipientID: me, Content: "hi there", Timestamp: ts(1)},
			{ID: "m2", SenderID: me, RecipientID: "user-aaaa", Content: "hello back", Timestamp: ts(2)},
			{ID: "m3", SenderID: "user-bbbb", RecipientID: me, Content: "new chat", Timestamp: ts(3)},
		}

		Convey("When grouping by the current user", func() {
			convos := views.Conversations(messages, me)

			Convey("Then one conversation exists per partner", func() {
				So(convos, ShouldHaveLength, 2)
			})

			Convey("And they are sorted descending by last-message timestamp", func() {
				So(convos[0].PartnerID, ShouldEqual, "user-bbbb")
				So(convos[1].PartnerID, ShouldEqual, "user-aaaa")
			})

			Convey("And the preview reflects the latest message by timestamp", func() {
				So(convos[1].LastMessage, ShouldEqual, "hello back")
				So(convos[1].LastAt, ShouldResemble, ts(2))
			})

			Convey("And the display name derives from the partner id tail", func() {
				So(convos[0].PartnerName, ShouldEqual, "User bbbb")
			})

			Convey("And the thread is sorted ascending by timestamp", func() {
				thread := convos[1].Messages
				So(thread, ShouldHaveLength, 2)
				So(thread[0].ID, ShouldEqual, "m1")
				So(thread[1].ID, ShouldEqual, "m2")
			})
		})
	})

	Convey("Given out-of-order insertion with a later timestamp first", t, func() {
		messages := []model.Message{
			{ID: "m1", SenderID: "user-aaaa", RecipientID: me, Content: "latest", Timestamp: ts(9)},
			{ID: "m2", SenderID: "user-aaaa", RecipientID: me, Content: "older", Timestamp: ts(1)},
		}

		Convey("When grouping", func() {
			convos := views.Conversations(messages, me)

			Convey("Then the preview picks by timestamp, not insertion order", func() {
				So(convos[0].LastMessage, ShouldEqual, "latest")
			})
		})
	})

	Convey("Given unread accounting", t, func() {
		Convey("When the partner wrote after the current user's last reply", func() {
			messages := []model.Message{
				{ID: "m1", SenderID: me, RecipientID: "user-aaaa", Content: "ping", Timestamp: ts(1)},
				{ID: "m2", SenderID: "user-aaaa", RecipientID: me, Content: "pong", Timestamp: ts(2)},
				{ID: "m3", SenderID: "user-aaaa", RecipientID: me, Content: "still there?", Timestamp: ts(3)},
			}
			convos := views.Conversations(messages, me)
			So(convos[0].Unread, ShouldEqual, 2)
		})

		Convey("When the current user replied last", func() {
			messages := []model.Message{
				{ID: "m1", SenderID: "user-aaaa", RecipientID: me, Content: "ping", Timestamp: ts(1)},
				{ID: "m2", SenderID: me, RecipientID: "user-aaaa", Content: "pong", Timestamp: ts(2)},
			}
			convos := views.Conversations(messages, me)
			So(convos[0].Unread, ShouldEqual, 0)
		})

		Convey("When the current user never replied", func() {
			messages := []model.Message{
				{ID: "m1", SenderID: "user-aaaa", RecipientID: me, Content: "hello?", Timestamp: ts(1)},
			}
			convos := views.Conversations(messages, me)
			So(convos[0].Unread, ShouldEqual, 1)
		})
	})

	Convey("Given no messages", t, func() {
		Convey("When grouping", func() {
			So(views.Conversations(nil, me), ShouldBeEmpty)
		})
	})
}
