package views

import (
	"sort"
	"time"

	"github.com/localhood/skillswap/internal/domain/model"
)

// partnerNameSuffixLen is how much of the partner id the derived display
// name shows when no user record is available.
const partnerNameSuffixLen = 4

// Conversation is one per-partner message thread as the inbox shows it.
type Conversation struct {
	// PartnerID is the other participant.
	PartnerID string
	// PartnerName is a derived display name, "User <last 4 of id>".
	PartnerName string
	// LastMessage and LastAt describe the most recent message, chosen by
	// timestamp comparison rather than insertion order.
	LastMessage string
	LastAt      time.Time
	// Unread counts partner messages newer than the current user's latest
	// reply in this thread.
	Unread int
	// Messages holds the full thread sorted ascending by timestamp.
	Messages []model.Message
}

// Conversations groups messages by the participant other than currentUserID
// and returns one conversation per distinct partner, sorted descending by
// the last message's timestamp.
func Conversations(messages []model.Message, currentUserID string) []Conversation {
	byPartner := make(map[string][]model.Message)
	order := make([]string, 0)

	for _, m := range messages {
		partner := m.SenderID
		if m.SenderID == currentUserID {
			partner = m.RecipientID
		}
		if _, seen := byPartner[partner]; !seen {
			order = append(order, partner)
		}
		byPartner[partner] = append(byPartner[partner], m)
	}

	out := make([]Conversation, 0, len(order))
	for _, partner := range order {
		thread := byPartner[partner]
		sort.SliceStable(thread, func(i, j int) bool {
			return thread[i].Timestamp.Before(thread[j].Timestamp)
		})
		last := thread[len(thread)-1]
		out = append(out, Conversation{
			PartnerID:   partner,
			PartnerName: partnerName(partner),
			LastMessage: last.Content,
			LastAt:      last.Timestamp,
			Unread:      unreadCount(thread, currentUserID),
			Messages:    thread,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastAt.After(out[j].LastAt)
	})
	return out
}

// partnerName derives a display name from the tail of the partner id.
func partnerName(id string) string {
	suffix := id
	if len(suffix) > partnerNameSuffixLen {
		suffix = suffix[len(suffix)-partnerNameSuffixLen:]
	}
	return "User " + suffix
}

// unreadCount counts incoming messages newer than the current user's most
// recent message in the thread. With no outgoing message, every incoming one
// counts as unread.
func unreadCount(thread []model.Message, currentUserID string) int {
	var lastReply model.Message
	replied := false
	for _, m := range thread {
		if m.SenderID == currentUserID && (!replied || m.Timestamp.After(lastReply.Timestamp)) {
			lastReply = m
			replied = true
		}
	}

	unread := 0
	for _, m := range thread {
		if m.SenderID == currentUserID {
			continue
		}
		if !replied || m.Timestamp.After(lastReply.Timestamp) {
			unread++
		}
	}
	return unread
}
