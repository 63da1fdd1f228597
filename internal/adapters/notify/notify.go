// Package notify defines the contract for publishing and consuming
// user-facing outcome notices, the in-process stand-in for toasts.
//
// Workflows publish fire-and-forget; whatever front end exists consumes the
// channel. The MVP is an in-memory bounded queue.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/localhood/skillswap/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultCapacity = 256
)

// Level classifies a notice for presentation.
type Level string

// Notice levels.
const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notice is one user-facing outcome message.
type Notice struct {
	Level Level
	Text  string
	At    time.Time
}

// Notifier provides non-blocking publish and channel-based consume semantics.
type Notifier interface {
	// Publish adds a notice to the queue.
	// Returns false if the queue is full or closed and the notice was dropped.
	Publish(ctx context.Context, n Notice) bool

	// Subscribe returns a channel that will receive notices as they are
	// published. The channel is closed when the notifier is closed.
	Subscribe(ctx context.Context) <-chan Notice

	// Pending returns the current number of undelivered notices.
	Pending(ctx context.Context) int

	// Close gracefully shuts down the notifier.
	// After closing, publishes are dropped and the subscribe channel closes.
	Close() error
}

// InMemoryNotifier implements Notifier using a buffered channel.
type InMemoryNotifier struct {
	notices  chan Notice
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewInMemoryNotifier creates a new in-memory notifier with options.
func NewInMemoryNotifier(opts ...Option) *InMemoryNotifier {
	n := &InMemoryNotifier{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(n)
	}

	n.notices = make(chan Notice, n.capacity)

	metrics.UpdateNoticeQueueSize(0)
	return n
}

// Publish adds a notice to the queue, stamping At when unset.
func (n *InMemoryNotifier) Publish(ctx context.Context, notice Notice) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		metrics.RecordNoticeDropped()
		return false
	}
	if notice.At.IsZero() {
		notice.At = time.Now()
	}

	select {
	case n.notices <- notice:
		metrics.RecordNoticePublished()
		metrics.UpdateNoticeQueueSize(len(n.notices))
		return true
	case <-ctx.Done():
		metrics.RecordNoticeDropped()
		return false
	default:
		// Queue full; notices are best-effort, drop rather than block.
		metrics.RecordNoticeDropped()
		return false
	}
}

// Subscribe returns a channel receiving notices until the notifier closes or
// ctx is cancelled.
func (n *InMemoryNotifier) Subscribe(ctx context.Context) <-chan Notice {
	out := make(chan Notice)
	go func() {
		defer close(out)
		for notice := range n.notices {
			metrics.UpdateNoticeQueueSize(len(n.notices))
			select {
			case out <- notice:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Pending returns the current number of undelivered notices.
func (n *InMemoryNotifier) Pending(_ context.Context) int {
	return len(n.notices)
}

// Close shuts the notifier down. Subsequent publishes are dropped.
func (n *InMemoryNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return ErrClosed
	}
	n.closed = true
	close(n.notices)
	return nil
}
