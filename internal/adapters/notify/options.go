package notify

// Option applies a configuration option to the InMemoryNotifier.
type Option func(*InMemoryNotifier)

// WithCapacity sets the maximum number of undelivered notices.
func WithCapacity(capacity int) Option {
	return func(n *InMemoryNotifier) {
		if capacity > 0 {
			n.capacity = capacity
		}
	}
}
