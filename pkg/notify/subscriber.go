package notify

import "context"

// Subscriber receives published values.
type Subscriber[V any] interface {
	// Receive handles one published value. A non-nil error aborts the
	// remaining deliveries of the current publish.
	Receive(ctx context.Context, v V) error
}

// SubscriberFunc adapts a function to the Subscriber interface.
// Function values are not comparable, so a SubscriberFunc can only be removed
// through its Subscription.
type SubscriberFunc[V any] func(ctx context.Context, v V) error

// Receive calls f(ctx, v).
func (f SubscriberFunc[V]) Receive(ctx context.Context, v V) error {
	return f(ctx, v)
}
