// Package notify provides a synchronous, ordered notification hub.
//
// A Hub holds an ordered list of subscribers and the most recently published
// value. Publish records the value and delivers it to every subscriber that is
// subscribed at that moment, one after another, in subscription order.
//
// Basic usage:
//
//	hub := notify.New[string]()
//	alice := &Reader{Name: "Alice"}
//	hub.Subscribe(alice)
//
//	if err := hub.Publish(ctx, "Breaking News"); err != nil {
//		// a subscriber failed; the ones before it were already delivered
//	}
//
//	hub.Unsubscribe(alice)
//
// # Ordering
//
// Publish takes a snapshot of the subscriber list before delivering. A
// subscriber added or removed while a publish is in flight, including from
// inside a Receive call, only affects later publishes. Subscribing the same
// subscriber twice delivers every value to it twice.
//
// # Identity
//
// Unsubscribe removes the first entry that is identical to its argument,
// comparing interface values with ==. Pointer subscribers therefore match by
// address. Subscribers whose dynamic value is not comparable, such as
// SubscriberFunc or a struct carrying a slice in an interface field, never
// match; remove them with the Subscription returned by Subscribe.
//
// # Errors
//
// The first failing Receive aborts the remaining deliveries of that publish.
// Publish returns it wrapped in a *DeliveryError, which matches
// ErrSubscriberDelivery with errors.Is and unwraps to the subscriber's error.
// Nothing is retried or rolled back.
package notify
