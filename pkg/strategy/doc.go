// Package strategy provides a generic registry of named behavior factories.
//
// A Registry maps case-insensitive keys to zero-argument factories. Resolving
// a key invokes its factory and returns a fresh behavior value, so adding a new
// behavior variant is a registration call rather than a new branch in a
// type switch.
//
// Basic usage:
//
//	payments := strategy.New[payment.Method]()
//	payments.Register("paypal", func() payment.Method { return payment.PayPal{} })
//
//	method, err := payments.Resolve("PayPal")
//	if errors.Is(err, strategy.ErrUnknownBehaviorKind) {
//		// ask the caller for a valid key
//	}
//
// # Keys
//
// Keys are compared with Unicode case folding, so "dog", "DOG" and "Dog" all
// address the same entry. The registry keeps the casing supplied by the most
// recent Register call for a key, and Keys yields that casing.
//
// Register never fails: registering an existing key replaces its factory
// (last write wins). Resolve on an unknown key always fails with an error
// matching ErrUnknownBehaviorKind and never returns a silent zero value.
//
// # Concurrency
//
// All methods are safe for concurrent use. Ordering guarantees such as "the
// last registration wins" only hold for calls that are sequenced by the caller.
package strategy
