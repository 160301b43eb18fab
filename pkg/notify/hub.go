package notify

import (
	"context"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispatchkit/pkg/logger"
)

// slot is one subscription entry. Entries are compared by address, so the
// same subscriber subscribed twice occupies two distinct slots.
type slot[V any] struct {
	sub Subscriber[V]
}

// Hub delivers published values to subscribers in subscription order.
type Hub[V any] struct {
	mu       sync.RWMutex
	slots    []*slot[V]
	current  V
	hasValue bool
	logger   *slog.Logger
}

// Option configures a Hub.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for delivery diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a hub with no subscribers and no current value.
func New[V any](opts ...Option) *Hub[V] {
	o := options{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Hub[V]{
		logger: o.logger.With(logger.Component("notify")),
	}
}

// Subscription removes a single subscription entry.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Cancel removes the entry created by the Subscribe call that returned s.
// It is idempotent.
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.once.Do(s.cancel)
}

// Subscribe appends s to the end of the subscriber list. Nil subscribers are
// ignored and yield a no-op Subscription.
func (h *Hub[V]) Subscribe(s Subscriber[V]) *Subscription {
	if s == nil {
		return &Subscription{}
	}
	entry := &slot[V]{sub: s}

	h.mu.Lock()
	h.slots = append(h.slots, entry)
	h.mu.Unlock()

	return &Subscription{cancel: func() { h.remove(entry) }}
}

// Unsubscribe removes the first entry identical to s. It is a no-op when s is
// not subscribed.
func (h *Hub[V]) Unsubscribe(s Subscriber[V]) {
	if s == nil || !reflect.ValueOf(s).Comparable() {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for i, entry := range h.slots {
		if sameSubscriber(entry.sub, s) {
			h.slots = slices.Delete(h.slots, i, i+1)
			return
		}
	}
}

func (h *Hub[V]) remove(entry *slot[V]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if i := slices.Index(h.slots, entry); i >= 0 {
		h.slots = slices.Delete(h.slots, i, i+1)
	}
}

// sameSubscriber compares a and b with == only when both dynamic values are
// comparable. A comparable struct type may still hold a slice, map or func in
// an interface field, so the check inspects values rather than types.
func sameSubscriber[V any](a, b Subscriber[V]) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// Publish records v as the current value and delivers it to every subscriber
// present at the time of the call, in order. The first failing delivery stops
// the loop and is returned as a *DeliveryError. Cancelling ctx stops delivery
// before the next subscriber.
func (h *Hub[V]) Publish(ctx context.Context, v V) error {
	h.mu.Lock()
	h.current = v
	h.hasValue = true
	subscribers := make([]Subscriber[V], len(h.slots))
	for i, entry := range h.slots {
		subscribers[i] = entry.sub
	}
	h.mu.Unlock()

	eventID := uuid.NewString()

	for i, sub := range subscribers {
		err := ctx.Err()
		if err == nil {
			err = sub.Receive(ctx, v)
		}
		if err != nil {
			h.logger.LogAttrs(ctx, slog.LevelError, "delivery failed",
				logger.EventID(eventID),
				logger.Position(i),
				logger.Subscriber(sub),
				slog.Int("remaining", len(subscribers)-i-1),
				logger.Error(err),
			)
			return &DeliveryError{Index: i, Subscriber: sub, Err: err}
		}
	}

	h.logger.LogAttrs(ctx, slog.LevelDebug, "value published",
		logger.EventID(eventID),
		slog.Int("delivered", len(subscribers)),
	)
	return nil
}

// Current returns the most recently published value and whether any value
// has been published yet.
func (h *Hub[V]) Current() (V, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current, h.hasValue
}

// Len returns the number of subscription entries.
func (h *Hub[V]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.slots)
}
