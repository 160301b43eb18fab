package notify

import (
	"context"
	"sync"
)

// Buffered is a subscriber that forwards values to a buffered channel, letting
// a consumer read deliveries on its own goroutine.
// Receive never blocks: a full buffer fails the delivery with ErrBufferFull.
type Buffered[V any] struct {
	ch     chan V
	closed bool
	mu     sync.RWMutex
}

// NewBuffered creates a Buffered subscriber. A minimum buffer size of 1 is enforced.
func NewBuffered[V any](size int) *Buffered[V] {
	return &Buffered[V]{ch: make(chan V, max(size, 1))}
}

// C returns the channel deliveries are forwarded to.
func (b *Buffered[V]) C() <-chan V {
	return b.ch
}

// Receive forwards v to the channel.
func (b *Buffered[V]) Receive(_ context.Context, v V) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrSubscriberClosed
	}

	select {
	case b.ch <- v:
		return nil
	default:
		return ErrBufferFull
	}
}

// Close closes the channel. It is safe to call multiple times.
func (b *Buffered[V]) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		close(b.ch)
		b.closed = true
	}
	return nil
}
