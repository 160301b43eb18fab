// Package news provides named readers that subscribe to a notify.Hub of news
// headlines and print every update they receive.
package news

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Reader is a named news subscriber. Readers are identified by pointer, so
// use *Reader values with notify.Hub.
type Reader struct {
	name string
	out  io.Writer

	mu      sync.Mutex
	history []string
}

// NewReader creates a reader that writes updates to out. A nil out discards them.
func NewReader(name string, out io.Writer) *Reader {
	if out == nil {
		out = io.Discard
	}
	return &Reader{name: name, out: out}
}

// Name returns the reader's name.
func (r *Reader) Name() string { return r.name }

// String implements fmt.Stringer.
func (r *Reader) String() string { return "news.Reader(" + r.name + ")" }

// Receive records the headline and writes "<name> received news update: <headline>".
func (r *Reader) Receive(_ context.Context, headline string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := fmt.Fprintf(r.out, "%s received news update: %s\n", r.name, headline); err != nil {
		return fmt.Errorf("news: write update for %s: %w", r.name, err)
	}
	r.history = append(r.history, headline)
	return nil
}

// Received returns the number of updates received so far.
func (r *Reader) Received() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

// History returns a copy of the received headlines in arrival order.
func (r *Reader) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}
