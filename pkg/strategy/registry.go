package strategy

import (
	"iter"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/dispatchkit/pkg/logger"
)

// Factory produces a fresh behavior value.
type Factory[B any] func() B

type entry[B any] struct {
	key     string // casing supplied by the latest Register call
	factory Factory[B]
}

// Registry maps case-insensitive keys to behavior factories.
type Registry[B any] struct {
	mu      sync.RWMutex
	entries map[string]entry[B]
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for registration diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates an empty registry.
func New[B any](opts ...Option) *Registry[B] {
	o := options{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[B]{
		entries: make(map[string]entry[B]),
		logger:  o.logger.With(logger.Component("strategy")),
	}
}

// fold returns the lookup form of key. A Caser keeps internal state, so a new
// one is created per call.
func fold(key string) string {
	return cases.Fold().String(key)
}

// Register stores f under key, replacing any factory registered under the same
// folded key. A nil factory is ignored.
func (r *Registry[B]) Register(key string, f Factory[B]) {
	if f == nil {
		return
	}
	folded := fold(key)

	r.mu.Lock()
	_, replaced := r.entries[folded]
	r.entries[folded] = entry[B]{key: key, factory: f}
	r.mu.Unlock()

	r.logger.Debug("behavior registered",
		logger.BehaviorKey(key),
		slog.Bool("replaced", replaced),
	)
}

// Unregister removes the factory for key and reports whether one was present.
func (r *Registry[B]) Unregister(key string) bool {
	folded := fold(key)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[folded]; !ok {
		return false
	}
	delete(r.entries, folded)
	return true
}

// Resolve invokes the factory registered for key.
// It returns an *UnknownBehaviorKindError when key is not registered.
func (r *Registry[B]) Resolve(key string) (B, error) {
	r.mu.RLock()
	e, ok := r.entries[fold(key)]
	r.mu.RUnlock()

	if !ok {
		var zero B
		return zero, &UnknownBehaviorKindError{Key: key}
	}
	// The factory runs outside the lock so it may use the registry itself.
	return e.factory(), nil
}

// MustResolve is like Resolve but panics when key is not registered.
func (r *Registry[B]) MustResolve(key string) B {
	b, err := r.Resolve(key)
	if err != nil {
		panic(err)
	}
	return b
}

// Has reports whether a factory is registered for key.
func (r *Registry[B]) Has(key string) bool {
	r.mu.RLock()
	_, ok := r.entries[fold(key)]
	r.mu.RUnlock()
	return ok
}

// Len returns the number of registered keys.
func (r *Registry[B]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Keys returns the registered keys sorted by their folded form.
// The set is captured when Keys is called; the returned sequence may be
// ranged over any number of times and is unaffected by later registrations.
func (r *Registry[B]) Keys() iter.Seq[string] {
	r.mu.RLock()
	folded := make([]string, 0, len(r.entries))
	for k := range r.entries {
		folded = append(folded, k)
	}
	slices.Sort(folded)
	keys := make([]string, len(folded))
	for i, k := range folded {
		keys[i] = r.entries[k].key
	}
	r.mu.RUnlock()

	return slices.Values(keys)
}
