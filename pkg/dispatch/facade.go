// Package dispatch composes the payment and animal registries and the news
// hub behind a single Facade, so callers hold one value to resolve behaviors
// by name and to announce headlines.
package dispatch

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/dispatchkit/pkg/animal"
	"github.com/dmitrymomot/dispatchkit/pkg/logger"
	"github.com/dmitrymomot/dispatchkit/pkg/notify"
	"github.com/dmitrymomot/dispatchkit/pkg/payment"
	"github.com/dmitrymomot/dispatchkit/pkg/strategy"
)

// Facade is the single entry point over the registries and the hub.
type Facade struct {
	payments *strategy.Registry[payment.Method]
	animals  *strategy.Registry[animal.Animal]
	news     *notify.Hub[string]
	logger   *slog.Logger
}

// Option configures a Facade.
type Option func(*Facade)

// WithLogger sets the logger shared by the facade and its components.
func WithLogger(l *slog.Logger) Option {
	return func(f *Facade) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a facade with the default payment methods and animals
// registered and an empty news hub.
func New(opts ...Option) *Facade {
	f := &Facade{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(f)
	}

	f.payments = strategy.New[payment.Method](strategy.WithLogger(f.logger))
	f.animals = strategy.New[animal.Animal](strategy.WithLogger(f.logger))
	f.news = notify.New[string](notify.WithLogger(f.logger))

	payment.RegisterDefaults(f.payments)
	animal.RegisterDefaults(f.animals)

	f.logger = f.logger.With(logger.Component("dispatch"))
	return f
}

// Payments returns the payment method registry.
func (f *Facade) Payments() *strategy.Registry[payment.Method] { return f.payments }

// Animals returns the animal registry.
func (f *Facade) Animals() *strategy.Registry[animal.Animal] { return f.animals }

// News returns the news hub.
func (f *Facade) News() *notify.Hub[string] { return f.news }

// PayVia resolves the payment method registered under key and pays amount with it.
func (f *Facade) PayVia(ctx context.Context, key string, amount int) (payment.Receipt, error) {
	method, err := f.payments.Resolve(key)
	if err != nil {
		f.logger.WarnContext(ctx, "payment method not found", logger.BehaviorKey(key))
		return payment.Receipt{}, err
	}
	return method.Pay(ctx, amount)
}

// Describe resolves the animal registered under key and returns its description.
func (f *Facade) Describe(key string) (string, error) {
	a, err := f.animals.Resolve(key)
	if err != nil {
		return "", err
	}
	return a.Describe(), nil
}

// Announce publishes headline to the news hub.
func (f *Facade) Announce(ctx context.Context, headline string) error {
	return f.news.Publish(ctx, headline)
}
