package payment

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/dispatchkit/pkg/strategy"
)

// Registry keys of the built-in methods.
const (
	KeyCreditCard = "credit-card"
	KeyPayPal     = "paypal"
	KeyGooglePay  = "google-pay"
)

// Method processes a payment of a given amount.
type Method interface {
	// Name returns the human-readable method name used on receipts.
	Name() string
	// Pay charges amount and returns the receipt describing it.
	Pay(ctx context.Context, amount int) (Receipt, error)
}

// Receipt describes a completed payment.
type Receipt struct {
	Method string
	Amount int
}

// String renders the receipt as "Paid <amount> using <method>.".
func (r Receipt) String() string {
	return fmt.Sprintf("Paid %d using %s.", r.Amount, r.Method)
}

func charge(m Method, amount int) (Receipt, error) {
	if amount <= 0 {
		return Receipt{}, fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	return Receipt{Method: m.Name(), Amount: amount}, nil
}

// CreditCard pays with a credit card.
type CreditCard struct{}

func (CreditCard) Name() string { return "Credit Card" }

func (c CreditCard) Pay(_ context.Context, amount int) (Receipt, error) {
	return charge(c, amount)
}

// PayPal pays through PayPal.
type PayPal struct{}

func (PayPal) Name() string { return "PayPal" }

func (p PayPal) Pay(_ context.Context, amount int) (Receipt, error) {
	return charge(p, amount)
}

// GooglePay pays through Google Pay.
type GooglePay struct{}

func (GooglePay) Name() string { return "Google Pay" }

func (g GooglePay) Pay(_ context.Context, amount int) (Receipt, error) {
	return charge(g, amount)
}

// RegisterDefaults registers the built-in methods under their Key constants.
func RegisterDefaults(r *strategy.Registry[Method]) {
	r.Register(KeyCreditCard, func() Method { return CreditCard{} })
	r.Register(KeyPayPal, func() Method { return PayPal{} })
	r.Register(KeyGooglePay, func() Method { return GooglePay{} })
}
