package payment

import "errors"

// ErrInvalidAmount is returned when the amount to pay is not positive.
var ErrInvalidAmount = errors.New("payment: amount must be positive")
