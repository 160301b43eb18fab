package notify

import (
	"errors"
	"fmt"
)

var (
	// ErrSubscriberDelivery is matched by every *DeliveryError.
	ErrSubscriberDelivery = errors.New("notify: subscriber delivery failed")

	// ErrBufferFull is returned by a Buffered subscriber whose channel is full.
	ErrBufferFull = errors.New("notify: subscriber buffer is full")

	// ErrSubscriberClosed is returned by a Buffered subscriber after Close.
	ErrSubscriberClosed = errors.New("notify: subscriber is closed")
)

// DeliveryError reports the subscriber whose Receive failed during Publish.
type DeliveryError struct {
	// Index is the position of the subscriber in the publish snapshot.
	Index      int
	Subscriber any
	Err        error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("notify: delivery to subscriber %d (%T) failed: %v", e.Index, e.Subscriber, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Is reports ErrSubscriberDelivery as a match.
func (e *DeliveryError) Is(target error) bool {
	return target == ErrSubscriberDelivery
}

// IsDeliveryError reports whether err is or wraps a *DeliveryError.
func IsDeliveryError(err error) bool {
	var e *DeliveryError
	return errors.As(err, &e)
}
