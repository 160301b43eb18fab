package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// BehaviorKey records a registry key under the key "behavior_key".
func BehaviorKey(key string) slog.Attr {
	return slog.String("behavior_key", key)
}

// EventID records the publish event identifier under the key "event_id".
// If id is empty, it returns an empty Attr.
func EventID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("event_id", id)
}

// Subscriber records the dynamic type of a subscriber under the key "subscriber".
// Types implementing fmt.Stringer are recorded by their String value.
func Subscriber(s any) slog.Attr {
	if s == nil {
		return slog.Attr{}
	}
	if str, ok := s.(fmt.Stringer); ok {
		return slog.String("subscriber", str.String())
	}
	return slog.String("subscriber", fmt.Sprintf("%T", s))
}

// Position records a zero-based index under the key "position".
func Position(i int) slog.Attr {
	return slog.Int("position", i)
}
