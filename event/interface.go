package event

import (
	"context"
)

// Storage is the interface for the event storage
type Storage interface {
	// LogEvent is used to store an event for runtime debugging
	LogEvent(ctx context.Context, event *Event) error
}
