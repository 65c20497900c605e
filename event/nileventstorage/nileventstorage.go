package nileventstorage

import (
	"context"

	"github.com/virjilakrum/igloo/event"
	"github.com/virjilakrum/igloo/log"
)

// NilEventStorage is an implementation of the event storage interface
// that just logs but does not store the data
type NilEventStorage struct {
}

// NewNilEventStorage creates and initializes an instance of NilEventStorage
func NewNilEventStorage() (*NilEventStorage, error) {
	return &NilEventStorage{}, nil
}

// LogEvent logs an event (in the standard log)
func (p *NilEventStorage) LogEvent(ctx context.Context, ev *event.Event) error {
	log.Debugf("Event: %+v", ev)
	return nil
}
