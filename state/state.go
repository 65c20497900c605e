package state

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/virjilakrum/igloo/event"
)

// State is an implementation of the state
type State struct {
	cfg Config
	storage
	eventLog *event.EventLog
}

// NewState creates a new State
func NewState(cfg Config, storage storage, eventLog *event.EventLog) *State {
	state := &State{
		cfg:      cfg,
		storage:  storage,
		eventLog: eventLog,
	}

	return state
}

// BeginStateTransaction starts a state transaction
func (s *State) BeginStateTransaction(ctx context.Context) (pgx.Tx, error) {
	tx, err := s.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
