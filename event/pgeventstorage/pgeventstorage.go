package pgeventstorage

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/virjilakrum/igloo/db"
	"github.com/virjilakrum/igloo/event"
)

// PostgresEventStorage is an implementation of the event storage interface
// that uses a postgres database to store the data
type PostgresEventStorage struct {
	db *pgxpool.Pool
}

// NewPostgresEventStorage creates and initializes an instance of PostgresEventStorage
func NewPostgresEventStorage(cfg db.Config) (*PostgresEventStorage, error) {
	pool, err := db.NewSQLDB(cfg)
	if err != nil {
		return nil, err
	}

	return &PostgresEventStorage{
		db: pool,
	}, nil
}

// LogEvent stores an event for runtime debugging
func (p *PostgresEventStorage) LogEvent(ctx context.Context, ev *event.Event) error {
	const addEventSQL = `
		INSERT INTO event.event (received_at, ip_address, source, component, level, event_id, description, data, json)
		                 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var sComponent, sData, sJson *string
	if len(ev.Component) > 0 {
		s := string(ev.Component)
		sComponent = &s
	}
	if len(ev.Data) > 0 {
		s := string(ev.Data)
		sData = &s
	}
	if ev.Json != nil {
		b, err := json.Marshal(ev.Json)
		if err != nil {
			return err
		}
		s := string(b)
		sJson = &s
	}

	_, err := p.db.Exec(ctx, addEventSQL, ev.ReceivedAt, ev.IPAddress, ev.Source, sComponent, ev.Level, ev.EventID, ev.Description, sData, sJson)
	return err
}
