package event

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	events []*Event
}

func (m *memStorage) LogEvent(ctx context.Context, ev *Event) error {
	m.events = append(m.events, ev)
	return nil
}

func TestLogEventFillsIdentity(t *testing.T) {
	storage := &memStorage{}
	eventLog := NewEventLog(Config{}, storage)

	ev := &Event{
		Source:      Source_Node,
		Component:   Component_Runner,
		Level:       Level_Warning,
		EventID:     EventID_ReorgDetected,
		Description: "rewound to block 42",
	}
	err := eventLog.LogEvent(context.Background(), ev)
	require.NoError(t, err)
	require.Len(t, storage.events, 1)

	stored := storage.events[0]
	assert.NotEqual(t, uuid.Nil, stored.Id)
	assert.False(t, stored.ReceivedAt.IsZero())
	assert.Equal(t, EventID_ReorgDetected, stored.EventID)
}

func TestLogEventKeepsProvidedIdentity(t *testing.T) {
	storage := &memStorage{}
	eventLog := NewEventLog(Config{}, storage)

	id := uuid.New()
	receivedAt := time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)
	err := eventLog.LogEvent(context.Background(), &Event{
		Id:         id,
		ReceivedAt: receivedAt,
		EventID:    EventID_StaleBatchDropped,
	})
	require.NoError(t, err)

	stored := storage.events[0]
	assert.Equal(t, id, stored.Id)
	assert.Equal(t, receivedAt, stored.ReceivedAt)
}
