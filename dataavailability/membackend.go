package dataavailability

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

type storedFrame struct {
	frame       Frame
	availableAt uint64
}

// MemBackend is an in-memory Backend used by local mode and tests. Frames
// are stored with the L1 height they become visible at, so tests can model
// data that propagates over several blocks.
type MemBackend struct {
	mu     sync.RWMutex
	height uint64
	frames map[common.Hash]map[uint16]storedFrame
}

// NewMemBackend creates an empty MemBackend.
func NewMemBackend() *MemBackend {
	return &MemBackend{
		frames: make(map[common.Hash]map[uint16]storedFrame),
	}
}

// StoreFrame adds one frame to the backend, visible from the given L1
// height onward.
func (m *MemBackend) StoreFrame(frame Frame, availableAt uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byIndex, ok := m.frames[frame.Commitment]
	if !ok {
		byIndex = make(map[uint16]storedFrame)
		m.frames[frame.Commitment] = byIndex
	}
	byIndex[frame.FrameNumber] = storedFrame{frame: frame, availableAt: availableAt}
}

// StoreFrames adds all frames of a batch with a single availability height.
func (m *MemBackend) StoreFrames(frames []Frame, availableAt uint64) {
	for _, frame := range frames {
		m.StoreFrame(frame, availableAt)
	}
}

// SetHeight moves the backend's view of the current L1 height forward.
func (m *MemBackend) SetHeight(height uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.height = height
}

// GetFrame implements Backend.
func (m *MemBackend) GetFrame(ctx context.Context, commitment common.Hash, index uint16) (*Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	byIndex, ok := m.frames[commitment]
	if !ok {
		return nil, ErrNotFound
	}
	stored, ok := byIndex[index]
	if !ok {
		return nil, ErrNotFound
	}
	if stored.availableAt > m.height {
		return nil, ErrPending
	}
	frame := stored.frame
	return &frame, nil
}
