package dataavailability

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrPending indicates the requested frame is not yet available and the
	// caller should retry later.
	ErrPending = errors.New("frame not yet available")

	// ErrNotFound indicates the DA layer knows nothing about the requested
	// commitment or frame index.
	ErrNotFound = errors.New("frame not found")
)

// Backend is the read interface of the data availability layer.
type Backend interface {
	// GetFrame returns one frame of a committed batch. It returns ErrPending
	// while the frame has not propagated yet and ErrNotFound for unknown
	// commitments or indexes.
	GetFrame(ctx context.Context, commitment common.Hash, index uint16) (*Frame, error)
}
