package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v4"
	"github.com/virjilakrum/igloo/derivation"
	"github.com/virjilakrum/igloo/engine/executorclient"
	"github.com/virjilakrum/igloo/log"
	"github.com/virjilakrum/igloo/state"
)

// stateInterface is the slice of the state the engine records into.
type stateInterface interface {
	AddAppliedPayload(ctx context.Context, payload *state.AppliedPayload, dbTx pgx.Tx) error
	GetLastAppliedPayload(ctx context.Context, dbTx pgx.Tx) (*state.AppliedPayload, error)
	GetAppliedPayloadByContentHash(ctx context.Context, contentHash common.Hash, dbTx pgx.Tx) (*state.AppliedPayload, error)
	GetAppliedPayloadsByEpoch(ctx context.Context, epochNumber uint64, dbTx pgx.Tx) ([]state.AppliedPayload, error)
	DeleteAppliedPayloadsByEpoch(ctx context.Context, epochNumber uint64, dbTx pgx.Tx) error
}

// executor is the slice of the external SVM executor the engine forwards to.
type executor interface {
	ProcessPayload(ctx context.Context, req *executorclient.ProcessPayloadRequest) (*executorclient.ProcessPayloadResponse, error)
}

// StateEngine validates submission ordering, optionally forwards the
// attribute to an external executor, and records the applied payload in the
// state. With a nil executor it runs in record-only mode, which is what
// local development and most tests use.
type StateEngine struct {
	st   stateInterface
	exec executor
}

// NewStateEngine creates a StateEngine. exec may be nil.
func NewStateEngine(st stateInterface, exec executor) *StateEngine {
	return &StateEngine{st: st, exec: exec}
}

// SubmitPayload implements Engine. Re-submitting an attribute that was
// already applied succeeds without re-executing it; the content hash is the
// identity under which idempotence is tracked.
func (e *StateEngine) SubmitPayload(ctx context.Context, attr *derivation.PayloadAttribute) error {
	contentHash := attr.ContentHash()

	if applied, err := e.st.GetAppliedPayloadByContentHash(ctx, contentHash, nil); err == nil && applied != nil {
		log.Debugf("payload %s already applied, skipping", contentHash.String())
		return nil
	} else if err != nil && !errors.Is(err, state.ErrNotFound) {
		return newTransientError(err)
	}

	if err := e.checkOrdering(ctx, attr); err != nil {
		return err
	}

	if e.exec != nil {
		if err := e.execute(ctx, attr); err != nil {
			return err
		}
	}

	epoch := attr.Epoch()
	return e.record(ctx, &state.AppliedPayload{
		EpochNumber: epoch.Number,
		EpochHash:   epoch.Hash,
		Source:      attr.Source(),
		Commitment:  attr.Commitment(),
		TxCount:     uint64(attr.TxCount()),
		ContentHash: contentHash,
		BlockNumber: epoch.Number,
		AppliedAt:   time.Now(),
	})
}

// LastAppliedEpoch implements Engine. Before anything was applied it returns
// state.ErrStateNotSynchronized.
func (e *StateEngine) LastAppliedEpoch(ctx context.Context) (derivation.Epoch, error) {
	last, err := e.st.GetLastAppliedPayload(ctx, nil)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			return derivation.Epoch{}, state.ErrStateNotSynchronized
		}
		return derivation.Epoch{}, err
	}
	return derivation.Epoch{Hash: last.EpochHash, Number: last.EpochNumber}, nil
}

// checkOrdering enforces the submission invariants: epochs never go
// backwards, and within one epoch the instant attribute precedes any DA
// attribute.
func (e *StateEngine) checkOrdering(ctx context.Context, attr *derivation.PayloadAttribute) error {
	last, err := e.st.GetLastAppliedPayload(ctx, nil)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			return nil
		}
		return newTransientError(err)
	}

	epoch := attr.Epoch()
	if epoch.Number < last.EpochNumber && attr.Source() == state.PayloadSourceInstant {
		return newOrderingError("instant payload for epoch %d arrived after epoch %d", epoch.Number, last.EpochNumber)
	}

	if attr.Source() == state.PayloadSourceInstant {
		applied, err := e.st.GetAppliedPayloadsByEpoch(ctx, epoch.Number, nil)
		if err != nil && !errors.Is(err, state.ErrNotFound) {
			return newTransientError(err)
		}
		for _, p := range applied {
			if p.EpochHash == epoch.Hash {
				return newOrderingError("epoch %d already has applied payloads, instant must come first", epoch.Number)
			}
		}
		if len(applied) > 0 {
			// Records anchored to a different hash at the same height belong
			// to a replaced L1 block whose failed advance never committed a
			// cursor entry, so the reorg rewind could not clean them up.
			log.Warnf("discarding %d applied payloads for replaced epoch %d", len(applied), epoch.Number)
			if err := e.st.DeleteAppliedPayloadsByEpoch(ctx, epoch.Number, nil); err != nil {
				return newTransientError(err)
			}
		}
	}
	return nil
}

func (e *StateEngine) execute(ctx context.Context, attr *derivation.PayloadAttribute) error {
	txs := attr.Transactions()
	raw := make([][]byte, len(txs))
	for i, tx := range txs {
		raw[i] = tx.Payload
	}
	epoch := attr.Epoch()
	resp, err := e.exec.ProcessPayload(ctx, &executorclient.ProcessPayloadRequest{
		EpochNumber:  epoch.Number,
		EpochHash:    epoch.Hash.Hex(),
		Source:       string(attr.Source()),
		Transactions: raw,
	})
	if err != nil {
		return newTransientError(err)
	}
	if resp.Error != "" {
		return &EngineError{Code: ErrorCodeRejected, Err: fmt.Errorf("executor rejected payload: %s", resp.Error)}
	}
	return nil
}

func (e *StateEngine) record(ctx context.Context, payload *state.AppliedPayload) error {
	if err := e.st.AddAppliedPayload(ctx, payload, nil); err != nil {
		if errors.Is(err, state.ErrAlreadyExists) {
			return nil
		}
		return newTransientError(err)
	}
	return nil
}
