package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v4"
	"github.com/virjilakrum/igloo/state"
)

// stateInterface is the slice of the state the endpoints read.
type stateInterface interface {
	GetLastBlock(ctx context.Context, dbTx pgx.Tx) (*state.Block, error)
	GetLastAppliedPayload(ctx context.Context, dbTx pgx.Tx) (*state.AppliedPayload, error)
	GetAppliedPayloadsByEpoch(ctx context.Context, epochNumber uint64, dbTx pgx.Tx) ([]state.AppliedPayload, error)
	CountAppliedPayloads(ctx context.Context, dbTx pgx.Tx) (uint64, error)
}

// poolInterface is the slice of the pool the endpoints read.
type poolInterface interface {
	Len() int
}

// SyncStatus is the result of igloo_getSyncStatus.
type SyncStatus struct {
	CursorBlockNumber ArgUint64   `json:"cursorBlockNumber"`
	CursorBlockHash   common.Hash `json:"cursorBlockHash"`
	LastEpochNumber   ArgUint64   `json:"lastEpochNumber"`
	AppliedPayloads   ArgUint64   `json:"appliedPayloads"`
}

// PoolStatus is the result of igloo_getPoolStatus.
type PoolStatus struct {
	PendingTransactions ArgUint64 `json:"pendingTransactions"`
}

// AppliedPayloadInfo is one entry of the igloo_getAppliedPayloads result.
type AppliedPayloadInfo struct {
	EpochNumber ArgUint64    `json:"epochNumber"`
	EpochHash   common.Hash  `json:"epochHash"`
	Source      string       `json:"source"`
	Commitment  *common.Hash `json:"commitment,omitempty"`
	TxCount     ArgUint64    `json:"txCount"`
	ContentHash common.Hash  `json:"contentHash"`
}

// IglooEndpoints is the igloo_ jsonrpc namespace.
type IglooEndpoints struct {
	st   stateInterface
	pool poolInterface
}

// NewIglooEndpoints creates the endpoint handler. pool may be nil on a
// read-only node.
func NewIglooEndpoints(st stateInterface, pool poolInterface) *IglooEndpoints {
	return &IglooEndpoints{st: st, pool: pool}
}

func (e *IglooEndpoints) handle(ctx context.Context, req Request) Response {
	switch req.Method {
	case "igloo_getSyncStatus":
		return e.getSyncStatus(ctx, req)
	case "igloo_getPoolStatus":
		return e.getPoolStatus(req)
	case "igloo_getAppliedPayloads":
		return e.getAppliedPayloads(ctx, req)
	default:
		return newErrorResponse(req.ID, errCodeNotFound, "the method "+req.Method+" does not exist")
	}
}

func (e *IglooEndpoints) getSyncStatus(ctx context.Context, req Request) Response {
	status := SyncStatus{}

	block, err := e.st.GetLastBlock(ctx, nil)
	if err != nil && !errors.Is(err, state.ErrStateNotSynchronized) {
		return newErrorResponse(req.ID, errCodeInternal, err.Error())
	}
	if block != nil {
		status.CursorBlockNumber = ArgUint64(block.BlockNumber)
		status.CursorBlockHash = block.BlockHash
	}

	payload, err := e.st.GetLastAppliedPayload(ctx, nil)
	if err != nil && !errors.Is(err, state.ErrNotFound) {
		return newErrorResponse(req.ID, errCodeInternal, err.Error())
	}
	if payload != nil {
		status.LastEpochNumber = ArgUint64(payload.EpochNumber)
	}

	count, err := e.st.CountAppliedPayloads(ctx, nil)
	if err != nil {
		return newErrorResponse(req.ID, errCodeInternal, err.Error())
	}
	status.AppliedPayloads = ArgUint64(count)

	return newResponse(req.ID, status)
}

func (e *IglooEndpoints) getPoolStatus(req Request) Response {
	if e.pool == nil {
		return newResponse(req.ID, PoolStatus{})
	}
	return newResponse(req.ID, PoolStatus{PendingTransactions: ArgUint64(e.pool.Len())})
}

func (e *IglooEndpoints) getAppliedPayloads(ctx context.Context, req Request) Response {
	var params []ArgUint64
	if err := json.Unmarshal(req.Params, &params); err != nil || len(params) != 1 {
		return newErrorResponse(req.ID, errCodeInvalidParams, "expected [epochNumber]")
	}

	payloads, err := e.st.GetAppliedPayloadsByEpoch(ctx, uint64(params[0]), nil)
	if err != nil && !errors.Is(err, state.ErrNotFound) {
		return newErrorResponse(req.ID, errCodeInternal, err.Error())
	}

	infos := make([]AppliedPayloadInfo, 0, len(payloads))
	for i := range payloads {
		infos = append(infos, AppliedPayloadInfo{
			EpochNumber: ArgUint64(payloads[i].EpochNumber),
			EpochHash:   payloads[i].EpochHash,
			Source:      string(payloads[i].Source),
			Commitment:  payloads[i].Commitment,
			TxCount:     ArgUint64(payloads[i].TxCount),
			ContentHash: payloads[i].ContentHash,
		})
	}
	return newResponse(req.ID, infos)
}
