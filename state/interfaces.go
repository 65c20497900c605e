package state

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v4"
)

// storage is the interface of the data access layer backing the State.
type storage interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	AddBlock(ctx context.Context, block *Block, dbTx pgx.Tx) error
	GetLastBlock(ctx context.Context, dbTx pgx.Tx) (*Block, error)
	GetPreviousBlock(ctx context.Context, offset uint64, dbTx pgx.Tx) (*Block, error)
	GetBlockByNumber(ctx context.Context, blockNumber uint64, dbTx pgx.Tx) (*Block, error)
	Reset(ctx context.Context, blockNumber uint64, dbTx pgx.Tx) error
	AddBatchCommitment(ctx context.Context, commitment *BatchCommitment, dbTx pgx.Tx) error
	GetBatchCommitment(ctx context.Context, commitment common.Hash, dbTx pgx.Tx) (*BatchCommitment, error)
	GetPendingBatchCommitments(ctx context.Context, dbTx pgx.Tx) ([]BatchCommitment, error)
	MarkBatchCommitmentResolved(ctx context.Context, commitment common.Hash, dbTx pgx.Tx) error
	MarkBatchCommitmentStale(ctx context.Context, commitment common.Hash, dbTx pgx.Tx) error
	AddAppliedPayload(ctx context.Context, payload *AppliedPayload, dbTx pgx.Tx) error
	GetLastAppliedPayload(ctx context.Context, dbTx pgx.Tx) (*AppliedPayload, error)
	GetAppliedPayloadByContentHash(ctx context.Context, contentHash common.Hash, dbTx pgx.Tx) (*AppliedPayload, error)
	GetAppliedPayloadsByEpoch(ctx context.Context, epochNumber uint64, dbTx pgx.Tx) ([]AppliedPayload, error)
	DeleteAppliedPayloadsByEpoch(ctx context.Context, epochNumber uint64, dbTx pgx.Tx) error
	CountAppliedPayloads(ctx context.Context, dbTx pgx.Tx) (uint64, error)
}
