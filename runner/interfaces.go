package runner

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/jackc/pgx/v4"
	"github.com/virjilakrum/igloo/derivation"
	"github.com/virjilakrum/igloo/etherman"
	"github.com/virjilakrum/igloo/state"
)

// Consumer interfaces required by the package.

// ethermanInterface contains the methods required to read the L1 chain.
type ethermanInterface interface {
	GetRollupInfoByBlockRange(ctx context.Context, fromBlock uint64, toBlock *uint64) ([]etherman.Block, map[common.Hash][]etherman.Order, error)
	GetLatestBlockNumber(ctx context.Context) (uint64, error)
	EthBlockByNumber(ctx context.Context, blockNumber uint64) (*types.Block, error)
}

// stateInterface gathers the methods to interact with the state.
type stateInterface interface {
	BeginStateTransaction(ctx context.Context) (pgx.Tx, error)
	AddBlock(ctx context.Context, block *state.Block, dbTx pgx.Tx) error
	GetLastBlock(ctx context.Context, dbTx pgx.Tx) (*state.Block, error)
	GetPreviousBlock(ctx context.Context, offset uint64, dbTx pgx.Tx) (*state.Block, error)
	GetBlockByNumber(ctx context.Context, blockNumber uint64, dbTx pgx.Tx) (*state.Block, error)
	Reset(ctx context.Context, blockNumber uint64, dbTx pgx.Tx) error
	AddBatchCommitment(ctx context.Context, commitment *state.BatchCommitment, dbTx pgx.Tx) error
	GetPendingBatchCommitments(ctx context.Context, dbTx pgx.Tx) ([]state.BatchCommitment, error)
	MarkBatchCommitmentResolved(ctx context.Context, commitment common.Hash, dbTx pgx.Tx) error
	MarkBatchCommitmentStale(ctx context.Context, commitment common.Hash, dbTx pgx.Tx) error
}

// instantDeriver derives the attribute of a block from the block alone.
type instantDeriver interface {
	Derive(block *etherman.Block) (*derivation.PayloadAttribute, error)
}

// daDeriver accumulates batch commitments and resolves them against the DA
// layer.
type daDeriver interface {
	AddCommitment(commitment state.BatchCommitment, epoch derivation.Epoch)
	Step(ctx context.Context, cursorHeight uint64) ([]*derivation.PayloadAttribute, []common.Hash, error)
	Purge(blockNumber uint64) int
	PendingCount() int
}
