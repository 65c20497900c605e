package pgstatestorage

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/virjilakrum/igloo/state"
)

const uniqueViolationCode = "23505"

// PostgresStorage implements the Storage interface
type PostgresStorage struct {
	cfg state.Config
	*pgxpool.Pool
}

// NewPostgresStorage creates a new StateDB
func NewPostgresStorage(cfg state.Config, db *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{
		cfg,
		db,
	}
}

// getExecQuerier determines which execQuerier to use, dbTx or the main pgxpool
func (p *PostgresStorage) getExecQuerier(dbTx pgx.Tx) ExecQuerier {
	if dbTx != nil {
		return dbTx
	}
	return p
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// AddBlock adds a new L1 block to the state cursor
func (p *PostgresStorage) AddBlock(ctx context.Context, block *state.Block, dbTx pgx.Tx) error {
	const addBlockSQL = "INSERT INTO state.block (block_num, block_hash, parent_hash, timestamp, received_at) VALUES ($1, $2, $3, $4, $5)"

	e := p.getExecQuerier(dbTx)
	_, err := e.Exec(ctx, addBlockSQL, block.BlockNumber, block.BlockHash.String(), block.ParentHash.String(), block.Timestamp, block.ReceivedAt)
	if isUniqueViolation(err) {
		return state.ErrAlreadyExists
	}
	return err
}

// GetLastBlock returns the latest L1 block processed by the node
func (p *PostgresStorage) GetLastBlock(ctx context.Context, dbTx pgx.Tx) (*state.Block, error) {
	const getLastBlockSQL = "SELECT block_num, block_hash, parent_hash, timestamp, received_at FROM state.block ORDER BY block_num DESC LIMIT 1"

	var (
		blockHash  string
		parentHash string
		block      state.Block
	)
	q := p.getExecQuerier(dbTx)

	err := q.QueryRow(ctx, getLastBlockSQL).Scan(&block.BlockNumber, &blockHash, &parentHash, &block.Timestamp, &block.ReceivedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, state.ErrStateNotSynchronized
	} else if err != nil {
		return nil, err
	}
	block.BlockHash = common.HexToHash(blockHash)
	block.ParentHash = common.HexToHash(parentHash)
	return &block, nil
}

// GetPreviousBlock gets the offset previous L1 block respect to latest
func (p *PostgresStorage) GetPreviousBlock(ctx context.Context, offset uint64, dbTx pgx.Tx) (*state.Block, error) {
	const getPreviousBlockSQL = "SELECT block_num, block_hash, parent_hash, timestamp, received_at FROM state.block ORDER BY block_num DESC LIMIT 1 OFFSET $1"

	var (
		blockHash  string
		parentHash string
		block      state.Block
	)
	q := p.getExecQuerier(dbTx)

	err := q.QueryRow(ctx, getPreviousBlockSQL, offset).Scan(&block.BlockNumber, &blockHash, &parentHash, &block.Timestamp, &block.ReceivedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, state.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	block.BlockHash = common.HexToHash(blockHash)
	block.ParentHash = common.HexToHash(parentHash)
	return &block, nil
}

// GetBlockByNumber returns the L1 block with the given number
func (p *PostgresStorage) GetBlockByNumber(ctx context.Context, blockNumber uint64, dbTx pgx.Tx) (*state.Block, error) {
	const getBlockByNumberSQL = "SELECT block_num, block_hash, parent_hash, timestamp, received_at FROM state.block WHERE block_num = $1"

	var (
		blockHash  string
		parentHash string
		block      state.Block
	)
	q := p.getExecQuerier(dbTx)

	err := q.QueryRow(ctx, getBlockByNumberSQL, blockNumber).Scan(&block.BlockNumber, &blockHash, &parentHash, &block.Timestamp, &block.ReceivedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, state.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	block.BlockHash = common.HexToHash(blockHash)
	block.ParentHash = common.HexToHash(parentHash)
	return &block, nil
}

// Reset resets the state to the given L1 block number. Everything derived
// from blocks above it is removed: batch commitments cascade with their
// block, applied payloads are deleted explicitly since they carry no FK.
func (p *PostgresStorage) Reset(ctx context.Context, blockNumber uint64, dbTx pgx.Tx) error {
	const resetBlocksSQL = "DELETE FROM state.block WHERE block_num > $1"
	const resetPayloadsSQL = "DELETE FROM state.applied_payload WHERE block_num > $1"

	e := p.getExecQuerier(dbTx)
	if _, err := e.Exec(ctx, resetBlocksSQL, blockNumber); err != nil {
		return err
	}
	if _, err := e.Exec(ctx, resetPayloadsSQL, blockNumber); err != nil {
		return err
	}
	return nil
}

// AddBatchCommitment stores a batch commitment announced on L1
func (p *PostgresStorage) AddBatchCommitment(ctx context.Context, commitment *state.BatchCommitment, dbTx pgx.Tx) error {
	const addBatchCommitmentSQL = `
		INSERT INTO state.batch_commitment (commitment, data_hash, frame_count, block_num, log_index, tx_hash)
		                            VALUES ($1, $2, $3, $4, $5, $6)`

	e := p.getExecQuerier(dbTx)
	_, err := e.Exec(ctx, addBatchCommitmentSQL, commitment.Commitment.String(), commitment.DataHash.String(),
		commitment.FrameCount, commitment.BlockNumber, commitment.LogIndex, commitment.TxHash.String())
	if isUniqueViolation(err) {
		return state.ErrAlreadyExists
	}
	return err
}

// GetBatchCommitment returns the batch commitment with the given id
func (p *PostgresStorage) GetBatchCommitment(ctx context.Context, commitment common.Hash, dbTx pgx.Tx) (*state.BatchCommitment, error) {
	const getBatchCommitmentSQL = `
		SELECT commitment, data_hash, frame_count, block_num, log_index, tx_hash
		  FROM state.batch_commitment
		 WHERE commitment = $1`

	q := p.getExecQuerier(dbTx)
	row := q.QueryRow(ctx, getBatchCommitmentSQL, commitment.String())
	bc, err := scanBatchCommitment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, state.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return bc, nil
}

// GetPendingBatchCommitments returns the commitments not yet resolved nor
// declared stale, ordered by commit position on L1
func (p *PostgresStorage) GetPendingBatchCommitments(ctx context.Context, dbTx pgx.Tx) ([]state.BatchCommitment, error) {
	const getPendingSQL = `
		SELECT commitment, data_hash, frame_count, block_num, log_index, tx_hash
		  FROM state.batch_commitment
		 WHERE NOT resolved AND NOT stale
		 ORDER BY block_num, log_index`

	q := p.getExecQuerier(dbTx)
	rows, err := q.Query(ctx, getPendingSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	commitments := make([]state.BatchCommitment, 0, len(rows.RawValues()))
	for rows.Next() {
		bc, err := scanBatchCommitment(rows)
		if err != nil {
			return nil, err
		}
		commitments = append(commitments, *bc)
	}
	return commitments, nil
}

// MarkBatchCommitmentResolved flags a commitment whose payload has been
// derived and applied
func (p *PostgresStorage) MarkBatchCommitmentResolved(ctx context.Context, commitment common.Hash, dbTx pgx.Tx) error {
	const markResolvedSQL = "UPDATE state.batch_commitment SET resolved = TRUE WHERE commitment = $1"

	e := p.getExecQuerier(dbTx)
	tag, err := e.Exec(ctx, markResolvedSQL, commitment.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return state.ErrNotFound
	}
	return nil
}

// MarkBatchCommitmentStale flags a commitment abandoned after exceeding the
// staleness horizon without all its frames becoming available
func (p *PostgresStorage) MarkBatchCommitmentStale(ctx context.Context, commitment common.Hash, dbTx pgx.Tx) error {
	const markStaleSQL = "UPDATE state.batch_commitment SET stale = TRUE WHERE commitment = $1"

	e := p.getExecQuerier(dbTx)
	tag, err := e.Exec(ctx, markStaleSQL, commitment.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return state.ErrNotFound
	}
	return nil
}

// AddAppliedPayload records a payload accepted by the execution engine
func (p *PostgresStorage) AddAppliedPayload(ctx context.Context, payload *state.AppliedPayload, dbTx pgx.Tx) error {
	const addAppliedPayloadSQL = `
		INSERT INTO state.applied_payload (epoch_num, epoch_hash, source, commitment, tx_count, content_hash, block_num, applied_at)
		                           VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var commitment *string
	if payload.Commitment != nil {
		s := payload.Commitment.String()
		commitment = &s
	}

	e := p.getExecQuerier(dbTx)
	_, err := e.Exec(ctx, addAppliedPayloadSQL, payload.EpochNumber, payload.EpochHash.String(), payload.Source,
		commitment, payload.TxCount, payload.ContentHash.String(), payload.BlockNumber, payload.AppliedAt)
	if isUniqueViolation(err) {
		return state.ErrAlreadyExists
	}
	return err
}

// DeleteAppliedPayloadsByEpoch removes every payload applied for the given
// epoch number. Used to discard records anchored to an L1 block that was
// replaced by a reorg.
func (p *PostgresStorage) DeleteAppliedPayloadsByEpoch(ctx context.Context, epochNumber uint64, dbTx pgx.Tx) error {
	const deleteByEpochSQL = "DELETE FROM state.applied_payload WHERE epoch_num = $1"

	e := p.getExecQuerier(dbTx)
	_, err := e.Exec(ctx, deleteByEpochSQL, epochNumber)
	return err
}

// GetLastAppliedPayload returns the most recently applied payload
func (p *PostgresStorage) GetLastAppliedPayload(ctx context.Context, dbTx pgx.Tx) (*state.AppliedPayload, error) {
	const getLastAppliedSQL = `
		SELECT epoch_num, epoch_hash, source, commitment, tx_count, content_hash, block_num, applied_at
		  FROM state.applied_payload
		 ORDER BY id DESC LIMIT 1`

	q := p.getExecQuerier(dbTx)
	row := q.QueryRow(ctx, getLastAppliedSQL)
	payload, err := scanAppliedPayload(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, state.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return payload, nil
}

// GetAppliedPayloadByContentHash returns the applied payload matching the
// given content hash, if any
func (p *PostgresStorage) GetAppliedPayloadByContentHash(ctx context.Context, contentHash common.Hash, dbTx pgx.Tx) (*state.AppliedPayload, error) {
	const getByContentHashSQL = `
		SELECT epoch_num, epoch_hash, source, commitment, tx_count, content_hash, block_num, applied_at
		  FROM state.applied_payload
		 WHERE content_hash = $1
		 ORDER BY id DESC LIMIT 1`

	q := p.getExecQuerier(dbTx)
	row := q.QueryRow(ctx, getByContentHashSQL, contentHash.String())
	payload, err := scanAppliedPayload(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, state.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return payload, nil
}

// GetAppliedPayloadsByEpoch returns all payloads applied for the given epoch
// in application order
func (p *PostgresStorage) GetAppliedPayloadsByEpoch(ctx context.Context, epochNumber uint64, dbTx pgx.Tx) ([]state.AppliedPayload, error) {
	const getByEpochSQL = `
		SELECT epoch_num, epoch_hash, source, commitment, tx_count, content_hash, block_num, applied_at
		  FROM state.applied_payload
		 WHERE epoch_num = $1
		 ORDER BY id`

	q := p.getExecQuerier(dbTx)
	rows, err := q.Query(ctx, getByEpochSQL, epochNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payloads := make([]state.AppliedPayload, 0, len(rows.RawValues()))
	for rows.Next() {
		payload, err := scanAppliedPayload(rows)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, *payload)
	}
	return payloads, nil
}

// CountAppliedPayloads returns the number of payloads applied so far
func (p *PostgresStorage) CountAppliedPayloads(ctx context.Context, dbTx pgx.Tx) (uint64, error) {
	const countSQL = "SELECT COUNT(*) FROM state.applied_payload"

	var count uint64
	q := p.getExecQuerier(dbTx)
	err := q.QueryRow(ctx, countSQL).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func scanBatchCommitment(row pgx.Row) (*state.BatchCommitment, error) {
	var (
		commitment string
		dataHash   string
		txHash     string
		bc         state.BatchCommitment
	)
	err := row.Scan(&commitment, &dataHash, &bc.FrameCount, &bc.BlockNumber, &bc.LogIndex, &txHash)
	if err != nil {
		return nil, err
	}
	bc.Commitment = common.HexToHash(commitment)
	bc.DataHash = common.HexToHash(dataHash)
	bc.TxHash = common.HexToHash(txHash)
	return &bc, nil
}

func scanAppliedPayload(row pgx.Row) (*state.AppliedPayload, error) {
	var (
		epochHash   string
		commitment  *string
		contentHash string
		payload     state.AppliedPayload
	)
	err := row.Scan(&payload.EpochNumber, &epochHash, &payload.Source, &commitment, &payload.TxCount,
		&contentHash, &payload.BlockNumber, &payload.AppliedAt)
	if err != nil {
		return nil, err
	}
	payload.EpochHash = common.HexToHash(epochHash)
	payload.ContentHash = common.HexToHash(contentHash)
	if commitment != nil {
		c := common.HexToHash(*commitment)
		payload.Commitment = &c
	}
	return &payload, nil
}
