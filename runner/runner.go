// Package runner drives the derivation loop: it pulls L1 blocks past the
// stored cursor, derives their payload attributes through the registered
// instant and DA derivers, and feeds the attributes to the execution engine
// in the canonical order. The cursor, the last L1 block whose attributes
// were all accepted, lives in the state database and only moves forward once
// a block is fully applied.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/virjilakrum/igloo/derivation"
	"github.com/virjilakrum/igloo/engine"
	"github.com/virjilakrum/igloo/etherman"
	"github.com/virjilakrum/igloo/event"
	"github.com/virjilakrum/igloo/log"
	"github.com/virjilakrum/igloo/metrics"
	"github.com/virjilakrum/igloo/state"
)

// Status is the runner lifecycle state.
type Status string

const (
	// StatusIdle means no advance is in flight.
	StatusIdle Status = "idle"
	// StatusAdvancing means one advance is currently deriving and applying.
	StatusAdvancing Status = "advancing"
	// StatusFaulted means a permanent engine rejection stopped the runner.
	// Terminal until ClearFault.
	StatusFaulted Status = "faulted"
)

var (
	// ErrAlreadyAdvancing is returned when Advance is called while another
	// advance is in flight. Callers must serialize advances.
	ErrAlreadyAdvancing = errors.New("runner: advance already in flight")

	// ErrFaulted is returned while the runner is in the faulted state.
	ErrFaulted = errors.New("runner: faulted, clear the fault before advancing")

	// ErrNotRegistered is returned when Advance is called before both
	// derivers are registered.
	ErrNotRegistered = errors.New("runner: instant and da derivers must be registered before advancing")

	// ErrRegistrationClosed is returned when a deriver is registered after
	// the first advance.
	ErrRegistrationClosed = errors.New("runner: registration is closed after the first advance")

	// ErrInconsistentState is returned when the engine reports an applied
	// epoch ahead of the stored cursor on startup.
	ErrInconsistentState = errors.New("runner: engine applied epoch is ahead of the cursor")
)

// Runner is the orchestrating state machine of the derivation core.
type Runner struct {
	cfg      Config
	etherman ethermanInterface
	st       stateInterface
	engine   engine.Engine
	eventLog *event.EventLog

	mu      sync.Mutex
	status  Status
	started bool
	instant instantDeriver
	da      daDeriver
}

// NewRunner creates a Runner. The derivers are wired afterwards through
// RegisterInstant and RegisterDa, before the first Advance.
func NewRunner(cfg Config, etherman ethermanInterface, st stateInterface, eng engine.Engine, eventLog *event.EventLog) *Runner {
	return &Runner{
		cfg:      cfg,
		etherman: etherman,
		st:       st,
		engine:   eng,
		eventLog: eventLog,
		status:   StatusIdle,
	}
}

// RegisterInstant wires the instant deriver. Setup-time only.
func (r *Runner) RegisterInstant(d instantDeriver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return ErrRegistrationClosed
	}
	r.instant = d
	return nil
}

// RegisterDa wires the DA deriver. Setup-time only.
func (r *Runner) RegisterDa(d daDeriver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return ErrRegistrationClosed
	}
	r.da = d
	return nil
}

// GetEngine returns the engine the runner drives.
func (r *Runner) GetEngine() engine.Engine {
	return r.engine
}

// Status returns the current lifecycle state.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// ClearFault moves a faulted runner back to idle. The operator is expected
// to have resolved the cause first.
func (r *Runner) ClearFault() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status == StatusFaulted {
		r.status = StatusIdle
	}
}

// Advance performs one derivation step: fetch the next L1 block past the
// cursor, derive and submit its attributes, move the cursor. Being caught up
// with the L1 head is a successful no-op. Advance is not re-entrant,
// concurrent calls are rejected with ErrAlreadyAdvancing. On any error the
// cursor stays where it was, the next call retries the same block and
// derives the same attributes.
func (r *Runner) Advance(ctx context.Context) error {
	start := time.Now()

	r.mu.Lock()
	switch r.status {
	case StatusFaulted:
		r.mu.Unlock()
		return ErrFaulted
	case StatusAdvancing:
		r.mu.Unlock()
		return ErrAlreadyAdvancing
	}
	if r.instant == nil || r.da == nil {
		r.mu.Unlock()
		return ErrNotRegistered
	}
	if !r.started {
		if err := r.checkStartupConsistency(ctx); err != nil {
			r.mu.Unlock()
			return err
		}
		r.started = true
	}
	r.status = StatusAdvancing
	r.mu.Unlock()

	err := r.advance(ctx)

	r.mu.Lock()
	if err != nil && engine.IsPermanent(err) {
		log.Errorf("runner faulted: %v", err)
		r.status = StatusFaulted
	} else {
		r.status = StatusIdle
	}
	r.mu.Unlock()

	metrics.AdvanceTime(start)
	return err
}

// Start runs Advance in a loop until ctx is done. Errors are logged and
// retried on the next tick; a faulted runner keeps ticking so an operator
// ClearFault resumes the loop.
func (r *Runner) Start(ctx context.Context) error {
	interval := r.cfg.AdvanceInterval.Duration
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := r.Advance(ctx); err != nil {
			if errors.Is(err, ErrFaulted) {
				log.Debug("runner is faulted, waiting for the fault to be cleared")
			} else {
				log.Errorf("advance failed: %v", err)
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// checkStartupConsistency validates the engine's applied epoch against the
// stored cursor before the first advance.
func (r *Runner) checkStartupConsistency(ctx context.Context) error {
	lastEpoch, err := r.engine.LastAppliedEpoch(ctx)
	if err != nil {
		if errors.Is(err, state.ErrStateNotSynchronized) {
			return nil
		}
		return err
	}

	cursor, err := r.st.GetLastBlock(ctx, nil)
	if err != nil {
		if errors.Is(err, state.ErrStateNotSynchronized) {
			return fmt.Errorf("%w: engine at epoch %d with no cursor", ErrInconsistentState, lastEpoch.Number)
		}
		return err
	}
	if lastEpoch.Number > cursor.BlockNumber {
		return fmt.Errorf("%w: engine at epoch %d, cursor at block %d", ErrInconsistentState, lastEpoch.Number, cursor.BlockNumber)
	}
	log.Infof("startup check passed, cursor at block %d, engine at epoch %d", cursor.BlockNumber, lastEpoch.Number)
	return nil
}

func (r *Runner) advance(ctx context.Context) error {
	if err := r.reloadPendingCommitments(ctx); err != nil {
		return err
	}

	var next uint64
	cursor, err := r.st.GetLastBlock(ctx, nil)
	if errors.Is(err, state.ErrStateNotSynchronized) {
		cursor = nil
		next = r.cfg.GenesisBlockNumber + 1
	} else if err != nil {
		return err
	} else {
		next = cursor.BlockNumber + 1
	}

	head, err := r.etherman.GetLatestBlockNumber(ctx)
	if err != nil {
		return err
	}
	if next > head {
		log.Debugf("caught up with L1 head %d", head)
		return nil
	}

	blocks, _, err := r.etherman.GetRollupInfoByBlockRange(ctx, next, &next)
	if err != nil {
		if errors.Is(err, etherman.ErrNotFound) {
			// the block past the head we saw is not there yet
			return nil
		}
		return err
	}
	if len(blocks) == 0 {
		return nil
	}
	block := &blocks[0]

	if cursor != nil && block.ParentHash != cursor.BlockHash {
		return r.handleReorg(ctx, cursor)
	}
	return r.processBlock(ctx, block)
}

// reloadPendingCommitments re-registers every unresolved commitment recorded
// in the state with the DA deriver. Registration is idempotent and ordered,
// so this heals any in-memory loss from a failed advance or a restart.
func (r *Runner) reloadPendingCommitments(ctx context.Context) error {
	pending, err := r.st.GetPendingBatchCommitments(ctx, nil)
	if err != nil {
		return err
	}
	for i := range pending {
		blk, err := r.st.GetBlockByNumber(ctx, pending[i].BlockNumber, nil)
		if err != nil {
			return err
		}
		r.da.AddCommitment(pending[i], derivation.Epoch{
			Hash:      blk.BlockHash,
			Number:    blk.BlockNumber,
			Timestamp: blk.Timestamp,
		})
	}
	return nil
}

// handleReorg rewinds the cursor to the last block still on the canonical
// chain and drops every accumulation derived from the abandoned branch. The
// reorg is not surfaced as an error: the next advance re-derives from the
// common ancestor.
func (r *Runner) handleReorg(ctx context.Context, cursor *state.Block) error {
	ancestor, err := r.findCommonAncestor(ctx)
	if err != nil {
		return err
	}
	depth := cursor.BlockNumber - ancestor
	log.Warnf("L1 reorg detected, rewinding cursor from block %d to %d", cursor.BlockNumber, ancestor)

	purged := r.da.Purge(ancestor)
	if purged > 0 {
		log.Infof("purged %d pending batches from the abandoned branch", purged)
	}

	dbTx, err := r.st.BeginStateTransaction(ctx)
	if err != nil {
		return err
	}
	if err := r.st.Reset(ctx, ancestor, dbTx); err != nil {
		r.rollback(ctx, dbTx)
		return err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return err
	}

	metrics.ReorgDetected(depth)
	r.logEvent(ctx, event.Level_Warning, event.EventID_ReorgDetected,
		fmt.Sprintf("rewound cursor from block %d to %d", cursor.BlockNumber, ancestor))
	return nil
}

// findCommonAncestor walks the stored blocks backwards until one still
// matches the canonical L1 chain.
func (r *Runner) findCommonAncestor(ctx context.Context) (uint64, error) {
	for offset := uint64(0); ; offset++ {
		blk, err := r.st.GetPreviousBlock(ctx, offset, nil)
		if err != nil {
			if errors.Is(err, state.ErrNotFound) {
				// walked past everything we ever stored
				return r.cfg.GenesisBlockNumber, nil
			}
			return 0, err
		}
		l1Block, err := r.etherman.EthBlockByNumber(ctx, blk.BlockNumber)
		if err != nil {
			if errors.Is(err, etherman.ErrNotFound) {
				continue
			}
			return 0, err
		}
		if l1Block.Hash() == blk.BlockHash {
			return blk.BlockNumber, nil
		}
	}
}

// processBlock derives one L1 block and submits its attributes: the instant
// attribute first, then every DA batch that resolved, in commit order. The
// cursor advances with the final commit, so any failure leaves it untouched.
func (r *Runner) processBlock(ctx context.Context, block *etherman.Block) error {
	epoch := derivation.NewEpochFromBlock(block)

	dbTx, err := r.st.BeginStateTransaction(ctx)
	if err != nil {
		return err
	}

	err = r.st.AddBlock(ctx, &state.Block{
		BlockNumber: block.BlockNumber,
		BlockHash:   block.BlockHash,
		ParentHash:  block.ParentHash,
		Timestamp:   epoch.Timestamp,
		ReceivedAt:  block.ReceivedAt,
	}, dbTx)
	if err != nil {
		r.rollback(ctx, dbTx)
		return err
	}

	for i := range block.BatchCommitments {
		commitment := block.BatchCommitments[i]
		if err := r.st.AddBatchCommitment(ctx, &commitment, dbTx); err != nil && !errors.Is(err, state.ErrAlreadyExists) {
			r.rollback(ctx, dbTx)
			return err
		}
		r.da.AddCommitment(commitment, epoch)
	}

	attr, err := r.instant.Derive(block)
	if err != nil {
		r.rollback(ctx, dbTx)
		r.logEvent(ctx, event.Level_Error, event.EventID_DepositConversionFailure, err.Error())
		return err
	}
	if attr != nil {
		if err := r.submit(ctx, attr); err != nil {
			r.rollback(ctx, dbTx)
			return err
		}
	}

	ready, dropped, err := r.da.Step(ctx, block.BlockNumber)
	if err != nil {
		r.rollback(ctx, dbTx)
		return err
	}
	for _, commitment := range dropped {
		if err := r.st.MarkBatchCommitmentStale(ctx, commitment, dbTx); err != nil && !errors.Is(err, state.ErrNotFound) {
			r.rollback(ctx, dbTx)
			return err
		}
		metrics.StaleBatchDropped()
		r.logEvent(ctx, event.Level_Warning, event.EventID_StaleBatchDropped,
			fmt.Sprintf("dropped batch %s at block %d", commitment.String(), block.BlockNumber))
	}
	for _, daAttr := range ready {
		if err := r.submit(ctx, daAttr); err != nil {
			r.rollback(ctx, dbTx)
			return err
		}
		if commitment := daAttr.Commitment(); commitment != nil {
			if err := r.st.MarkBatchCommitmentResolved(ctx, *commitment, dbTx); err != nil && !errors.Is(err, state.ErrNotFound) {
				r.rollback(ctx, dbTx)
				return err
			}
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return err
	}

	metrics.BlockSynced()
	metrics.PendingBatches(r.da.PendingCount())
	log.Infof("advanced cursor to block %d: %d deposits, %d new commitments, %d batches resolved",
		block.BlockNumber, len(block.Deposits), len(block.BatchCommitments), len(ready))
	return nil
}

func (r *Runner) submit(ctx context.Context, attr *derivation.PayloadAttribute) error {
	if err := r.engine.SubmitPayload(ctx, attr); err != nil {
		metrics.EngineSubmitFailed()
		r.logEvent(ctx, event.Level_Error, event.EventID_EngineSubmitFailure,
			fmt.Sprintf("epoch %d (%s): %v", attr.Epoch().Number, attr.Source(), err))
		return err
	}
	metrics.PayloadDerived(string(attr.Source()))
	return nil
}

func (r *Runner) rollback(ctx context.Context, dbTx pgx.Tx) {
	if err := dbTx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		log.Errorf("error rolling back state transaction: %v", err)
	}
}

func (r *Runner) logEvent(ctx context.Context, level event.Level, id event.EventID, description string) {
	if r.eventLog == nil {
		return
	}
	ev := &event.Event{
		ReceivedAt:  time.Now(),
		Source:      event.Source_Node,
		Component:   event.Component_Runner,
		Level:       level,
		EventID:     id,
		Description: description,
	}
	if err := r.eventLog.LogEvent(ctx, ev); err != nil {
		log.Errorf("error storing event: %v", err)
	}
}
