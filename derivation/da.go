package derivation

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/virjilakrum/igloo/dataavailability"
	"github.com/virjilakrum/igloo/etherman"
	"github.com/virjilakrum/igloo/log"
	"github.com/virjilakrum/igloo/state"
	"golang.org/x/sync/errgroup"
)

// Config is the DaDeriver configuration.
type Config struct {
	// StalenessHorizon is the number of L1 blocks a partially resolved batch
	// may trail the cursor before it is discarded.
	StalenessHorizon uint64 `mapstructure:"StalenessHorizon"`

	// FrameFetchWorkers bounds the concurrent frame downloads of one Step.
	FrameFetchWorkers int `mapstructure:"FrameFetchWorkers"`
}

// frameBackend is the slice of the DA layer the deriver needs.
type frameBackend interface {
	GetFrame(ctx context.Context, commitment common.Hash, index uint16) (*dataavailability.Frame, error)
}

// pendingBatch accumulates the frames of one committed batch until all of
// them are available.
type pendingBatch struct {
	commitment state.BatchCommitment
	epoch      Epoch
	frames     [][]byte
	missing    int
	malformed  bool
}

func (b *pendingBatch) complete() bool {
	return b.missing == 0 && !b.malformed
}

// DaDeriver resolves batch commitments observed on L1 into payload
// attributes. Frames may become available over several L1 blocks; the
// deriver accumulates them per commitment and only emits a batch once it is
// complete and verified against its on-chain binding. Emission follows
// commit order: a complete batch waits behind an earlier incomplete one, so
// the attribute stream always matches the order the base chain finalized.
type DaDeriver struct {
	cfg     Config
	backend frameBackend

	mu      sync.Mutex
	pending map[common.Hash]*pendingBatch
	// queue holds the pending commitments in L1 commit order.
	queue []common.Hash
}

// NewDaDeriver creates a DaDeriver over the given DA backend.
func NewDaDeriver(cfg Config, backend frameBackend) *DaDeriver {
	if cfg.FrameFetchWorkers <= 0 {
		cfg.FrameFetchWorkers = 4
	}
	return &DaDeriver{
		cfg:     cfg,
		backend: backend,
		pending: make(map[common.Hash]*pendingBatch),
	}
}

// AddCommitment registers a batch commitment observed on L1 together with
// its commit epoch. Re-adding a known commitment is a no-op and the queue is
// kept sorted by commit position, so re-registration after a failed advance
// can never change the emission order.
func (d *DaDeriver) AddCommitment(commitment state.BatchCommitment, epoch Epoch) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.pending[commitment.Commitment]; ok {
		return
	}
	d.pending[commitment.Commitment] = &pendingBatch{
		commitment: commitment,
		epoch:      epoch,
		frames:     make([][]byte, commitment.FrameCount),
		missing:    int(commitment.FrameCount),
	}

	pos := sort.Search(len(d.queue), func(i int) bool {
		c := d.pending[d.queue[i]].commitment
		if c.BlockNumber != commitment.BlockNumber {
			return c.BlockNumber > commitment.BlockNumber
		}
		return c.LogIndex > commitment.LogIndex
	})
	d.queue = append(d.queue, common.Hash{})
	copy(d.queue[pos+1:], d.queue[pos:])
	d.queue[pos] = commitment.Commitment
}

// Step tries to make progress on every pending batch against the DA backend
// and returns the attributes that became ready, in commit order, plus the
// commitments that were dropped (stale past the horizon, or malformed once
// complete). Frames that are still pending are silently retried on the next
// Step. The error return is reserved for context cancellation.
func (d *DaDeriver) Step(ctx context.Context, cursorHeight uint64) ([]*PayloadAttribute, []common.Hash, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.fetchMissingFrames(ctx); err != nil {
		return nil, nil, err
	}

	var (
		ready   []*PayloadAttribute
		dropped []common.Hash
		keep    []common.Hash
	)
	blocked := false
	for _, id := range d.queue {
		batch := d.pending[id]

		if batch.malformed {
			dropped = append(dropped, id)
			delete(d.pending, id)
			continue
		}
		if !batch.complete() && d.isStale(batch, cursorHeight) {
			log.Warnf("discarding stale batch %s committed at block %d, still missing %d frames after %d blocks",
				id.String(), batch.commitment.BlockNumber, batch.missing, cursorHeight-batch.commitment.BlockNumber)
			dropped = append(dropped, id)
			delete(d.pending, id)
			continue
		}
		if blocked || !batch.complete() {
			// hold every later batch behind the first incomplete one
			blocked = true
			keep = append(keep, id)
			continue
		}

		attr, err := d.assemble(batch)
		if err != nil {
			log.Warnf("discarding undecodable batch %s: %v", id.String(), err)
			dropped = append(dropped, id)
			delete(d.pending, id)
			continue
		}
		ready = append(ready, attr)
		delete(d.pending, id)
	}
	d.queue = keep
	return ready, dropped, nil
}

// Purge drops every pending batch committed above the given block number.
// Called by the runner when an L1 reorg rewinds the cursor, so no frame data
// of an abandoned branch can leak into the canonical derivation.
func (d *DaDeriver) Purge(blockNumber uint64) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	var keep []common.Hash
	purged := 0
	for _, id := range d.queue {
		if d.pending[id].commitment.BlockNumber > blockNumber {
			delete(d.pending, id)
			purged++
			continue
		}
		keep = append(keep, id)
	}
	d.queue = keep
	return purged
}

// PendingCount returns the number of batches still being accumulated.
func (d *DaDeriver) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

func (d *DaDeriver) isStale(batch *pendingBatch, cursorHeight uint64) bool {
	if d.cfg.StalenessHorizon == 0 {
		return false
	}
	return cursorHeight > batch.commitment.BlockNumber &&
		cursorHeight-batch.commitment.BlockNumber > d.cfg.StalenessHorizon
}

// fetchMissingFrames downloads outstanding frames concurrently. Distinct
// goroutines write distinct frame slots, so the only shared write, the
// per-batch counters, is funneled through results.
func (d *DaDeriver) fetchMissingFrames(ctx context.Context) error {
	type fetched struct {
		id        common.Hash
		index     uint16
		data      []byte
		malformed bool
	}

	var (
		resMu   sync.Mutex
		results []fetched
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.FrameFetchWorkers)

	for _, id := range d.queue {
		batch := d.pending[id]
		if batch.malformed {
			continue
		}
		for i := range batch.frames {
			if batch.frames[i] != nil {
				continue
			}
			id, index, commitment := id, uint16(i), batch.commitment
			g.Go(func() error {
				frame, err := d.backend.GetFrame(gCtx, id, index)
				if err != nil {
					if errors.Is(err, dataavailability.ErrPending) || errors.Is(err, dataavailability.ErrNotFound) {
						return nil
					}
					if errors.Is(err, dataavailability.ErrMalformedFrame) {
						log.Warnf("malformed frame %d of batch %s: %v", index, id.String(), err)
						resMu.Lock()
						results = append(results, fetched{id: id, index: index, malformed: true})
						resMu.Unlock()
						return nil
					}
					return err
				}
				if frame.Commitment != id || frame.FrameNumber != index || frame.FrameCount != commitment.FrameCount {
					log.Warnf("frame %d of batch %s does not match its commitment binding", index, id.String())
					resMu.Lock()
					results = append(results, fetched{id: id, index: index, malformed: true})
					resMu.Unlock()
					return nil
				}
				resMu.Lock()
				results = append(results, fetched{id: id, index: index, data: frame.Data})
				resMu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		batch, ok := d.pending[r.id]
		if !ok {
			continue
		}
		if r.malformed {
			batch.malformed = true
			continue
		}
		if batch.frames[r.index] == nil {
			batch.frames[r.index] = r.data
			batch.missing--
		}
	}
	return nil
}

// assemble concatenates a complete batch's frames, checks the payload
// against the on-chain data hash and commitment binding, and decodes it
// into a DA attribute anchored to the commit epoch.
func (d *DaDeriver) assemble(batch *pendingBatch) (*PayloadAttribute, error) {
	size := 0
	for _, f := range batch.frames {
		size += len(f)
	}
	payload := make([]byte, 0, size)
	for _, f := range batch.frames {
		payload = append(payload, f...)
	}

	dataHash := crypto.Keccak256Hash(payload)
	if dataHash != batch.commitment.DataHash {
		return nil, errors.New("assembled payload does not match committed data hash")
	}
	if etherman.ComputeBatchCommitment(dataHash, batch.commitment.FrameCount) != batch.commitment.Commitment {
		return nil, errors.New("commitment binding mismatch")
	}

	txs, err := DecodeBatchPayload(payload)
	if err != nil {
		return nil, err
	}
	commitment := batch.commitment.Commitment
	return NewPayloadAttribute(batch.epoch, txs, state.PayloadSourceDa, &commitment), nil
}
