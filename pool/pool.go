// Package pool holds pending L2 transactions on the production side and
// hands them out in bounded batches for DA submission. It is independent of
// the read-side derivation pipeline.
package pool

import (
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/virjilakrum/igloo/metrics"
	"github.com/virjilakrum/igloo/state"
)

// BatchSettings bounds one NextBatch call.
type BatchSettings struct {
	// MaxSize is the maximum number of transactions returned.
	MaxSize int
}

type entry struct {
	tx  state.L2Transaction
	fee *uint256.Int
	seq uint64
}

// Pool is a mutex-guarded pending transaction queue. Multiple producers may
// Insert concurrently with one consumer draining through NextBatch.
type Pool struct {
	cfg Config

	mu      sync.Mutex
	entries []entry
	pending map[common.Hash]struct{}
	seq     uint64
}

// NewPool creates a pool with the given configuration. An unknown policy
// falls back to FIFO.
func NewPool(cfg Config) *Pool {
	if !cfg.Policy.IsValid() {
		cfg.Policy = PolicyFIFO
	}
	return &Pool{
		cfg:     cfg,
		pending: make(map[common.Hash]struct{}),
	}
}

// Insert adds a transaction with its offered fee. A nil fee counts as zero.
// With DedupByHash enabled a transaction already pending is silently
// dropped; a transaction that already left the pool may be re-inserted.
func (p *Pool) Insert(tx state.L2Transaction, fee *uint256.Int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cfg.DedupByHash {
		hash := tx.Hash()
		if _, ok := p.pending[hash]; ok {
			return
		}
		p.pending[hash] = struct{}{}
	}
	if fee == nil {
		fee = uint256.NewInt(0)
	}
	p.entries = append(p.entries, entry{tx: tx, fee: fee, seq: p.seq})
	p.seq++
	metrics.PoolSize(len(p.entries))
}

// NextBatch removes and returns up to settings.MaxSize transactions ordered
// by the configured policy. A removed transaction is never returned again
// unless re-inserted. An empty pool yields an empty batch.
func (p *Pool) NextBatch(settings BatchSettings) []state.L2Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	if settings.MaxSize <= 0 || len(p.entries) == 0 {
		return nil
	}

	sort.SliceStable(p.entries, p.less())

	size := settings.MaxSize
	if size > len(p.entries) {
		size = len(p.entries)
	}
	batch := make([]state.L2Transaction, size)
	for i := 0; i < size; i++ {
		batch[i] = p.entries[i].tx
		if p.cfg.DedupByHash {
			delete(p.pending, p.entries[i].tx.Hash())
		}
	}
	p.entries = append([]entry(nil), p.entries[size:]...)
	metrics.PoolSize(len(p.entries))
	return batch
}

// Len returns the number of pending transactions.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

func (p *Pool) less() func(i, j int) bool {
	entries := p.entries
	switch p.cfg.Policy {
	case PolicyFeePriority:
		return func(i, j int) bool {
			if c := entries[i].fee.Cmp(entries[j].fee); c != 0 {
				return c > 0
			}
			return entries[i].seq < entries[j].seq
		}
	default:
		return func(i, j int) bool {
			return entries[i].seq < entries[j].seq
		}
	}
}
