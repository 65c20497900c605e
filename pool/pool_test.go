package pool

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/virjilakrum/igloo/state"
)

func tx(b byte) state.L2Transaction {
	return state.NewL2Transaction([]byte{0x7e, b})
}

func TestPoolFIFOOrder(t *testing.T) {
	p := NewPool(Config{Policy: PolicyFIFO})

	p.Insert(tx(1), uint256.NewInt(5))
	p.Insert(tx(2), uint256.NewInt(50))
	p.Insert(tx(3), nil)
	require.Equal(t, 3, p.Len())

	batch := p.NextBatch(BatchSettings{MaxSize: 10})
	require.Len(t, batch, 3)
	assert.Equal(t, tx(1), batch[0])
	assert.Equal(t, tx(2), batch[1])
	assert.Equal(t, tx(3), batch[2])
	assert.Equal(t, 0, p.Len())
}

func TestPoolFeePriorityOrder(t *testing.T) {
	p := NewPool(Config{Policy: PolicyFeePriority})

	p.Insert(tx(1), uint256.NewInt(5))
	p.Insert(tx(2), uint256.NewInt(50))
	p.Insert(tx(3), uint256.NewInt(50)) // ties break by insertion order
	p.Insert(tx(4), nil)

	batch := p.NextBatch(BatchSettings{MaxSize: 10})
	require.Len(t, batch, 4)
	assert.Equal(t, tx(2), batch[0])
	assert.Equal(t, tx(3), batch[1])
	assert.Equal(t, tx(1), batch[2])
	assert.Equal(t, tx(4), batch[3])
}

func TestPoolNextBatchBoundsSize(t *testing.T) {
	p := NewPool(Config{Policy: PolicyFIFO})
	for i := byte(0); i < 5; i++ {
		p.Insert(tx(i), nil)
	}

	batch := p.NextBatch(BatchSettings{MaxSize: 2})
	require.Len(t, batch, 2)
	assert.Equal(t, 3, p.Len())

	// removed transactions never come back
	next := p.NextBatch(BatchSettings{MaxSize: 10})
	require.Len(t, next, 3)
	for _, got := range next {
		assert.NotContains(t, batch, got)
	}

	assert.Empty(t, p.NextBatch(BatchSettings{MaxSize: 10}))
	assert.Empty(t, p.NextBatch(BatchSettings{MaxSize: 0}))
}

func TestPoolDedupByHash(t *testing.T) {
	p := NewPool(Config{Policy: PolicyFIFO, DedupByHash: true})

	p.Insert(tx(1), nil)
	p.Insert(tx(1), nil)
	assert.Equal(t, 1, p.Len())

	// once drained the same transaction may be re-inserted
	require.Len(t, p.NextBatch(BatchSettings{MaxSize: 1}), 1)
	p.Insert(tx(1), nil)
	assert.Equal(t, 1, p.Len())
}

func TestPoolDedupDisabledKeepsDuplicates(t *testing.T) {
	p := NewPool(Config{Policy: PolicyFIFO})

	p.Insert(tx(1), nil)
	p.Insert(tx(1), nil)
	assert.Equal(t, 2, p.Len())
}

func TestPoolUnknownPolicyFallsBackToFIFO(t *testing.T) {
	p := NewPool(Config{Policy: Policy("bogus")})

	p.Insert(tx(1), uint256.NewInt(1))
	p.Insert(tx(2), uint256.NewInt(100))

	batch := p.NextBatch(BatchSettings{MaxSize: 2})
	require.Len(t, batch, 2)
	assert.Equal(t, tx(1), batch[0])
}
