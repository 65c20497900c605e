package derivation

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/virjilakrum/igloo/dataavailability"
	"github.com/virjilakrum/igloo/etherman"
	"github.com/virjilakrum/igloo/state"
)

// makeBatch builds a committed batch and its frames the way the submission
// side would: encode, hash, bind, split.
func makeBatch(t *testing.T, blockNumber uint64, logIndex uint, frameSize int, txPayloads ...[]byte) (state.BatchCommitment, []dataavailability.Frame) {
	t.Helper()

	txs := make([]state.L2Transaction, len(txPayloads))
	for i, p := range txPayloads {
		txs[i] = state.NewL2Transaction(p)
	}
	payload, err := EncodeBatchPayload(txs)
	require.NoError(t, err)

	dataHash := crypto.Keccak256Hash(payload)
	frames := dataavailability.SplitIntoFrames(common.Hash{}, payload, frameSize)
	commitment := etherman.ComputeBatchCommitment(dataHash, uint16(len(frames)))
	for i := range frames {
		frames[i].Commitment = commitment
	}

	return state.BatchCommitment{
		Commitment:  commitment,
		DataHash:    dataHash,
		FrameCount:  uint16(len(frames)),
		BlockNumber: blockNumber,
		LogIndex:    logIndex,
	}, frames
}

func testEpoch(number uint64) Epoch {
	return Epoch{
		Hash:      common.BigToHash(new(big.Int).SetUint64(number)),
		Number:    number,
		Timestamp: 1700000000 + number,
	}
}

func TestDaDeriverEmitsCompleteBatch(t *testing.T) {
	backend := dataavailability.NewMemBackend()
	d := NewDaDeriver(Config{StalenessHorizon: 64}, backend)

	commitment, frames := makeBatch(t, 10, 0, 8, []byte{0x7e, 0x01}, []byte{0x7e, 0x02})
	require.Greater(t, len(frames), 1)
	backend.StoreFrames(frames, 10)
	backend.SetHeight(10)

	d.AddCommitment(commitment, testEpoch(10))
	require.Equal(t, 1, d.PendingCount())

	ready, dropped, err := d.Step(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, dropped)
	require.Len(t, ready, 1)
	assert.Equal(t, 0, d.PendingCount())

	attr := ready[0]
	assert.Equal(t, state.PayloadSourceDa, attr.Source())
	require.NotNil(t, attr.Commitment())
	assert.Equal(t, commitment.Commitment, *attr.Commitment())
	assert.Equal(t, testEpoch(10), attr.Epoch())
	require.Equal(t, 2, attr.TxCount())
	assert.Equal(t, []byte{0x7e, 0x01}, attr.Transactions()[0].Payload)
	assert.Equal(t, []byte{0x7e, 0x02}, attr.Transactions()[1].Payload)
}

func TestDaDeriverWaitsForMissingFrames(t *testing.T) {
	backend := dataavailability.NewMemBackend()
	d := NewDaDeriver(Config{StalenessHorizon: 64}, backend)

	commitment, frames := makeBatch(t, 10, 0, 4, []byte{0x7e, 0x01, 0x02, 0x03, 0x04, 0x05})
	require.Greater(t, len(frames), 1)

	// only the first frame is visible yet
	backend.StoreFrame(frames[0], 10)
	for _, f := range frames[1:] {
		backend.StoreFrame(f, 12)
	}
	backend.SetHeight(10)
	d.AddCommitment(commitment, testEpoch(10))

	ready, dropped, err := d.Step(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, ready)
	assert.Empty(t, dropped)
	assert.Equal(t, 1, d.PendingCount())

	backend.SetHeight(12)
	ready, dropped, err = d.Step(context.Background(), 12)
	require.NoError(t, err)
	assert.Empty(t, dropped)
	require.Len(t, ready, 1)
}

func TestDaDeriverHoldsCompleteBatchBehindEarlierIncomplete(t *testing.T) {
	backend := dataavailability.NewMemBackend()
	d := NewDaDeriver(Config{StalenessHorizon: 64}, backend)

	first, firstFrames := makeBatch(t, 10, 0, 0, []byte{0x7e, 0x01})
	second, secondFrames := makeBatch(t, 10, 1, 0, []byte{0x7e, 0x02})

	// the later batch resolves first
	backend.StoreFrames(secondFrames, 10)
	backend.StoreFrames(firstFrames, 12)
	backend.SetHeight(10)

	d.AddCommitment(first, testEpoch(10))
	d.AddCommitment(second, testEpoch(10))

	ready, _, err := d.Step(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, ready, "a complete batch must wait behind an earlier incomplete one")

	backend.SetHeight(12)
	ready, _, err = d.Step(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, ready, 2)
	assert.Equal(t, first.Commitment, *ready[0].Commitment())
	assert.Equal(t, second.Commitment, *ready[1].Commitment())
}

func TestDaDeriverKeepsCommitOrderOnReRegistration(t *testing.T) {
	backend := dataavailability.NewMemBackend()
	d := NewDaDeriver(Config{StalenessHorizon: 64}, backend)

	first, firstFrames := makeBatch(t, 9, 0, 0, []byte{0x7e, 0x01})
	second, secondFrames := makeBatch(t, 10, 0, 0, []byte{0x7e, 0x02})
	backend.StoreFrames(firstFrames, 10)
	backend.StoreFrames(secondFrames, 10)
	backend.SetHeight(10)

	// registered out of commit order, as a reload after a restart might
	d.AddCommitment(second, testEpoch(10))
	d.AddCommitment(first, testEpoch(9))
	d.AddCommitment(first, testEpoch(9)) // idempotent
	require.Equal(t, 2, d.PendingCount())

	ready, _, err := d.Step(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, ready, 2)
	assert.Equal(t, first.Commitment, *ready[0].Commitment())
	assert.Equal(t, second.Commitment, *ready[1].Commitment())
}

func TestDaDeriverDropsStaleBatch(t *testing.T) {
	backend := dataavailability.NewMemBackend()
	d := NewDaDeriver(Config{StalenessHorizon: 4}, backend)

	commitment, _ := makeBatch(t, 10, 0, 0, []byte{0x7e, 0x01})
	// frames never posted
	d.AddCommitment(commitment, testEpoch(10))

	ready, dropped, err := d.Step(context.Background(), 14)
	require.NoError(t, err)
	assert.Empty(t, ready)
	assert.Empty(t, dropped, "batch inside the horizon must be kept")

	ready, dropped, err = d.Step(context.Background(), 15)
	require.NoError(t, err)
	assert.Empty(t, ready)
	require.Len(t, dropped, 1)
	assert.Equal(t, commitment.Commitment, dropped[0])
	assert.Equal(t, 0, d.PendingCount())
}

func TestDaDeriverDropsBatchWithWrongDataHash(t *testing.T) {
	backend := dataavailability.NewMemBackend()
	d := NewDaDeriver(Config{StalenessHorizon: 64}, backend)

	commitment, frames := makeBatch(t, 10, 0, 0, []byte{0x7e, 0x01})
	frames[0].Data = append(frames[0].Data, 0xff)
	backend.StoreFrames(frames, 10)
	backend.SetHeight(10)

	d.AddCommitment(commitment, testEpoch(10))
	ready, dropped, err := d.Step(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, ready)
	require.Len(t, dropped, 1)
	assert.Equal(t, commitment.Commitment, dropped[0])
}

func TestDaDeriverDropsBatchWithMismatchedFrameBinding(t *testing.T) {
	backend := dataavailability.NewMemBackend()
	d := NewDaDeriver(Config{StalenessHorizon: 64}, backend)

	commitment, frames := makeBatch(t, 10, 0, 0, []byte{0x7e, 0x01})
	frames[0].FrameCount = commitment.FrameCount + 1
	backend.StoreFrames(frames, 10)
	backend.SetHeight(10)

	d.AddCommitment(commitment, testEpoch(10))

	// first Step marks the batch malformed, the next one drops it
	ready, dropped, err := d.Step(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, ready)
	if len(dropped) == 0 {
		ready, dropped, err = d.Step(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, ready)
	}
	require.Len(t, dropped, 1)
	assert.Equal(t, commitment.Commitment, dropped[0])
}

func TestDaDeriverPurge(t *testing.T) {
	backend := dataavailability.NewMemBackend()
	d := NewDaDeriver(Config{StalenessHorizon: 64}, backend)

	older, _ := makeBatch(t, 5, 0, 0, []byte{0x7e, 0x01})
	newer, _ := makeBatch(t, 7, 0, 0, []byte{0x7e, 0x02})
	d.AddCommitment(older, testEpoch(5))
	d.AddCommitment(newer, testEpoch(7))

	assert.Equal(t, 1, d.Purge(5))
	assert.Equal(t, 1, d.PendingCount())
	assert.Equal(t, 0, d.Purge(5))
}
