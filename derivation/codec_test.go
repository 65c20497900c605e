package derivation

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/virjilakrum/igloo/hex"
	"github.com/virjilakrum/igloo/state"
	"github.com/virjilakrum/igloo/test/vectors"
)

func TestEncodeDepositTxRoundTrip(t *testing.T) {
	deposit := state.DepositTx{
		From:   common.HexToAddress("0x617b3a3528F9cDd6630fd3301B9c8911F7Bf063D"),
		To:     common.HexToHash("0x02"),
		Amount: big.NewInt(1000000000000000000),
		Data:   []byte("bridge message"),
		TxHash: common.HexToHash("0xaaaa"),
	}

	tx, err := EncodeDepositTx(deposit)
	require.NoError(t, err)
	require.NotEmpty(t, tx.Payload)
	assert.Equal(t, DepositTxType, tx.Payload[0])

	decoded, err := DecodeDepositTx(tx)
	require.NoError(t, err)
	assert.Equal(t, deposit.From, decoded.From)
	assert.Equal(t, deposit.To, decoded.To)
	assert.Equal(t, 0, deposit.Amount.Cmp(decoded.Amount))
	assert.Equal(t, deposit.Data, decoded.Data)
}

func TestEncodeDepositTxVectors(t *testing.T) {
	vs, err := vectors.LoadDepositVectors("../test/vectors/deposits.yml")
	require.NoError(t, err)
	require.NotEmpty(t, vs)

	for _, v := range vs {
		t.Run(v.Name, func(t *testing.T) {
			amount, ok := new(big.Int).SetString(v.Amount, 10)
			require.True(t, ok)
			data, err := hex.DecodeHex(v.Data)
			require.NoError(t, err)

			deposit := state.DepositTx{
				From:   common.HexToAddress(v.From),
				To:     common.HexToHash(v.To),
				Amount: amount,
				Data:   data,
			}

			tx, err := EncodeDepositTx(deposit)
			require.NoError(t, err)

			decoded, err := DecodeDepositTx(tx)
			require.NoError(t, err)
			assert.Equal(t, deposit.From, decoded.From)
			assert.Equal(t, deposit.To, decoded.To)
			assert.Equal(t, 0, deposit.Amount.Cmp(decoded.Amount))
			if len(data) == 0 {
				assert.Empty(t, decoded.Data)
			} else {
				assert.Equal(t, data, decoded.Data)
			}
		})
	}
}

func TestEncodeDepositTxZeroAmountAndEmptyData(t *testing.T) {
	tx, err := EncodeDepositTx(state.DepositTx{Amount: big.NewInt(0)})
	require.NoError(t, err)

	decoded, err := DecodeDepositTx(tx)
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.Amount.Sign())
	assert.Empty(t, decoded.Data)
}

func TestEncodeDepositTxFailsClosed(t *testing.T) {
	overflow := new(big.Int).Lsh(big.NewInt(1), 256)

	tcs := []struct {
		name    string
		deposit state.DepositTx
		wantErr error
	}{
		{"nil amount", state.DepositTx{}, ErrNilAmount},
		{"negative amount", state.DepositTx{Amount: big.NewInt(-1)}, ErrNegativeAmount},
		{"amount overflow", state.DepositTx{Amount: overflow}, ErrAmountOverflow},
		{"oversized data", state.DepositTx{Amount: big.NewInt(1), Data: make([]byte, MaxDepositDataSize+1)}, ErrOversizedData},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tc.deposit.TxHash = common.HexToHash("0xbeef")
			_, err := EncodeDepositTx(tc.deposit)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)

			var convErr *ConversionError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, tc.deposit.TxHash, convErr.TxHash)
		})
	}
}

func TestDecodeDepositTxRejectsUnknownType(t *testing.T) {
	_, err := DecodeDepositTx(state.NewL2Transaction([]byte{0x01, 0x02}))
	assert.ErrorIs(t, err, ErrUnknownTxType)

	_, err = DecodeDepositTx(state.NewL2Transaction(nil))
	assert.ErrorIs(t, err, ErrUnknownTxType)
}

func TestBatchPayloadRoundTrip(t *testing.T) {
	txs := []state.L2Transaction{
		state.NewL2Transaction([]byte{0x7e, 0x01, 0x02}),
		state.NewL2Transaction([]byte{0x7e, 0x03}),
		state.NewL2Transaction([]byte{0xff}),
	}

	payload, err := EncodeBatchPayload(txs)
	require.NoError(t, err)
	assert.Equal(t, BatchPayloadVersion, payload[0])

	decoded, err := DecodeBatchPayload(payload)
	require.NoError(t, err)
	require.Len(t, decoded, len(txs))
	for i := range txs {
		assert.Equal(t, txs[i].Payload, decoded[i].Payload)
		assert.Equal(t, txs[i].Hash(), decoded[i].Hash())
	}
}

func TestBatchPayloadEmptyBatch(t *testing.T) {
	payload, err := EncodeBatchPayload(nil)
	require.NoError(t, err)

	decoded, err := DecodeBatchPayload(payload)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecodeBatchPayloadRejectsGarbage(t *testing.T) {
	_, err := DecodeBatchPayload(nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = DecodeBatchPayload([]byte{0x42, 0x00})
	assert.ErrorIs(t, err, ErrUnknownPayloadVersion)

	// right version byte, broken zlib stream
	_, err = DecodeBatchPayload([]byte{BatchPayloadVersion, 0xde, 0xad})
	assert.Error(t, err)
}
