package derivation

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/virjilakrum/igloo/state"
)

const (
	// BatchPayloadVersion is the version byte leading every batch payload
	// posted to the data availability layer.
	BatchPayloadVersion byte = 0x01

	// DepositTxType is the leading byte of the L2 representation of a
	// deposit transaction.
	DepositTxType byte = 0x7e

	// MaxDepositDataSize bounds deposit calldata replicated on L2.
	MaxDepositDataSize = 128 * 1024

	// maxBatchPayloadSize bounds the decompressed size of a batch payload.
	maxBatchPayloadSize = 10 * 1024 * 1024
)

// depositTxPayload is the RLP layout of a deposit L2 transaction, after the
// DepositTxType byte.
type depositTxPayload struct {
	From   common.Address
	To     common.Hash
	Amount *big.Int
	Data   []byte
}

// EncodeDepositTx converts an L1 deposit into its L2 transaction
// representation. Conversion is fail-closed: an invalid deposit returns a
// ConversionError and never a truncated transaction.
func EncodeDepositTx(deposit state.DepositTx) (state.L2Transaction, error) {
	if deposit.Amount == nil {
		return state.L2Transaction{}, &ConversionError{TxHash: deposit.TxHash, Err: ErrNilAmount}
	}
	if deposit.Amount.Sign() < 0 {
		return state.L2Transaction{}, &ConversionError{TxHash: deposit.TxHash, Err: ErrNegativeAmount}
	}
	if deposit.Amount.BitLen() > 256 {
		return state.L2Transaction{}, &ConversionError{TxHash: deposit.TxHash, Err: ErrAmountOverflow}
	}
	if len(deposit.Data) > MaxDepositDataSize {
		return state.L2Transaction{}, &ConversionError{TxHash: deposit.TxHash, Err: ErrOversizedData}
	}

	encoded, err := rlp.EncodeToBytes(depositTxPayload{
		From:   deposit.From,
		To:     deposit.To,
		Amount: deposit.Amount,
		Data:   deposit.Data,
	})
	if err != nil {
		return state.L2Transaction{}, &ConversionError{TxHash: deposit.TxHash, Err: err}
	}

	payload := make([]byte, 0, len(encoded)+1)
	payload = append(payload, DepositTxType)
	payload = append(payload, encoded...)
	return state.NewL2Transaction(payload), nil
}

// DecodeDepositTx recovers the deposit fields from an L2 transaction created
// by EncodeDepositTx. Used by the execution side and by recovery tooling.
func DecodeDepositTx(tx state.L2Transaction) (*state.DepositTx, error) {
	if len(tx.Payload) == 0 || tx.Payload[0] != DepositTxType {
		return nil, ErrUnknownTxType
	}
	var payload depositTxPayload
	if err := rlp.DecodeBytes(tx.Payload[1:], &payload); err != nil {
		return nil, err
	}
	return &state.DepositTx{
		From:   payload.From,
		To:     payload.To,
		Amount: payload.Amount,
		Data:   payload.Data,
	}, nil
}

// EncodeBatchPayload serializes a transaction batch into the payload format
// posted to the data availability layer: a version byte followed by the
// zlib-compressed RLP list of the raw transaction payloads.
func EncodeBatchPayload(txs []state.L2Transaction) ([]byte, error) {
	raw := make([][]byte, len(txs))
	for i, tx := range txs {
		raw[i] = tx.Payload
	}
	encoded, err := rlp.EncodeToBytes(raw)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte(BatchPayloadVersion)
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(encoded); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBatchPayload is the inverse of EncodeBatchPayload. It keeps the
// transaction order of the payload untouched, which makes two independent
// decodes of the same committed data byte-identical.
func DecodeBatchPayload(payload []byte) ([]state.L2Transaction, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	if payload[0] != BatchPayloadVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPayloadVersion, payload[0])
	}

	r, err := zlib.NewReader(bytes.NewReader(payload[1:]))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	encoded, err := io.ReadAll(io.LimitReader(r, maxBatchPayloadSize+1))
	if err != nil {
		return nil, err
	}
	if len(encoded) > maxBatchPayloadSize {
		return nil, fmt.Errorf("batch payload exceeds %d bytes once decompressed", maxBatchPayloadSize)
	}

	var raw [][]byte
	if err := rlp.DecodeBytes(encoded, &raw); err != nil {
		return nil, err
	}
	txs := make([]state.L2Transaction, len(raw))
	for i, payload := range raw {
		txs[i] = state.NewL2Transaction(payload)
	}
	return txs, nil
}
