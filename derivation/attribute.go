package derivation

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/virjilakrum/igloo/etherman"
	"github.com/virjilakrum/igloo/state"
)

// PayloadAttribute is the engine-ready unit of derivation: an ordered,
// immutable sequence of L2 transactions anchored to one epoch. The
// transaction slice is shared between the runner, the engine and any
// downstream observer; it must never be mutated after construction.
type PayloadAttribute struct {
	epoch      Epoch
	txs        []state.L2Transaction
	source     state.PayloadSource
	commitment *common.Hash
}

// NewPayloadAttribute builds an attribute over an already ordered transaction
// sequence. The caller hands over ownership of txs.
func NewPayloadAttribute(epoch Epoch, txs []state.L2Transaction, source state.PayloadSource, commitment *common.Hash) *PayloadAttribute {
	return &PayloadAttribute{
		epoch:      epoch,
		txs:        txs,
		source:     source,
		commitment: commitment,
	}
}

// NewPayloadAttributeFromBlock converts an observed L1 block into its
// instant-derived attribute: the block's deposits in on-chain log order,
// anchored to the block's own epoch. Batch commitments carried by the block
// are intentionally left out; they resolve through the DA path as separate
// attributes submitted after this one. A deposit that fails to convert aborts
// the whole block with a ConversionError, deposits are never dropped
// silently.
func NewPayloadAttributeFromBlock(block *etherman.Block) (*PayloadAttribute, error) {
	txs := make([]state.L2Transaction, 0, len(block.Deposits))
	for _, deposit := range block.Deposits {
		tx, err := EncodeDepositTx(deposit)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return NewPayloadAttribute(NewEpochFromBlock(block), txs, state.PayloadSourceInstant, nil), nil
}

// Epoch returns the L1 anchor of the attribute.
func (a *PayloadAttribute) Epoch() Epoch {
	return a.epoch
}

// Transactions returns the shared transaction sequence. Callers must treat
// the returned slice as read-only.
func (a *PayloadAttribute) Transactions() []state.L2Transaction {
	return a.txs
}

// TxCount returns the number of transactions in the attribute.
func (a *PayloadAttribute) TxCount() int {
	return len(a.txs)
}

// Source reports which derivation path produced the attribute.
func (a *PayloadAttribute) Source() state.PayloadSource {
	return a.source
}

// Commitment returns the batch commitment a DA attribute originated from,
// nil for instant attributes.
func (a *PayloadAttribute) Commitment() *common.Hash {
	return a.commitment
}

// ContentHash is a deterministic digest of the attribute: epoch, source and
// every transaction payload in order. Two derivations of the same L1 history
// produce the same content hash, which is what the engine's duplicate
// detection and the retry idempotence rely on.
func (a *PayloadAttribute) ContentHash() common.Hash {
	var num [8]byte
	binary.BigEndian.PutUint64(num[:], a.epoch.Number)

	parts := make([][]byte, 0, len(a.txs)+3)
	parts = append(parts, a.epoch.Hash.Bytes(), num[:], []byte(a.source))
	for _, tx := range a.txs {
		parts = append(parts, tx.Hash().Bytes())
	}
	return crypto.Keccak256Hash(parts...)
}
