package state

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// L2Transaction is an already signed L2 transaction. The node treats the
// payload as opaque bytes, only the execution engine interprets them.
type L2Transaction struct {
	Payload []byte
}

// NewL2Transaction wraps raw transaction bytes.
func NewL2Transaction(payload []byte) L2Transaction {
	return L2Transaction{Payload: payload}
}

// Hash returns the keccak hash of the transaction payload.
func (tx L2Transaction) Hash() common.Hash {
	return crypto.Keccak256Hash(tx.Payload)
}

// Size returns the payload size in bytes.
func (tx L2Transaction) Size() int {
	return len(tx.Payload)
}
