// Package derivation turns observed L1 content into engine-ready payload
// attributes. It holds the pure conversion of anchored deposits
// (InstantDeriver) and the asynchronous resolution of committed DA batches
// (DaDeriver). Both paths are deterministic: the same L1 history always
// produces the same ordered attribute stream.
package derivation

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/virjilakrum/igloo/etherman"
)

// Epoch references the L1 block a derived payload is anchored to.
type Epoch struct {
	Hash      common.Hash
	Number    uint64
	Timestamp uint64
}

// NewEpochFromBlock builds the epoch reference of an observed L1 block.
func NewEpochFromBlock(block *etherman.Block) Epoch {
	return Epoch{
		Hash:      block.BlockHash,
		Number:    block.BlockNumber,
		Timestamp: uint64(block.ReceivedAt.Unix()),
	}
}

// Equal reports whether two epochs reference the same L1 block.
func (e Epoch) Equal(other Epoch) bool {
	return e.Hash == other.Hash && e.Number == other.Number
}
