package etherman

import (
	"github.com/ethereum/go-ethereum/common"
	solsha3 "github.com/miguelmota/go-solidity-sha3"
)

// ComputeBatchCommitment reproduces the commitment binding of the anchor
// contract: keccak256(abi.encodePacked(dataHash, frameCount)). The derivation
// pipeline recomputes it over reassembled DA payloads to reject data that
// does not match what was committed on L1.
func ComputeBatchCommitment(dataHash common.Hash, frameCount uint16) common.Hash {
	hash := solsha3.SoliditySHA3(
		[]string{"bytes32", "uint16"},
		[]interface{}{dataHash.Hex(), frameCount},
	)
	return common.BytesToHash(hash)
}
