package state

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ZeroHash is the hash 0x0000000000000000000000000000000000000000000000000000000000000000
	ZeroHash = common.Hash{}
	// ZeroAddress is the address 0x0000000000000000000000000000000000000000
	ZeroAddress = common.Address{}
)

// Block struct
type Block struct {
	BlockNumber uint64
	BlockHash   common.Hash
	ParentHash  common.Hash
	Timestamp   uint64
	ReceivedAt  time.Time
}

// DepositTx is a deposit initiated on the L1 anchor contract, pending
// replication on L2. The recipient is a 32 byte L2 account key.
type DepositTx struct {
	From        common.Address
	To          common.Hash
	Amount      *big.Int
	Data        []byte
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

// BatchCommitment is the on-chain announcement of a transaction batch whose
// payload lives on the data availability layer, split into FrameCount frames.
type BatchCommitment struct {
	Commitment  common.Hash
	DataHash    common.Hash
	FrameCount  uint16
	BlockNumber uint64
	LogIndex    uint
	TxHash      common.Hash
}

// PayloadSource tells which derivation path produced a payload.
type PayloadSource string

const (
	// PayloadSourceInstant identifies payloads derived directly from L1 block content.
	PayloadSourceInstant PayloadSource = "instant"
	// PayloadSourceDa identifies payloads derived from resolved DA batches.
	PayloadSourceDa PayloadSource = "da"
)

// AppliedPayload records a payload accepted by the execution engine. For DA
// payloads Commitment carries the batch commitment that originated it.
type AppliedPayload struct {
	EpochNumber uint64
	EpochHash   common.Hash
	Source      PayloadSource
	Commitment  *common.Hash
	TxCount     uint64
	ContentHash common.Hash
	BlockNumber uint64
	AppliedAt   time.Time
}
