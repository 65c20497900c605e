package etherman

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/virjilakrum/igloo/etherman/smartcontracts/iglooanchor"
	"github.com/virjilakrum/igloo/log"
	"github.com/virjilakrum/igloo/state"
)

// EventOrder is the type used to identify the events order
type EventOrder string

const (
	// DepositsOrder identifies a DepositInitiated event
	DepositsOrder EventOrder = "Deposits"
	// BatchCommitmentsOrder identifies a BatchCommitted event
	BatchCommitmentsOrder EventOrder = "BatchCommitments"
)

var (
	depositInitiatedSignatureHash = crypto.Keccak256Hash([]byte("DepositInitiated(address,bytes32,uint256,bytes)"))
	batchCommittedSignatureHash   = crypto.Keccak256Hash([]byte("BatchCommitted(bytes32,bytes32,uint16)"))

	// ErrNotFound is used when the object is not found
	ErrNotFound = errors.New("not found")
)

type ethereumClient interface {
	ethereum.ChainReader
	ethereum.ChainStateReader
	ethereum.ContractCaller
	ethereum.GasEstimator
	ethereum.GasPricer
	ethereum.LogFilterer
	ethereum.TransactionReader
	ethereum.TransactionSender

	bind.DeployBackend
}

// Block groups the rollup relevant content of one L1 block. Deposits and
// BatchCommitments keep the on-chain log order.
type Block struct {
	BlockNumber      uint64
	BlockHash        common.Hash
	ParentHash       common.Hash
	Deposits         []state.DepositTx
	BatchCommitments []state.BatchCommitment
	ReceivedAt       time.Time
}

// Order contains the event order to let the runner handle the information
// following the L1 block order
type Order struct {
	Name EventOrder
	Pos  int
}

// Client is a simple implementation of EtherMan.
type Client struct {
	EthClient   ethereumClient
	IglooAnchor *iglooanchor.Iglooanchor
	SCAddresses []common.Address

	cfg Config
}

// NewClient creates a new etherman.
func NewClient(cfg Config) (*Client, error) {
	// Connect to ethereum node
	ethClient, err := ethclient.Dial(cfg.URL)
	if err != nil {
		log.Errorf("error connecting to %s: %+v", cfg.URL, err)
		return nil, err
	}
	// Create smc clients
	anchor, err := iglooanchor.NewIglooanchor(cfg.IglooAnchorAddr, ethClient)
	if err != nil {
		return nil, err
	}
	scAddresses := []common.Address{cfg.IglooAnchorAddr}

	return &Client{
		EthClient:   ethClient,
		IglooAnchor: anchor,
		SCAddresses: scAddresses,
		cfg:         cfg,
	}, nil
}

// GetRollupInfoByBlockRange function retrieves the rollup information of the
// blocks in the given range. When toBlock is set, every block of the range is
// returned even if it carries no anchor events, so derivation can emit one
// epoch per L1 block.
func (etherMan *Client) GetRollupInfoByBlockRange(ctx context.Context, fromBlock uint64, toBlock *uint64) ([]Block, map[common.Hash][]Order, error) {
	// Filter query
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: etherMan.SCAddresses,
	}
	if toBlock != nil {
		query.ToBlock = new(big.Int).SetUint64(*toBlock)
	}
	blocks, blocksOrder, err := etherMan.readEvents(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	if toBlock != nil {
		blocks, err = etherMan.fillBlockRange(ctx, fromBlock, *toBlock, blocks)
		if err != nil {
			return nil, nil, err
		}
	}
	return blocks, blocksOrder, nil
}

// GetLatestBlockNumber gets the latest L1 block number
func (etherMan *Client) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	header, err := etherMan.EthClient.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, err
	}
	if header == nil {
		return 0, fmt.Errorf("%w: latest header is nil", ErrNotFound)
	}
	return header.Number.Uint64(), nil
}

// EthBlockByNumber function retrieves the ethereum block information by ethereum block number
func (etherMan *Client) EthBlockByNumber(ctx context.Context, blockNumber uint64) (*types.Block, error) {
	block, err := etherMan.EthClient.BlockByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) || err.Error() == "block does not exist in blockchain" {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return block, nil
}

// GetL1ChainID returns the configured chain ID of the L1 network
func (etherMan *Client) GetL1ChainID() uint64 {
	return etherMan.cfg.L1ChainID
}

func (etherMan *Client) readEvents(ctx context.Context, query ethereum.FilterQuery) ([]Block, map[common.Hash][]Order, error) {
	logs, err := etherMan.EthClient.FilterLogs(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	var blocks []Block
	blocksOrder := make(map[common.Hash][]Order)
	for _, vLog := range logs {
		err := etherMan.processEvent(ctx, vLog, &blocks, &blocksOrder)
		if err != nil {
			log.Warnf("error processing event. Error: %s. vLog: %+v", err.Error(), vLog)
			return nil, nil, err
		}
	}
	return blocks, blocksOrder, nil
}

func (etherMan *Client) processEvent(ctx context.Context, vLog types.Log, blocks *[]Block, blocksOrder *map[common.Hash][]Order) error {
	switch vLog.Topics[0] {
	case depositInitiatedSignatureHash:
		return etherMan.depositInitiatedEvent(ctx, vLog, blocks, blocksOrder)
	case batchCommittedSignatureHash:
		return etherMan.batchCommittedEvent(ctx, vLog, blocks, blocksOrder)
	}
	log.Warnf("Event not registered: %+v", vLog)
	return nil
}

func (etherMan *Client) depositInitiatedEvent(ctx context.Context, vLog types.Log, blocks *[]Block, blocksOrder *map[common.Hash][]Order) error {
	log.Debug("DepositInitiated event detected")
	d, err := etherMan.IglooAnchor.ParseDepositInitiated(vLog)
	if err != nil {
		return err
	}
	deposit := state.DepositTx{
		From:        d.From,
		To:          common.Hash(d.To),
		Amount:      d.Amount,
		Data:        d.Data,
		BlockNumber: vLog.BlockNumber,
		TxHash:      vLog.TxHash,
		LogIndex:    vLog.Index,
	}

	block, err := etherMan.retrieveBlock(ctx, vLog, blocks)
	if err != nil {
		return err
	}
	block.Deposits = append(block.Deposits, deposit)
	order := Order{
		Name: DepositsOrder,
		Pos:  len(block.Deposits) - 1,
	}
	(*blocksOrder)[block.BlockHash] = append((*blocksOrder)[block.BlockHash], order)
	return nil
}

func (etherMan *Client) batchCommittedEvent(ctx context.Context, vLog types.Log, blocks *[]Block, blocksOrder *map[common.Hash][]Order) error {
	log.Debug("BatchCommitted event detected")
	c, err := etherMan.IglooAnchor.ParseBatchCommitted(vLog)
	if err != nil {
		return err
	}
	commitment := state.BatchCommitment{
		Commitment:  common.Hash(c.Commitment),
		DataHash:    common.Hash(c.DataHash),
		FrameCount:  c.FrameCount,
		BlockNumber: vLog.BlockNumber,
		LogIndex:    vLog.Index,
		TxHash:      vLog.TxHash,
	}

	block, err := etherMan.retrieveBlock(ctx, vLog, blocks)
	if err != nil {
		return err
	}
	block.BatchCommitments = append(block.BatchCommitments, commitment)
	order := Order{
		Name: BatchCommitmentsOrder,
		Pos:  len(block.BatchCommitments) - 1,
	}
	(*blocksOrder)[block.BlockHash] = append((*blocksOrder)[block.BlockHash], order)
	return nil
}

func (etherMan *Client) retrieveBlock(ctx context.Context, vLog types.Log, blocks *[]Block) (*Block, error) {
	if len(*blocks) == 0 || (*blocks)[len(*blocks)-1].BlockHash != vLog.BlockHash || (*blocks)[len(*blocks)-1].BlockNumber != vLog.BlockNumber {
		header, err := etherMan.EthClient.HeaderByHash(ctx, vLog.BlockHash)
		if err != nil {
			return nil, fmt.Errorf("error getting header for hash %s. Error: %w", vLog.BlockHash.String(), err)
		}
		block := prepareBlock(vLog, header)
		*blocks = append(*blocks, block)
	}
	return &(*blocks)[len(*blocks)-1], nil
}

func prepareBlock(vLog types.Log, header *types.Header) Block {
	return Block{
		BlockNumber: vLog.BlockNumber,
		BlockHash:   vLog.BlockHash,
		ParentHash:  header.ParentHash,
		ReceivedAt:  time.Unix(int64(header.Time), 0),
	}
}

// fillBlockRange completes the block list with the blocks of the range that
// carry no anchor events.
func (etherMan *Client) fillBlockRange(ctx context.Context, fromBlock, toBlock uint64, blocks []Block) ([]Block, error) {
	retrieved := make(map[uint64]struct{}, len(blocks))
	for _, block := range blocks {
		retrieved[block.BlockNumber] = struct{}{}
	}

	for blockNumber := fromBlock; blockNumber <= toBlock; blockNumber++ {
		if _, ok := retrieved[blockNumber]; ok {
			continue
		}
		header, err := etherMan.EthClient.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("error getting header for block %d. Error: %w", blockNumber, err)
		}
		blocks = append(blocks, Block{
			BlockNumber: blockNumber,
			BlockHash:   header.Hash(),
			ParentHash:  header.ParentHash,
			ReceivedAt:  time.Unix(int64(header.Time), 0),
		})
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].BlockNumber < blocks[j].BlockNumber
	})
	return blocks, nil
}
