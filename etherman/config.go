package etherman

import (
	"github.com/ethereum/go-ethereum/common"
)

// Config represents the configuration of the etherman
type Config struct {
	// URL is the URL of the Ethereum node for L1
	URL string `mapstructure:"URL"`

	// L1ChainID is the chain ID of the L1 network
	L1ChainID uint64 `mapstructure:"L1ChainID"`

	// IglooAnchorAddr is the address of the rollup anchor contract on L1
	IglooAnchorAddr common.Address `mapstructure:"IglooAnchorAddr"`
}
