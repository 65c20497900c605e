package runner

import (
	"github.com/virjilakrum/igloo/config/types"
)

// Config is the runner configuration.
type Config struct {
	// GenesisBlockNumber is the L1 block the rollup anchors from. Derivation
	// starts at the block after it.
	GenesisBlockNumber uint64 `mapstructure:"GenesisBlockNumber"`

	// AdvanceInterval is how long the driving loop waits between advances
	// once it is caught up with the L1 head.
	AdvanceInterval types.Duration `mapstructure:"AdvanceInterval"`
}
