package derivation

import (
	"github.com/virjilakrum/igloo/etherman"
)

// InstantDeriver produces the attribute of a block synchronously from the
// block content alone. It keeps no state across calls, the same block always
// derives the same attribute.
type InstantDeriver struct{}

// NewInstantDeriver creates an InstantDeriver.
func NewInstantDeriver() *InstantDeriver {
	return &InstantDeriver{}
}

// Derive converts one observed L1 block into its instant attribute. A block
// without deposits still yields an attribute: the empty attribute moves the
// engine's L1 reference forward.
func (d *InstantDeriver) Derive(block *etherman.Block) (*PayloadAttribute, error) {
	return NewPayloadAttributeFromBlock(block)
}
