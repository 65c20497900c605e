package pool

// Policy selects the order transactions leave the pool in.
type Policy string

const (
	// PolicyFIFO drains the pool in insertion order.
	PolicyFIFO Policy = "fifo"
	// PolicyFeePriority drains the pool highest fee first, insertion order
	// breaking ties.
	PolicyFeePriority Policy = "feepriority"
)

// IsValid reports whether the policy is a known one.
func (p Policy) IsValid() bool {
	return p == PolicyFIFO || p == PolicyFeePriority
}

// Config is the pool configuration.
type Config struct {
	// Policy selects the batch ordering policy.
	Policy Policy `mapstructure:"Policy"`

	// DedupByHash rejects a transaction whose hash is already pending.
	DedupByHash bool `mapstructure:"DedupByHash"`
}
