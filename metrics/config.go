package metrics

// Config represents the configuration of the metrics
type Config struct {
	// Enabled is the flag to enable/disable the metrics server
	Enabled bool `mapstructure:"Enabled"`
	// Host is the address to bind the metrics server
	Host string `mapstructure:"Host"`
	// Port is the port to bind the metrics server
	Port int `mapstructure:"Port"`
	// ProfilingEnabled is the flag to enable/disable the profiling server
	ProfilingEnabled bool `mapstructure:"ProfilingEnabled"`
	// ProfilingHost is the address to bind the profiling server
	ProfilingHost string `mapstructure:"ProfilingHost"`
	// ProfilingPort is the port to bind the profiling server
	ProfilingPort int `mapstructure:"ProfilingPort"`
}

const (
	// Endpoint the endpoint for exposing the metrics
	Endpoint = "/metrics"
	// ProfilingIndexEndpoint the endpoint for exposing the profiling metrics
	ProfilingIndexEndpoint = "/debug/pprof/"
	// ProfileEndpoint the endpoint for exposing the profile of the profiling metrics
	ProfileEndpoint = "/debug/pprof/profile"
	// ProfilingCmdEndpoint the endpoint for exposing the command line of profiling metrics
	ProfilingCmdEndpoint = "/debug/pprof/cmdline"
	// ProfilingSymbolEndpoint the endpoint for exposing the symbol of profiling metrics
	ProfilingSymbolEndpoint = "/debug/pprof/symbol"
	// ProfilingTraceEndpoint the endpoint for exposing the trace of profiling metrics
	ProfilingTraceEndpoint = "/debug/pprof/trace"
)
