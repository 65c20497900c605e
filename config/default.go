package config

// DefaultValues is the default configuration
const DefaultValues = `
[Log]
Environment = "development"
Level = "info"
Outputs = ["stderr"]

[Etherman]
URL = "http://localhost:8545"
L1ChainID = 1337
IglooAnchorAddr = "0x0000000000000000000000000000000000000000"

[State]
	[State.DB]
	User = "state_user"
	Password = "state_password"
	Name = "state_db"
	Host = "localhost"
	Port = "5432"
	EnableLog = false
	MaxConns = 200

[Derivation]
StalenessHorizon = 64
FrameFetchWorkers = 4

[Runner]
GenesisBlockNumber = 0
AdvanceInterval = "2s"

[Executor]
URI = ""
MaxGRPCMessageSize = 100000000

[Pool]
Policy = "fifo"
DedupByHash = true

[EventLog]
	[EventLog.DB]
	User = ""
	Password = ""
	Name = ""
	Host = ""
	Port = ""
	EnableLog = false
	MaxConns = 10

[Metrics]
Enabled = false
Host = "0.0.0.0"
Port = 9091
ProfilingEnabled = false
ProfilingHost = "0.0.0.0"
ProfilingPort = 6060

[JSONRPC]
Host = "0.0.0.0"
Port = 8123
ReadTimeout = "60s"
WriteTimeout = "60s"
MaxRequestsPerIPAndSecond = 500
EnableWebSockets = true
`
