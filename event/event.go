package event

import (
	"time"

	"github.com/google/uuid"
)

// EventID is the ID of the event
type EventID string

// Level indicates the criticality of the event
type Level string

// Source is the source of the event
type Source string

// Component is the component that triggered the event
type Component string

const (
	// EventID_ReorgDetected is triggered when a L1 reorg is detected and the cursor is rewound
	EventID_ReorgDetected EventID = "REORG DETECTED"
	// EventID_StaleBatchDropped is triggered when a partial DA batch exceeds the staleness horizon
	EventID_StaleBatchDropped EventID = "STALE BATCH DROPPED"
	// EventID_EngineSubmitFailure is triggered when the execution engine rejects a payload
	EventID_EngineSubmitFailure EventID = "ENGINE SUBMIT FAILURE"
	// EventID_DepositConversionFailure is triggered when a deposit cannot be converted to a L2 transaction
	EventID_DepositConversionFailure EventID = "DEPOSIT CONVERSION FAILURE"
	// EventID_NodeComponentStarted is triggered when a node component is started
	EventID_NodeComponentStarted EventID = "NODE COMPONENT STARTED"

	// Level_Emergency is an emergency level
	Level_Emergency Level = "emerg"
	// Level_Alert is an alert level
	Level_Alert Level = "alert"
	// Level_Critical is a critical level
	Level_Critical Level = "crit"
	// Level_Error is an error level
	Level_Error Level = "err"
	// Level_Warning is a warning level
	Level_Warning Level = "warning"
	// Level_Notice is a notice level
	Level_Notice Level = "notice"
	// Level_Info is an info level
	Level_Info Level = "info"
	// Level_Debug is a debug level
	Level_Debug Level = "debug"

	// Source_Node is the node as source of the event
	Source_Node Source = "node"

	// Component_Runner is the derivation runner component
	Component_Runner Component = "runner"
	// Component_Derivation is the derivation pipeline component
	Component_Derivation Component = "derivation"
	// Component_Engine is the execution engine component
	Component_Engine Component = "engine"
	// Component_Pool is the transaction pool component
	Component_Pool Component = "pool"
	// Component_Etherman is the L1 access component
	Component_Etherman Component = "etherman"
)

// Event represents a event that may be investigated
type Event struct {
	Id          uuid.UUID
	ReceivedAt  time.Time
	IPAddress   string
	Source      Source
	Component   Component
	Level       Level
	EventID     EventID
	Description string
	Data        []byte
	Json        interface{}
}
