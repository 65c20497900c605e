// Package executorclient is the gRPC adapter to the external SVM executor
// service. Messages travel as JSON over gRPC through a registered codec, so
// the wire surface stays a pair of plain structs.
package executorclient

// ProcessPayloadRequest asks the executor to apply one payload attribute.
type ProcessPayloadRequest struct {
	EpochNumber  uint64   `json:"epochNumber"`
	EpochHash    string   `json:"epochHash"`
	Source       string   `json:"source"`
	Transactions [][]byte `json:"transactions"`
}

// ProcessPayloadResponse reports the outcome of a payload application. A
// non-empty Error means the executor rejected the payload as an invalid
// state transition.
type ProcessPayloadResponse struct {
	NewStateRoot string `json:"newStateRoot"`
	Error        string `json:"error,omitempty"`
}

// GetLastEpochRequest asks the executor for its last applied epoch.
type GetLastEpochRequest struct{}

// GetLastEpochResponse carries the executor's last applied epoch.
type GetLastEpochResponse struct {
	EpochNumber uint64 `json:"epochNumber"`
	EpochHash   string `json:"epochHash"`
}
