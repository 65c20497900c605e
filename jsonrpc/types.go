package jsonrpc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/virjilakrum/igloo/encoding"
	"github.com/virjilakrum/igloo/hex"
)

const jsonRPCVersion = "2.0"

// Request is a jsonrpc request
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a jsonrpc success response
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

// ErrorObject is a jsonrpc error
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	// errCodeParse invalid JSON was received by the server
	errCodeParse = -32700
	// errCodeInvalidRequest the JSON sent is not a valid request object
	errCodeInvalidRequest = -32600
	// errCodeNotFound the method does not exist
	errCodeNotFound = -32601
	// errCodeInvalidParams invalid method parameters
	errCodeInvalidParams = -32602
	// errCodeInternal internal JSON-RPC error
	errCodeInternal = -32603
)

func newResponse(id interface{}, result interface{}) Response {
	raw, err := json.Marshal(result)
	if err != nil {
		return newErrorResponse(id, errCodeInternal, err.Error())
	}
	return Response{JSONRPC: jsonRPCVersion, ID: id, Result: raw}
}

func newErrorResponse(id interface{}, code int, message string) Response {
	return Response{JSONRPC: jsonRPCVersion, ID: id, Error: &ErrorObject{Code: code, Message: message}}
}

// ArgUint64 is a hex encoded uint64 accepted both with and without quotes.
type ArgUint64 uint64

// UnmarshalJSON implements json.Unmarshaler.
func (a *ArgUint64) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), "\"")
	v, err := encoding.DecodeUint64orHex(&str)
	if err != nil {
		return err
	}
	*a = ArgUint64(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a ArgUint64) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", hex.EncodeUint64(uint64(a)))), nil
}
