// Package engine abstracts the L2 execution machinery the derivation runner
// drives. The runner only needs two capabilities: submit one payload
// attribute and report the last applied epoch.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/virjilakrum/igloo/derivation"
)

// Engine consumes payload attributes to extend or validate the L2 chain.
// Submissions must be idempotent: re-submitting an already applied attribute
// succeeds without side effects, which is what makes the runner's
// retry-without-cursor-advance safe.
type Engine interface {
	SubmitPayload(ctx context.Context, attr *derivation.PayloadAttribute) error
	LastAppliedEpoch(ctx context.Context) (derivation.Epoch, error)
}

// ErrorCode classifies a submission failure.
type ErrorCode int

const (
	// ErrorCodeTransient marks a failure worth retrying, such as an
	// unreachable executor.
	ErrorCodeTransient ErrorCode = iota
	// ErrorCodeInvalidOrdering marks an attribute that violates the epoch or
	// instant-before-DA submission order. Permanent.
	ErrorCodeInvalidOrdering
	// ErrorCodeRejected marks an attribute the executor refused as an
	// invalid state transition. Permanent.
	ErrorCodeRejected
)

// EngineError is a typed submission failure.
type EngineError struct {
	Code ErrorCode
	Err  error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine: %v", e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Permanent reports whether retrying the same submission can ever succeed.
func (e *EngineError) Permanent() bool {
	return e.Code != ErrorCodeTransient
}

// IsPermanent reports whether err is a permanent engine failure.
func IsPermanent(err error) bool {
	var engErr *EngineError
	return errors.As(err, &engErr) && engErr.Permanent()
}

func newTransientError(err error) *EngineError {
	return &EngineError{Code: ErrorCodeTransient, Err: err}
}

func newOrderingError(format string, args ...interface{}) *EngineError {
	return &EngineError{Code: ErrorCodeInvalidOrdering, Err: fmt.Errorf(format, args...)}
}
