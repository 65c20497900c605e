package derivation

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrNilAmount indicates a deposit carrying no amount at all.
	ErrNilAmount = errors.New("deposit amount is nil")

	// ErrNegativeAmount indicates a deposit carrying a negative amount.
	ErrNegativeAmount = errors.New("deposit amount is negative")

	// ErrAmountOverflow indicates a deposit amount that does not fit in 256 bits.
	ErrAmountOverflow = errors.New("deposit amount overflows 256 bits")

	// ErrOversizedData indicates deposit calldata above the protocol limit.
	ErrOversizedData = errors.New("deposit data exceeds size limit")

	// ErrUnknownPayloadVersion indicates a batch payload with an unsupported
	// version byte.
	ErrUnknownPayloadVersion = errors.New("unknown batch payload version")

	// ErrEmptyPayload indicates a batch payload with no content.
	ErrEmptyPayload = errors.New("empty batch payload")

	// ErrUnknownTxType indicates an L2 transaction payload with an
	// unsupported leading type byte.
	ErrUnknownTxType = errors.New("unknown L2 transaction type")
)

// ConversionError reports a deposit or batch transaction that could not be
// decoded into its L2 representation. It is not retryable and aborts the
// derivation of the block that contains the offending transaction.
type ConversionError struct {
	// TxHash is the L1 transaction the offending item originated from.
	TxHash common.Hash
	// Err is the underlying decode failure.
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion of tx %s failed: %v", e.TxHash.String(), e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
