package scoring

import (
	"errors"
	"fmt"
)

// MsgEmptyTranscript is the message returned for a blank transcript.
const MsgEmptyTranscript = "Please enter a transcript"

// ValidationError rejects input before any scoring starts.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ComputationError reports an unexpected failure while scoring. No partial
// result accompanies it.
type ComputationError struct {
	Err error
}

func (e *ComputationError) Error() string { return e.Err.Error() }
func (e *ComputationError) Unwrap() error { return e.Err }

// NewComputationError wraps a formatted message as a ComputationError.
func NewComputationError(format string, args ...any) error {
	return &ComputationError{Err: fmt.Errorf(format, args...)}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
