package relay

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a required input slice is empty.
var ErrEmptyInput = errors.New("empty input")

// ProviderError is the single error kind a gateway may return. It wraps
// whatever the provider SDK raised so that SDK-specific error types
// never cross the gateway boundary.
type ProviderError struct {
	// Provider identifies which gateway failed.
	Provider Provider
	// Op names the failed operation, e.g. "chat" or "embed".
	Op string
	// Cause is the underlying SDK or transport error.
	Cause error
}

// Error returns a formatted message naming the provider and operation.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Provider, e.Op, e.Cause)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError wraps an SDK error at the gateway boundary.
func NewProviderError(provider Provider, op string, cause error) *ProviderError {
	return &ProviderError{Provider: provider, Op: op, Cause: cause}
}

// IsProviderError reports whether err is or wraps a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
