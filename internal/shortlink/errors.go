package shortlink

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrMissingCredential is returned before any request when no API key is configured.
var ErrMissingCredential = errors.WithHint(
	errors.New("short-link provider API key is not configured"),
	"add your API key in settings",
)

// ProviderError is a non-2xx response from the provider.
type ProviderError struct {
	Operation  string // "create link", "fetch account"
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s rejected by provider (HTTP %d): %s", e.Operation, e.StatusCode, e.Message)
}

// NetworkError is a transport-level failure talking to the provider.
type NetworkError struct {
	Operation string
	Cause     error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Cause)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}
