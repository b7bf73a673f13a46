package ollama

import (
	"errors"
	"fmt"
)

// Kind classifies a model call failure.
type Kind int

const (
	// KindTimeout marks a call that exceeded the per-call timeout. The
	// only retryable kind.
	KindTimeout Kind = iota
	// KindConnection marks an unreachable endpoint. Not retried.
	KindConnection
	// KindHTTP marks a non-2xx response. Not retried; Status and Body
	// carry the diagnostics.
	KindHTTP
	// KindMalformed marks a response without the expected message content.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	case KindHTTP:
		return "http"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is the failure surface of the model client.
type Error struct {
	Kind   Kind
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTimeout:
		return fmt.Sprintf("model call timed out: %v", e.Err)
	case KindConnection:
		return fmt.Sprintf("cannot reach model endpoint: %v", e.Err)
	case KindHTTP:
		return fmt.Sprintf("model endpoint returned HTTP %d: %s", e.Status, e.Body)
	case KindMalformed:
		return fmt.Sprintf("malformed model response: %v", e.Err)
	default:
		return fmt.Sprintf("model call failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure kind from an error chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
