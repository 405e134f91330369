package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call.
type Kind int

const (
	// KindNetwork covers transport-level failures: the request never
	// produced an HTTP response.
	KindNetwork Kind = iota + 1
	// KindStatus covers responses outside the 2xx range.
	KindStatus
	// KindPayload covers 2xx responses whose body did not have the
	// expected shape.
	KindPayload
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindPayload:
		return "payload"
	default:
		return "unknown"
	}
}

// Error is a failed API call, carrying the attempted operation's name so
// callers can decide recovery per operation.
type Error struct {
	Op     string
	Kind   Kind
	Status int
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("%s: server returned %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s failure: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error chain, or 0 when the error
// did not originate in this package.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}
