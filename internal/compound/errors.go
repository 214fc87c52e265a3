package compound

import (
	"errors"
	"fmt"
)

// Reason classifies why a lookup produced no result.
type Reason string

const (
	ReasonTransport Reason = "transport"
	ReasonStatus    Reason = "status"
	ReasonNotFound  Reason = "not_found"
	ReasonMalformed Reason = "malformed"
)

var ErrLookupFailed = errors.New("compound lookup failed")

// LookupError is returned for every failed lookup; it matches ErrLookupFailed with errors.Is.
type LookupError struct {
	Identifier string
	Reason     Reason
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("lookup %q: %s", e.Identifier, e.Reason)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func (e *LookupError) Is(target error) bool {
	return target == ErrLookupFailed
}
