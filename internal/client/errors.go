package client

import (
	"fmt"
)

// ValidationError lists draft fields that are empty after trimming
type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + joinFields(e.Missing)
}

// TransportError means no well-formed acknowledgment arrived:
// network failure, timeout, non-2xx status or an undecodable body.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectionError means the service answered but did not report success
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return "inquiry rejected by service"
	}
	return "inquiry rejected by service: " + e.Message
}
