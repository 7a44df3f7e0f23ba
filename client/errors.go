package client

import (
	"errors"
	"fmt"
)

// ValidationError marks a request that was rejected locally before any
// network call was issued (missing identifiers, empty selection).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// APIError marks a failure reported by the server: a non-2xx status or a
// success:false envelope. Message holds the server's text verbatim when the
// server provided one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
