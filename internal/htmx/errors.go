package htmx

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeaderValue reports a value that cannot be sent as an HTTP
	// header field value.
	ErrInvalidHeaderValue = errors.New("invalid header value")

	// ErrAutoVaryInstalledTwice is the configuration error raised when AutoVary
	// wraps a handler chain that already contains AutoVary.
	ErrAutoVaryInstalledTwice = errors.New("configuration error: htmx.AutoVary is used twice")
)

// HeaderError describes a response header that could not be encoded.
type HeaderError struct {
	Header string
	Err    error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("htmx: %s: %v", e.Header, e.Err)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}
