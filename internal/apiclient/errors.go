package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus marks a non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMalformedRecord marks a payload missing required fields.
	ErrMalformedRecord = errors.New("malformed record")
)

// FetchError is the single failure kind of the client. It covers transport
// failures, non-2xx responses and payloads that cannot be decoded into users.
type FetchError struct {
	Op         string // listUsers | createUser | updateUser | deleteUser
	Method     string
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s %s: HTTP %d: %v", e.Op, e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchError reports whether err is, or wraps, a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
