package api

import "fmt"

// FetchError reports a failed call to the remote API.
type FetchError struct {
	Op         string // e.g. "get user", "get repos page 2"
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
