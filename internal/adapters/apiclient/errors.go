package apiclient

import (
	"errors"
	"fmt"
)

// FailureMessage is the only failure text shown to dashboard users.
const FailureMessage = "Network response was not ok"

// ErrFetchFailed matches every *FetchError via errors.Is.
var ErrFetchFailed = errors.New("fetch failed")

var errUnexpectedStatus = errors.New("unexpected status")

// FetchError records why a collection fetch failed. Transport errors,
// non-2xx statuses and undecodable bodies all surface as this one type.
type FetchError struct {
	Resource   string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Resource, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrFetchFailed.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
