package domain

import "errors"

// MockFetchErrorMessage is the message of the injected read failure.
const MockFetchErrorMessage = "Mock API error while fetching projects."

// FetchError is the only failure kind of the projects read operation.
type FetchError struct {
	Message string
}

func (e *FetchError) Error() string {
	return e.Message
}

// NewFetchError returns a FetchError with the given message.
func NewFetchError(message string) *FetchError {
	return &FetchError{Message: message}
}

// AsFetchError reports whether err wraps a *FetchError and returns it.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IsFetchError reports whether err wraps a *FetchError.
func IsFetchError(err error) bool {
	_, ok := AsFetchError(err)
	return ok
}
