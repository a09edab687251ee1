package domain

import (
	"errors"
	"fmt"
)

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ErrMalformedDocument is returned when a document's bytes do not decode to a
// JSON object. Nothing is persisted for such a call.
var ErrMalformedDocument = errors.New("document is not a json object")

// ErrUnknownCategory is returned for an unrecognized document category.
var ErrUnknownCategory = errors.New("unknown document category")
