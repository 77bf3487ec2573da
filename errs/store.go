package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Document store errors
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrStoreQuery      = errors.New("store query failed")
	ErrStoreConnection = errors.New("store connection failed")
)

// Admin flow errors
var (
	ErrPasskeyMismatch   = errors.New("incorrect passkey")
	ErrCategoryExists    = errors.New("category already exists")
	ErrCategoryIsBuiltin = errors.New("category is built-in")
	ErrProjectNotFound   = errors.New("project not found")
)

// StoreErr wraps a failed store operation with the collection and
// operation that produced it, so write failures surface as exactly one
// user-facing notification with enough context to retry.
type StoreErr struct {
	Operation  string
	Collection string
	Cause      error
}

func NewStoreError(operation, collection string, cause error) *StoreErr {
	return &StoreErr{
		Operation:  operation,
		Collection: collection,
		Cause:      cause,
	}
}

func (e *StoreErr) Error() string {
	return fmt.Sprintf("store %s on %q failed: %v", e.Operation, e.Collection, e.Cause)
}

func (e *StoreErr) Unwrap() error {
	return e.Cause
}

// ToApiErr converts a store failure into the ApiErr the responder
// understands. Missing documents map to 404, everything else to 500.
func (e *StoreErr) ToApiErr() *ApiErr {
	status := http.StatusInternalServerError
	if errors.Is(e.Cause, ErrNotFound) {
		status = http.StatusNotFound
	}
	return &ApiErr{
		StatusCode: status,
		err:        ErrStoreQuery,
		Details:    fmt.Sprintf("%s %s", e.Operation, e.Collection),
		Cause:      e.Cause,
	}
}
