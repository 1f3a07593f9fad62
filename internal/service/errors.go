package service

import (
	"errors"
	"strings"

	"github.com/octobees/cladding-site/internal/dto"
)

var (
	// ErrProductNotFound indicates that the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrStoreUnavailable wraps read failures from the record store.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrStoreWriteFailure wraps rejected or failed writes to the record store.
	ErrStoreWriteFailure = errors.New("record store write failed")
)

// ValidationError carries every violated field rule of a submission.
type ValidationError struct {
	Violations []dto.FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
