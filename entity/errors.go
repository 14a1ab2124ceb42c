package entity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain error classes. Handlers render every one of them as a 400 body;
// the class only decides the message and lets tests assert the cause.
var (
	// ErrNotFound: a referenced recipe, user or shopping list does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict: attempted duplicate membership (favorite, shopping-list
	// entry, subscription edge) or duplicate unique field.
	ErrConflict = errors.New("already exists")

	// ErrAbsentEdge: attempted removal of a membership edge that is not there.
	// Removal is deliberately not idempotent.
	ErrAbsentEdge = errors.New("not present")

	// ErrSelfReference: subscription target equals the subscriber.
	ErrSelfReference = errors.New("self reference")
)

// ValidationError carries field-keyed messages for malformed input.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
