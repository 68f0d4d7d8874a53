package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is implemented by errors that map to a specific HTTP
// status code at the handler boundary.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("already exists")
)

// NotFoundError reports a missing project by id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project %s not found", e.ID)
}

func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }

// Is allows errors.Is() to match against ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Is allows errors.Is() to match against ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
