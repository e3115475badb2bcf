package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrParse        = errors.New("parse failed")
	ErrIO           = errors.New("i/o failure")
	ErrUnauthorized = errors.New("unauthorized")
)

// Domain error types implementing HTTPError interface
type (
	// ValidationError indicates invalid input or a refused operation
	// (project root targets, folders holding files, missing project root)
	ValidationError struct {
		Message string
	}

	// ParseError indicates a malformed template document
	ParseError struct {
		Path string
		Err  error
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}
)

func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse template %s: %v", e.Path, e.Err)
}

func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *ParseError) StatusCode() int        { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }

func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *ParseError) Is(target error) bool        { return target == ErrParse }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

func (e *ParseError) Unwrap() error { return e.Err }

// ConflictError represents a rename destination that already exists
type ConflictError struct {
	Message string // Human-readable error message
	Path    string // Path of the existing entry
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// IOError wraps a failed filesystem call with the operation and path.
// It unwraps to the OS error so errors.Is(err, fs.ErrNotExist) still works.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is matches ErrIO, and ErrNotFound when the OS reported a missing path.
func (e *IOError) Is(target error) bool {
	switch target {
	case ErrIO:
		return true
	case ErrNotFound:
		return errors.Is(e.Err, fs.ErrNotExist)
	}
	return false
}

// StatusCode implements the HTTPError interface
func (e *IOError) StatusCode() int {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return http.StatusNotFound
	}
	if errors.Is(e.Err, fs.ErrExist) {
		return http.StatusConflict
	}
	if errors.Is(e.Err, fs.ErrPermission) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// NewIOError builds an IOError; returns nil when err is nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// NewValidationError formats a ValidationError
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
