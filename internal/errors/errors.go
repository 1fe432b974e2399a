// Package errors provides sentinel errors and custom error types for the repofiles adapter.
// Use errors.Is() and errors.As() to check for specific error kinds.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for remote API failures
var (
	// ErrNotFound indicates the remote path, reference, or object does not exist
	ErrNotFound = errors.New("not found")

	// ErrAuth indicates the request was rejected for missing or invalid credentials
	ErrAuth = errors.New("authentication failed")

	// ErrConflict indicates the remote rejected a write because the supplied sha is stale
	ErrConflict = errors.New("conflict")

	// ErrPayloadTooLarge indicates the submitted content exceeds the API's size limits
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrSchemaValidation indicates an API response did not match its expected shape
	ErrSchemaValidation = errors.New("schema validation failed")
)

// Sentinel errors for local failures in the from-path push
var (
	// ErrEmptyPush indicates a push was attempted with no file content
	ErrEmptyPush = errors.New("no files to push")

	// ErrFileAccess indicates a local file could not be accessed
	ErrFileAccess = errors.New("file not accessible")

	// ErrFileRead indicates a local file could not be read
	ErrFileRead = errors.New("file read failed")
)

// APIError represents a remote API failure classified by kind
type APIError struct {
	Op         string
	StatusCode int
	Kind       error
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %v (status %d): %v", e.Op, e.Kind, e.StatusCode, e.Err)
}

// Is returns true if the target error is this error's kind sentinel
func (e *APIError) Is(target error) bool {
	return target == e.Kind
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError
func NewAPIError(op string, statusCode int, kind, err error) *APIError {
	return &APIError{
		Op:         op,
		StatusCode: statusCode,
		Kind:       kind,
		Err:        err,
	}
}

// SchemaValidationError represents an API response whose shape did not match
// what the adapter expects
type SchemaValidationError struct {
	Resource string
	Field    string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("unexpected %s response: missing %s", e.Resource, e.Field)
}

// Is returns true if the target error is ErrSchemaValidation
func (e *SchemaValidationError) Is(target error) bool {
	return target == ErrSchemaValidation
}

// NewSchemaValidationError creates a new SchemaValidationError
func NewSchemaValidationError(resource, field string) *SchemaValidationError {
	return &SchemaValidationError{Resource: resource, Field: field}
}

// FileAccessError represents a local file that could not be accessed
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

// Is returns true if the target error is ErrFileAccess
func (e *FileAccessError) Is(target error) bool {
	return target == ErrFileAccess
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// NewFileAccessError creates a new FileAccessError
func NewFileAccessError(path string, err error) *FileAccessError {
	return &FileAccessError{Path: path, Err: err}
}

// FileReadError represents a local file that could not be read
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

// Is returns true if the target error is ErrFileRead
func (e *FileReadError) Is(target error) bool {
	return target == ErrFileRead
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// NewFileReadError creates a new FileReadError
func NewFileReadError(path string, err error) *FileReadError {
	return &FileReadError{Path: path, Err: err}
}
