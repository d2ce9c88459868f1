// Package apperr defines the error kinds surfaced by the journal stores and
// the content ingester. Callers classify errors with the Is* helpers; the
// wrapped cause stays reachable through errors.Unwrap.
package apperr

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError reports malformed caller input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// UnreachableError reports that remote content could not be fetched.
type UnreachableError struct {
	URL string
	err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("unreachable %s: %v", e.URL, e.err)
}

func (e *UnreachableError) Unwrap() error {
	return e.err
}

func Unreachable(url string, err error) error {
	return &UnreachableError{URL: url, err: err}
}

// UnsupportedFormatError reports content the ingester cannot interpret.
type UnsupportedFormatError struct {
	Format string
	err    error
}

func (e *UnsupportedFormatError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("unsupported format %q", e.Format)
	}
	return fmt.Sprintf("unsupported format %q: %v", e.Format, e.err)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return e.err
}

func UnsupportedFormat(format string, err error) error {
	return &UnsupportedFormatError{Format: format, err: err}
}

// PersistenceError reports a failed storage operation. It is never retried here.
type PersistenceError struct {
	Op  string
	err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.err)
}

func (e *PersistenceError) Unwrap() error {
	return e.err
}

func Persistence(op string, err error) error {
	return &PersistenceError{Op: op, err: err}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsUnreachable(err error) bool {
	var target *UnreachableError
	return errors.As(err, &target)
}

func IsUnsupportedFormat(err error) bool {
	var target *UnsupportedFormatError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}
