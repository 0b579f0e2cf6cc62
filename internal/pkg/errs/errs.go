// Package errs provides the standardized error types used across the
// application. Each failure category follows the same pattern: a sentinel
// error for classification with errors.Is, a struct carrying details and an
// optional cause, constructor functions, and Unwrap support.
//
// The categories map one-to-one onto the HTTP error taxonomy applied at the
// adapter boundary:
//   - ValueIsRequiredError / ValueIsInvalidError: bad input (400)
//   - NotAuthenticatedError: missing or unresolvable actor identity (401)
//   - AccessForbiddenError: role or status mismatch (403)
//   - ObjectNotFoundError: missing entity (404)
//   - ConflictError: duplicate unique key or precondition failure (409)
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification. Wrap-aware: use errors.Is against
// these, not equality on the struct types.
var (
	ErrValueIsRequired  = errors.New("value is required")
	ErrValueIsInvalid   = errors.New("value is invalid")
	ErrObjectNotFound   = errors.New("object not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAccessForbidden  = errors.New("access forbidden")
	ErrConflict         = errors.New("conflict")
)

// ValueIsRequiredError indicates a required value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required
// value wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return formatWithCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value was present but malformed or outside
// the accepted set.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return formatWithCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates an entity lookup found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing entity.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing entity
// wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return formatWithCause(fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, e.ID), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// NotAuthenticatedError indicates the acting principal could not be resolved.
type NotAuthenticatedError struct {
	Reason string
	Cause  error
}

// NewNotAuthenticatedError creates an error for an unresolvable actor.
func NewNotAuthenticatedError(reason string) *NotAuthenticatedError {
	return &NotAuthenticatedError{Reason: reason}
}

// NewNotAuthenticatedErrorWithCause creates an error for an unresolvable
// actor wrapping an underlying cause.
func NewNotAuthenticatedErrorWithCause(reason string, cause error) *NotAuthenticatedError {
	return &NotAuthenticatedError{Reason: reason, Cause: cause}
}

func (e *NotAuthenticatedError) Error() string {
	return formatWithCause(fmt.Sprintf("%s: %s", ErrNotAuthenticated, e.Reason), e.Cause)
}

func (e *NotAuthenticatedError) Unwrap() error {
	return ErrNotAuthenticated
}

// AccessForbiddenError indicates a resolved principal lacks the role or
// status required for the operation.
type AccessForbiddenError struct {
	Reason string
	Cause  error
}

// NewAccessForbiddenError creates an error for a role or status mismatch.
func NewAccessForbiddenError(reason string) *AccessForbiddenError {
	return &AccessForbiddenError{Reason: reason}
}

// NewAccessForbiddenErrorWithCause creates an error for a role or status
// mismatch wrapping an underlying cause.
func NewAccessForbiddenErrorWithCause(reason string, cause error) *AccessForbiddenError {
	return &AccessForbiddenError{Reason: reason, Cause: cause}
}

func (e *AccessForbiddenError) Error() string {
	return formatWithCause(fmt.Sprintf("%s: %s", ErrAccessForbidden, e.Reason), e.Cause)
}

func (e *AccessForbiddenError) Unwrap() error {
	return ErrAccessForbidden
}

// ConflictError indicates the operation lost to existing state: a duplicate
// unique key, or an order-assignment precondition that no longer holds.
type ConflictError struct {
	Reason string
	Cause  error
}

// NewConflictError creates an error for a state conflict.
func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// NewConflictErrorWithCause creates an error for a state conflict wrapping an
// underlying cause.
func NewConflictErrorWithCause(reason string, cause error) *ConflictError {
	return &ConflictError{Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	return formatWithCause(fmt.Sprintf("%s: %s", ErrConflict, e.Reason), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

func formatWithCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, cause)
}
