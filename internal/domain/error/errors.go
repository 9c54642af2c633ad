package error

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the domain can report to a caller
type Kind string

const (
	KindInvalidInput  Kind = "InvalidInput"
	KindNotAuthorized Kind = "NotAuthorized"
	KindNotFound      Kind = "NotFound"
	KindConflict      Kind = "Conflict"
	KindInternal      Kind = "Internal"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidInput        = 4000
	CodeInvalidAmount       = 4001
	CodeMissingParticipants = 4002
	CodeInvalidScope        = 4003
	CodeMissingGroup        = 4004
	CodeShareMismatch       = 4005
	CodeSelfFriendship      = 4006
	CodeCreatorRemoval      = 4007
	CodeWeakPassword        = 4008
	CodeNoUpdateData        = 4009
	CodeUnauthenticated     = 4010
	CodeInvalidCredentials  = 4011
	CodeNotAuthorized       = 4030
	CodeNotFound            = 4040
	CodeUserNotFound        = 4041
	CodeGroupNotFound       = 4042
	CodeExpenseNotFound     = 4043
	CodeConflict            = 4090
	CodeAlreadyFriends      = 4091
	CodeAlreadyMember       = 4092
	CodeEmailTaken          = 4093

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeDatabase       = 5001
)

// Base error types
var (
	// ErrInvalidInput is returned for missing or malformed fields
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount is returned when an expense amount is missing or not positive
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrMissingParticipants is returned when an expense has no participants
	ErrMissingParticipants = errors.New("at least one participant is required")

	// ErrInvalidScope is returned when the expense type is neither personal nor group
	ErrInvalidScope = errors.New("expense type must be 'personal' or 'group'")

	// ErrMissingGroup is returned when a group expense has no group reference
	ErrMissingGroup = errors.New("group_id is required for group expenses")

	// ErrShareMismatch is returned when participant shares do not add up to the amount
	ErrShareMismatch = errors.New("sum of participant shares must equal the total amount")

	// ErrSelfFriendship is returned when a user tries to befriend themselves
	ErrSelfFriendship = errors.New("cannot add yourself as a friend")

	// ErrCreatorRemoval is returned when removing the creator from their own group
	ErrCreatorRemoval = errors.New("cannot remove group creator, delete the group instead")

	// ErrWeakPassword is returned when a password does not meet the minimum length
	ErrWeakPassword = errors.New("password must be at least 8 characters")

	// ErrNoUpdateData is returned when an update carries no fields
	ErrNoUpdateData = errors.New("no data provided for update")

	// ErrUnauthenticated is returned when no caller identity is available
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthorized is returned when the caller lacks permission for the resource
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrGroupNotFound is returned when the requested group doesn't exist
	ErrGroupNotFound = errors.New("group not found")

	// ErrExpenseNotFound is returned when the requested expense doesn't exist
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrConflict is returned when a write collides with existing state
	ErrConflict = errors.New("resource already exists")

	// ErrAlreadyFriends is returned for a duplicate friendship
	ErrAlreadyFriends = errors.New("users are already friends")

	// ErrAlreadyMember is returned for a duplicate group membership
	ErrAlreadyMember = errors.New("user is already a member of this group")

	// ErrEmailTaken is returned when an email is registered to another user
	ErrEmailTaken = errors.New("email is already registered")

	// ErrDatabase is returned when the store fails
	ErrDatabase = errors.New("database error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

var kindTable = []struct {
	err  error
	kind Kind
	code int
}{
	{ErrInvalidAmount, KindInvalidInput, CodeInvalidAmount},
	{ErrMissingParticipants, KindInvalidInput, CodeMissingParticipants},
	{ErrInvalidScope, KindInvalidInput, CodeInvalidScope},
	{ErrMissingGroup, KindInvalidInput, CodeMissingGroup},
	{ErrShareMismatch, KindInvalidInput, CodeShareMismatch},
	{ErrSelfFriendship, KindInvalidInput, CodeSelfFriendship},
	{ErrCreatorRemoval, KindInvalidInput, CodeCreatorRemoval},
	{ErrWeakPassword, KindInvalidInput, CodeWeakPassword},
	{ErrNoUpdateData, KindInvalidInput, CodeNoUpdateData},
	{ErrInvalidInput, KindInvalidInput, CodeInvalidInput},
	{ErrUnauthenticated, KindNotAuthorized, CodeUnauthenticated},
	{ErrInvalidCredentials, KindNotAuthorized, CodeInvalidCredentials},
	{ErrNotAuthorized, KindNotAuthorized, CodeNotAuthorized},
	{ErrUserNotFound, KindNotFound, CodeUserNotFound},
	{ErrGroupNotFound, KindNotFound, CodeGroupNotFound},
	{ErrExpenseNotFound, KindNotFound, CodeExpenseNotFound},
	{ErrNotFound, KindNotFound, CodeNotFound},
	{ErrAlreadyFriends, KindConflict, CodeAlreadyFriends},
	{ErrAlreadyMember, KindConflict, CodeAlreadyMember},
	{ErrEmailTaken, KindConflict, CodeEmailTaken},
	{ErrConflict, KindConflict, CodeConflict},
	{ErrDatabase, KindInternal, CodeDatabase},
}

// KindOf returns the taxonomy kind of err. Unknown errors are Internal.
func KindOf(err error) Kind {
	for _, entry := range kindTable {
		if errors.Is(err, entry.err) {
			return entry.kind
		}
	}
	return KindInternal
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	for _, entry := range kindTable {
		if errors.Is(err, entry.err) {
			return entry.code
		}
	}
	return CodeInternalServer
}

// PublicMessage returns the message that may be shown to a caller.
// Internal failures are collapsed into a generic message.
func PublicMessage(err error) string {
	if KindOf(err) == KindInternal {
		return ErrInternalServer.Error()
	}
	return err.Error()
}

// ValidationError describes a rejected input field
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Reason)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError wraps a sentinel with the offending field and a reason.
// A nil sentinel defaults to ErrInvalidInput.
func NewValidationError(field, reason string, err error) error {
	if err == nil {
		err = ErrInvalidInput
	}
	return &ValidationError{Field: field, Reason: reason, Err: err}
}

// EntityNotFoundError provides detailed information about a missing entity
type EntityNotFoundError struct {
	Entity string
	ID     string
	Err    error
}

// Error implements the error interface
func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// Unwrap returns the specific not-found sentinel
func (e *EntityNotFoundError) Unwrap() error {
	return e.Err
}

// Is reports generic not-found matches as well as the specific sentinel
func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LogFields returns a map of fields for structured logging
func (e *EntityNotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "not_found",
		"entity":     e.Entity,
		"entity_id":  e.ID,
		"error_code": ErrorCode(e),
	}
}

// NewEntityNotFoundError creates a not-found error for the given entity type
func NewEntityNotFoundError(entity, id string) error {
	var sentinel error
	switch entity {
	case "user":
		sentinel = ErrUserNotFound
	case "group":
		sentinel = ErrGroupNotFound
	case "expense":
		sentinel = ErrExpenseNotFound
	default:
		sentinel = ErrNotFound
	}
	return &EntityNotFoundError{Entity: entity, ID: id, Err: sentinel}
}

// DatabaseError represents a failure of the underlying store.
// Retryable marks lock conflicts and transient failures that may succeed on a new attempt.
type DatabaseError struct {
	Operation string
	Err       error
	Retryable bool
}

// Error implements the error interface for DatabaseError
func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// Is matches ErrDatabase
func (e *DatabaseError) Is(target error) bool {
	return target == ErrDatabase
}

// LogFields returns a map of fields for structured logging
func (e *DatabaseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "database_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodeDatabase,
		"retryable":  e.Retryable,
	}
}

// NewDatabaseError wraps a store failure
func NewDatabaseError(operation string, err error) error {
	return &DatabaseError{Operation: operation, Err: err}
}

// NewRetryableDatabaseError wraps a store failure that may succeed when retried
func NewRetryableDatabaseError(operation string, err error) error {
	return &DatabaseError{Operation: operation, Err: err, Retryable: true}
}

// IsRetryableError reports whether err is a store failure worth retrying
func IsRetryableError(err error) bool {
	var dbErr *DatabaseError
	return errors.As(err, &dbErr) && dbErr.Retryable
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsConflictError checks if the error is a duplicate/conflict error
func IsConflictError(err error) bool {
	return KindOf(err) == KindConflict
}

// IsNotAuthorizedError checks if the error is a permission error
func IsNotAuthorizedError(err error) bool {
	return KindOf(err) == KindNotAuthorized
}

// IsValidationError checks if the error is caused by bad input
func IsValidationError(err error) bool {
	return KindOf(err) == KindInvalidInput
}
