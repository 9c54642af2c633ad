package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ForeignKeyError   ErrorType = "foreign_key"
	LockError         ErrorType = "lock"
	TransientError    ErrorType = "transient"
)

// Postgres SQLSTATE codes
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// ErrorClassifier provides methods to classify database errors.
// Postgres errors are classified by SQLSTATE, everything else by message.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or "" when it needs no special handling
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsForeignKeyError(err):
		return ForeignKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	}
	return ""
}

// IsRetryable reports whether a new attempt of the failed operation may succeed
func (c *ErrorClassifier) IsRetryable(err error) bool {
	switch c.Classify(err) {
	case LockError, TransientError:
		return true
	}
	return false
}

// Wrap turns a store failure into a domain DatabaseError flagged by its classification
func (c *ErrorClassifier) Wrap(operation string, err error) error {
	if c.IsRetryable(err) {
		return errs.NewRetryableDatabaseError(operation, err)
	}
	return errs.NewDatabaseError(operation, err)
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if code := pgCode(err); code != "" {
		return code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// IsForeignKeyError checks if the error references a missing row
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if code := pgCode(err); code != "" {
		return code == pgForeignKeyViolation
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint")
}

// IsLockError checks if the error is a deadlock, serialization failure or busy database
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	switch pgCode(err) {
	case pgSerializationFailure, pgDeadlockDetected:
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "database is locked")
}

// IsTransientError checks if the connection failed or the request ran out of time
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "broken pipe") ||
		strings.HasSuffix(msg, "EOF")
}

// baseRepository holds what every gorm repository shares
type baseRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

func newBaseRepository(db *gorm.DB, logger coreport.Logger) baseRepository {
	return baseRepository{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

// dbErrorMapping names the domain errors an operation maps store failures to.
// Nil entries fall through to a generic database error.
type dbErrorMapping struct {
	notFound  error
	duplicate error
	reference error
}

// handleDatabaseError standardizes database error handling
func (r *baseRepository) handleDatabaseError(operation string, err error, mapping dbErrorMapping, fields map[string]any) error {
	if mapping.notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Record not found", coreport.Fields(fields, map[string]any{"operation": operation}))
		return mapping.notFound
	}

	switch r.errorClassifier.Classify(err) {
	case DuplicateKeyError:
		if mapping.duplicate != nil {
			r.logger.Warn("Duplicate key on "+operation, fields)
			return mapping.duplicate
		}
	case ForeignKeyError:
		if mapping.reference != nil {
			r.logger.Warn("Missing reference on "+operation, fields)
			return mapping.reference
		}
	}

	wrapped := r.errorClassifier.Wrap(operation, err)
	if errs.IsRetryableError(wrapped) {
		r.logger.Warn(fmt.Sprintf("Retryable database error when %s", operation), coreport.ErrorFields(err, coreport.Fields(fields, map[string]any{
			"error_class": string(r.errorClassifier.Classify(err)),
		})))
		return wrapped
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), coreport.ErrorFields(err, fields))
	return wrapped
}
