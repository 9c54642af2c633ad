package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// ErrNoTransaction is returned by Commit and Rollback when ctx carries no transaction
var ErrNoTransaction = errors.New("no transaction found in context")

type txKey struct{}

// UnitOfWork implements the unit of work pattern for database transactions.
// The open transaction travels in the context returned by Begin.
type UnitOfWork struct {
	db         *gorm.DB
	logger     coreport.Logger
	classifier *repository.ErrorClassifier
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:         db,
		logger:     logger,
		classifier: repository.NewErrorClassifier(),
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := txFromContext(ctx); ok {
		return ctx, errors.New("transaction already in progress")
	}

	u.logger.Debug("Beginning database transaction", nil)

	var opts *sql.TxOptions
	if u.db.Dialector.Name() == DriverPostgres {
		opts = &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	}

	tx := u.db.WithContext(ctx).Begin(opts)
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", coreport.ErrorFields(tx.Error, nil))
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return context.WithValue(ctx, txKey{}, tx), nil
}

// Commit commits the transaction carried by ctx. A commit lost to a lock
// conflict or a transient failure is reported as a retryable DatabaseError.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		wrapped := u.classifier.Wrap("committing transaction", err)
		u.logger.Error("Failed to commit transaction", coreport.ErrorFields(wrapped, map[string]any{
			"error_class": string(u.classifier.Classify(err)),
		}))
		return wrapped
	}

	return nil
}

// Rollback rolls back the transaction carried by ctx. Rolling back a finished
// transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if errors.Is(err, sql.ErrTxDone) || errors.Is(err, gorm.ErrInvalidTransaction) {
		u.logger.Warn("Transaction has already been committed or rolled back", coreport.ErrorFields(err, nil))
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", coreport.ErrorFields(err, nil))
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.dbFromContext(ctx), u.logger)
}

// GetFriendshipRepository returns a friendship repository in the current transaction
func (u *UnitOfWork) GetFriendshipRepository(ctx context.Context) persistence.FriendshipRepository {
	return repository.NewFriendshipRepository(u.dbFromContext(ctx), u.logger)
}

// GetGroupRepository returns a group repository in the current transaction
func (u *UnitOfWork) GetGroupRepository(ctx context.Context) persistence.GroupRepository {
	return repository.NewGroupRepository(u.dbFromContext(ctx), u.logger)
}

// GetExpenseRepository returns an expense repository in the current transaction
func (u *UnitOfWork) GetExpenseRepository(ctx context.Context) persistence.ExpenseRepository {
	return repository.NewExpenseRepository(u.dbFromContext(ctx), u.logger)
}

// dbFromContext returns the open transaction, or the pool bound to ctx outside one
func (u *UnitOfWork) dbFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return u.db.WithContext(ctx)
}

func txFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	return tx, ok && tx != nil
}
