package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/model"
)

// FriendshipRepository implements FriendshipRepository interface using GORM
type FriendshipRepository struct {
	baseRepository
}

// NewFriendshipRepository creates a new FriendshipRepository instance
func NewFriendshipRepository(db *gorm.DB, logger coreport.Logger) *FriendshipRepository {
	return &FriendshipRepository{baseRepository: newBaseRepository(db, logger)}
}

// CreatePair inserts both directed rows of a friendship
func (r *FriendshipRepository) CreatePair(ctx context.Context, rows []entity.Friendship) error {
	models := make([]model.Friendship, 0, len(rows))
	for _, row := range rows {
		models = append(models, model.Friendship{
			UserID:    row.UserID,
			FriendID:  row.FriendID,
			CreatedAt: row.CreatedAt,
		})
	}

	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return r.handleDatabaseError("creating friendship", err, dbErrorMapping{
			duplicate: errs.ErrAlreadyFriends,
			reference: errs.ErrUserNotFound,
		}, map[string]any{"row_count": len(rows)})
	}
	return nil
}

// Exists reports whether userID has friendID as a friend
func (r *FriendshipRepository) Exists(ctx context.Context, userID, friendID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking friendship", err, dbErrorMapping{}, map[string]any{
			"user_id":   userID,
			"friend_id": friendID,
		})
	}
	return count > 0, nil
}

// DeletePair removes both directed rows and returns how many were deleted
func (r *FriendshipRepository) DeletePair(ctx context.Context, userID, friendID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", userID, friendID, friendID, userID).
		Delete(&model.Friendship{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting friendship", result.Error, dbErrorMapping{}, map[string]any{
			"user_id":   userID,
			"friend_id": friendID,
		})
	}
	return result.RowsAffected, nil
}

type friendRow struct {
	UserID       string
	Username     string
	Email        string
	FriendsSince time.Time
}

// ListFriends returns the friends of userID
func (r *FriendshipRepository) ListFriends(ctx context.Context, userID string) ([]entity.Friend, error) {
	var rows []friendRow
	err := r.db.WithContext(ctx).
		Table("friendships AS f").
		Select("u.id AS user_id, u.username, u.email, f.created_at AS friends_since").
		Joins("JOIN users AS u ON u.id = f.friend_id").
		Where("f.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing friends", err, dbErrorMapping{}, map[string]any{
			"user_id": userID,
		})
	}

	friends := make([]entity.Friend, 0, len(rows))
	for _, row := range rows {
		friends = append(friends, entity.Friend{
			UserID:       row.UserID,
			Username:     row.Username,
			Email:        row.Email,
			FriendsSince: row.FriendsSince,
		})
	}
	return friends, nil
}
