package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	baseRepository
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{baseRepository: newBaseRepository(db, logger)}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func userEntityToModel(u *entity.User) *model.User {
	return &model.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, dbErrorMapping{
			notFound: errs.NewEntityNotFoundError("user", id),
		}, map[string]any{"user_id": id})
	}
	return userModelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting user by email", err, dbErrorMapping{
			notFound: errs.NewEntityNotFoundError("user", email),
		}, nil)
	}
	return userModelToEntity(&userModel), nil
}

// GetByIDs retrieves every existing user among ids
func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var userModels []model.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&userModels).Error; err != nil {
		return nil, r.handleDatabaseError("getting users", err, dbErrorMapping{}, map[string]any{
			"user_count": len(ids),
		})
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userModelToEntity(&userModels[i]))
	}
	return users, nil
}

// Create stores a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(userEntityToModel(user)).Error; err != nil {
		return r.handleDatabaseError("creating user", err, dbErrorMapping{
			duplicate: errs.ErrEmailTaken,
		}, map[string]any{"user_id": user.ID})
	}

	r.logger.Debug("User created", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// Update saves username, email and updated_at
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":   user.Username,
			"email":      user.Email,
			"updated_at": user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, dbErrorMapping{
			duplicate: errs.ErrEmailTaken,
		}, map[string]any{"user_id": user.ID})
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("user", user.ID)
	}
	return nil
}
