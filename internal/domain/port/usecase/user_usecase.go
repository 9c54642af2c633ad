package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// RegisterRequest carries the fields of a new account
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// ProfileUpdate carries optional profile changes
type ProfileUpdate struct {
	Username *string
	Email    *string
}

// LoginResult is a signed token for an authenticated user
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// UserUseCase defines account operations
type UserUseCase interface {
	// Register creates an account with a hashed password
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)

	// Login verifies credentials and issues an identity token
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	GetProfile(ctx context.Context, userID string) (*entity.User, error)

	// UpdateProfile changes username and/or email, keeping email unique
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*entity.User, error)
}
