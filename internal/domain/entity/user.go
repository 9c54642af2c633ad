package entity

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
)

// Username length bounds
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

// User represents a registered account
type User struct {
	ID           string    // Unique identifier for the user
	Username     string    // Display name
	Email        string    // Unique, stored lower-cased
	PasswordHash string    // bcrypt hash, never exposed
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser creates a new user after validating the username and email
func NewUser(id, username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == "" {
		return nil, errs.NewValidationError("id", "must not be empty", nil)
	}

	username, err := NormalizeUsername(username)
	if err != nil {
		return nil, err
	}
	email, err = NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NormalizeUsername trims and validates a display name
func NormalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	length := utf8.RuneCountInString(username)
	if length < MinUsernameLength || length > MaxUsernameLength {
		return "", errs.NewValidationError("username", "must be between 3 and 50 characters", nil)
	}
	return username, nil
}

// NormalizeEmail trims, lower-cases and validates an email address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errs.NewValidationError("email", "is required", nil)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errs.NewValidationError("email", "is not a valid address", nil)
	}
	return email, nil
}

// Rename changes the display name
func (u *User) Rename(username string, timeProvider coreport.TimeProvider) error {
	normalized, err := NormalizeUsername(username)
	if err != nil {
		return err
	}
	u.Username = normalized
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// ChangeEmail changes the email address. Uniqueness is checked by the caller against the store.
func (u *User) ChangeEmail(email string, timeProvider coreport.TimeProvider) error {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	u.Email = normalized
	u.UpdatedAt = timeProvider.Now()
	return nil
}
