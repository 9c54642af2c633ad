package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/dto"
)

func alice() *entity.User {
	return &entity.User{
		ID:           callerUser,
		Username:     "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	}
}

func TestRegisterHandler(t *testing.T) {
	t.Run("Created without exposing the hash", func(t *testing.T) {
		// Arrange
		a := newAPI(t)
		a.users.EXPECT().Register(mock.Anything, usecase.RegisterRequest{
			Username: "Alice",
			Email:    "alice@example.com",
			Password: "s3cret-pass",
		}).Return(alice(), nil).Once()

		// Act
		rec := a.doWithToken(t, http.MethodPost, "/api/users", map[string]string{
			"username": "Alice",
			"email":    "alice@example.com",
			"password": "s3cret-pass",
		}, "")

		// Assert
		assertStatus(t, http.StatusCreated, rec)
		body := decode[dto.UserEnvelope](t, rec)
		assert.Equal(t, callerUser, body.User.UserID)
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("Missing field", func(t *testing.T) {
		a := newAPI(t)

		rec := a.doWithToken(t, http.MethodPost, "/api/users", map[string]string{
			"username": "Alice",
			"email":    "alice@example.com",
		}, "")

		assertStatus(t, http.StatusBadRequest, rec)
		assert.Equal(t, errs.CodeInvalidInput, decodeError(t, rec).Code)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		a := newAPI(t)

		rec := a.doWithToken(t, http.MethodPost, "/api/users", `{"username":`, "")

		assertStatus(t, http.StatusBadRequest, rec)
	})

	t.Run("Email taken", func(t *testing.T) {
		a := newAPI(t)
		a.users.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errs.ErrEmailTaken).Once()

		rec := a.doWithToken(t, http.MethodPost, "/api/users", map[string]string{
			"username": "Alice",
			"email":    "alice@example.com",
			"password": "s3cret-pass",
		}, "")

		assertStatus(t, http.StatusConflict, rec)
		body := decodeError(t, rec)
		assert.Equal(t, errs.CodeEmailTaken, body.Code)
		assert.Equal(t, string(errs.KindConflict), body.Kind)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("Returns a token", func(t *testing.T) {
		// Arrange
		a := newAPI(t)
		expiresAt := fixedTime.Add(24 * time.Hour)
		a.users.EXPECT().Login(mock.Anything, "alice@example.com", "s3cret-pass").Return(&usecase.LoginResult{
			Token:     "signed.jwt.token",
			ExpiresAt: expiresAt,
			User:      alice(),
		}, nil).Once()

		// Act
		rec := a.doWithToken(t, http.MethodPost, "/api/users/login", map[string]string{
			"email":    "alice@example.com",
			"password": "s3cret-pass",
		}, "")

		// Assert
		assertStatus(t, http.StatusOK, rec)
		body := decode[dto.LoginResponse](t, rec)
		assert.Equal(t, "signed.jwt.token", body.Token)
		assert.True(t, expiresAt.Equal(body.ExpiresAt))
		assert.Equal(t, "Alice", body.User.Username)
	})

	t.Run("Wrong password is 401", func(t *testing.T) {
		a := newAPI(t)
		a.users.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").Return(nil, errs.ErrInvalidCredentials).Once()

		rec := a.doWithToken(t, http.MethodPost, "/api/users/login", map[string]string{
			"email":    "alice@example.com",
			"password": "wrong",
		}, "")

		assertStatus(t, http.StatusUnauthorized, rec)
		assert.Equal(t, errs.CodeInvalidCredentials, decodeError(t, rec).Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"Missing header", ""},
		{"Wrong scheme", "Basic dXNlcjpwYXNz"},
		{"Empty bearer", "Bearer "},
		{"Invalid token", "Bearer forged-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			a := newAPI(t)
			req := httptestRequest(http.MethodGet, "/api/users/me")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			// Act
			rec := serve(a, req)

			// Assert
			assertStatus(t, http.StatusUnauthorized, rec)
			assert.Equal(t, errs.CodeUnauthenticated, decodeError(t, rec).Code)
		})
	}
}

func TestProfileHandlers(t *testing.T) {
	t.Run("Get profile of the caller", func(t *testing.T) {
		a := newAPI(t)
		a.users.EXPECT().GetProfile(mock.Anything, callerUser).Return(alice(), nil).Once()

		rec := a.do(t, http.MethodGet, "/api/users/me", nil)

		assertStatus(t, http.StatusOK, rec)
		assert.Equal(t, "alice@example.com", decode[dto.UserResponse](t, rec).Email)
	})

	t.Run("Update passes only the provided fields", func(t *testing.T) {
		// Arrange
		a := newAPI(t)
		updated := alice()
		updated.Username = "Ally"
		a.users.EXPECT().UpdateProfile(mock.Anything, callerUser, mock.MatchedBy(func(u usecase.ProfileUpdate) bool {
			return u.Username != nil && *u.Username == "Ally" && u.Email == nil
		})).Return(updated, nil).Once()

		// Act
		rec := a.do(t, http.MethodPut, "/api/users/me", map[string]string{"username": "Ally"})

		// Assert
		assertStatus(t, http.StatusOK, rec)
		assert.Equal(t, "Ally", decode[dto.UserEnvelope](t, rec).User.Username)
	})

	t.Run("Empty update is rejected", func(t *testing.T) {
		a := newAPI(t)
		a.users.EXPECT().UpdateProfile(mock.Anything, callerUser, usecase.ProfileUpdate{}).Return(nil, errs.ErrNoUpdateData).Once()

		rec := a.do(t, http.MethodPut, "/api/users/me", map[string]string{})

		assertStatus(t, http.StatusBadRequest, rec)
		assert.Equal(t, errs.CodeNoUpdateData, decodeError(t, rec).Code)
	})
}
