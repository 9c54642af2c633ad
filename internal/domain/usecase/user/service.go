package user

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/usecase"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 8

// Service handles registration, login and profile changes
type Service struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenIssuer
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenIssuer,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates an account. The email must not be registered yet.
func (s *Service) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	username, err := entity.NormalizeUsername(req.Username)
	if err != nil {
		return nil, err
	}
	email, err := entity.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return nil, errs.ErrWeakPassword
	}

	if err := s.ensureEmailAvailable(ctx, email, ""); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", coreport.ErrorFields(err, nil))
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(s.idGenerator.NewID(), username, email, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", coreport.ErrorFields(err, map[string]any{
			"email": email,
		}))
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
	})
	return user, nil
}

// Login verifies the password and issues a token
func (s *Service) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, normalized)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Warn("Rejected login", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to issue token", coreport.ErrorFields(err, map[string]any{
			"user_id": user.ID,
		}))
		return nil, errs.ErrInternalServer
	}

	return &usecase.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// GetProfile returns the caller's account
func (s *Service) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrUnauthenticated
	}
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile changes the username and/or the email
func (s *Service) UpdateProfile(ctx context.Context, userID string, update usecase.ProfileUpdate) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrUnauthenticated
	}
	if update.Username == nil && update.Email == nil {
		return nil, errs.ErrNoUpdateData
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		if err := user.Rename(*update.Username, s.timeProvider); err != nil {
			return nil, err
		}
	}
	if update.Email != nil {
		email, err := entity.NormalizeEmail(*update.Email)
		if err != nil {
			return nil, err
		}
		if email != user.Email {
			if err := s.ensureEmailAvailable(ctx, email, user.ID); err != nil {
				return nil, err
			}
			if err := user.ChangeEmail(email, s.timeProvider); err != nil {
				return nil, err
			}
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Profile updated", map[string]any{
		"user_id": user.ID,
	})
	return user, nil
}

// EnsureUsers registers every account whose email is not taken yet.
// Used to seed development databases.
func (s *Service) EnsureUsers(ctx context.Context, accounts []usecase.RegisterRequest) error {
	for _, account := range accounts {
		_, err := s.Register(ctx, account)
		if errors.Is(err, errs.ErrEmailTaken) {
			s.logger.Info("Seed user already exists", map[string]any{
				"email": account.Email,
			})
			continue
		}
		if err != nil {
			return err
		}
	}

	s.logger.Info("Seed users created or verified", map[string]any{
		"count": len(accounts),
	})
	return nil
}

// ensureEmailAvailable fails with ErrEmailTaken when email belongs to a user other than ownerID
func (s *Service) ensureEmailAvailable(ctx context.Context, email, ownerID string) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	if existing.ID != ownerID {
		return errs.ErrEmailTaken
	}
	return nil
}
