package contact

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/persistence"
	"golang.org/x/sync/errgroup"
)

// Service manages friendships and resolves contacts
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewContactService creates a new contact service
func NewContactService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AddFriend befriends the user registered with friendEmail, writing both directions together
func (s *Service) AddFriend(ctx context.Context, userID, friendEmail string) (*entity.Friend, error) {
	if userID == "" {
		return nil, errs.ErrUnauthenticated
	}
	email, err := entity.NormalizeEmail(friendEmail)
	if err != nil {
		return nil, err
	}

	friend, err := s.uow.GetUserRepository(ctx).GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	rows, err := entity.NewFriendshipPair(userID, friend.ID, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	exists, err := s.uow.GetFriendshipRepository(ctx).Exists(ctx, userID, friend.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrAlreadyFriends
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.uow.GetFriendshipRepository(txCtx).CreatePair(txCtx, rows); err != nil {
		s.rollback(txCtx)
		return nil, err
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Friendship created", map[string]any{
		"user_id":   userID,
		"friend_id": friend.ID,
	})
	return &entity.Friend{
		UserID:       friend.ID,
		Username:     friend.Username,
		Email:        friend.Email,
		FriendsSince: rows[0].CreatedAt,
	}, nil
}

// RemoveFriend deletes both directions of a friendship
func (s *Service) RemoveFriend(ctx context.Context, userID, friendID string) error {
	if userID == "" {
		return errs.ErrUnauthenticated
	}
	if friendID == "" {
		return errs.NewValidationError("friend_id", "is required", nil)
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	deleted, err := s.uow.GetFriendshipRepository(txCtx).DeletePair(txCtx, userID, friendID)
	if err != nil {
		s.rollback(txCtx)
		return err
	}
	if deleted == 0 {
		s.rollback(txCtx)
		return errs.NewEntityNotFoundError("friendship", friendID)
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Friendship removed", map[string]any{
		"user_id":   userID,
		"friend_id": friendID,
		"rows":      deleted,
	})
	return nil
}

// ListFriends returns the friends of userID sorted by name
func (s *Service) ListFriends(ctx context.Context, userID string) ([]entity.Friend, error) {
	if userID == "" {
		return nil, errs.ErrUnauthenticated
	}
	friends, err := s.uow.GetFriendshipRepository(ctx).ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortFriends(friends)
	return friends, nil
}

// ListContacts returns the union of friends and group co-members of userID
func (s *Service) ListContacts(ctx context.Context, userID string) ([]entity.Contact, error) {
	if userID == "" {
		return nil, errs.ErrUnauthenticated
	}

	var (
		friends   []entity.Friend
		coMembers []entity.Member
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		friends, err = s.uow.GetFriendshipRepository(gctx).ListFriends(gctx, userID)
		return err
	})
	g.Go(func() error {
		groupRepo := s.uow.GetGroupRepository(gctx)
		groupIDs, err := groupRepo.ListGroupIDsForUser(gctx, userID)
		if err != nil || len(groupIDs) == 0 {
			return err
		}
		coMembers, err = groupRepo.ListMembersOfGroups(gctx, groupIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to resolve contacts", coreport.ErrorFields(err, map[string]any{
			"user_id": userID,
		}))
		return nil, err
	}

	return Resolve(userID, friends, coMembers), nil
}

func (s *Service) rollback(txCtx context.Context) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Failed to roll back friendship change", coreport.ErrorFields(err, nil))
	}
}
