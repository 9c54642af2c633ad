package group

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/usecase"
)

// Service manages groups and their memberships
type Service struct {
	uow          persistence.UnitOfWork
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewGroupService creates a new group service
func NewGroupService(
	uow persistence.UnitOfWork,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateGroup creates a group and enrolls the creator in one transaction
func (s *Service) CreateGroup(ctx context.Context, creatorID, name, description string) (*entity.Group, error) {
	if creatorID == "" {
		return nil, errs.ErrUnauthenticated
	}
	group, err := entity.NewGroup(s.idGenerator.NewID(), name, description, creatorID, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = s.inTransaction(ctx, "create_group", func(txCtx context.Context) error {
		repo := s.uow.GetGroupRepository(txCtx)
		if err := repo.Create(txCtx, group); err != nil {
			return err
		}
		return repo.AddMember(txCtx, group.CreatorMembership())
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Group created", map[string]any{
		"group_id":   group.ID,
		"creator_id": creatorID,
	})
	return group, nil
}

// AddMember enrolls userID in the group. Only the creator may add members.
func (s *Service) AddMember(ctx context.Context, callerID, groupID, userID string) (*entity.Member, error) {
	if userID == "" {
		return nil, errs.NewValidationError("user_id", "is required", nil)
	}

	repo := s.uow.GetGroupRepository(ctx)
	group, err := s.groupForCreator(ctx, callerID, groupID)
	if err != nil {
		return nil, err
	}

	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	member, err := repo.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, errs.ErrAlreadyMember
	}

	membership := entity.Membership{GroupID: group.ID, UserID: user.ID, JoinedAt: s.timeProvider.Now()}
	if err := repo.AddMember(ctx, membership); err != nil {
		return nil, err
	}

	s.logger.Info("Member added to group", map[string]any{
		"group_id": groupID,
		"user_id":  userID,
		"added_by": callerID,
	})
	return &entity.Member{
		GroupID:  group.ID,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		JoinedAt: membership.JoinedAt,
	}, nil
}

// RemoveMember removes userID from the group. The creator may remove any other member,
// members may remove themselves, and the creator's own membership is permanent.
func (s *Service) RemoveMember(ctx context.Context, callerID, groupID, userID string) error {
	if callerID == "" {
		return errs.ErrUnauthenticated
	}

	repo := s.uow.GetGroupRepository(ctx)
	group, err := repo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.IsCreator(userID) {
		return errs.ErrCreatorRemoval
	}
	if !group.IsCreator(callerID) && callerID != userID {
		return errs.ErrNotAuthorized
	}

	if err := repo.RemoveMember(ctx, groupID, userID); err != nil {
		return err
	}

	s.logger.Info("Member removed from group", map[string]any{
		"group_id":   groupID,
		"user_id":    userID,
		"removed_by": callerID,
	})
	return nil
}

// GetGroup returns the group with its creator and members. Members only.
func (s *Service) GetGroup(ctx context.Context, callerID, groupID string) (*entity.GroupDetails, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthenticated
	}

	repo := s.uow.GetGroupRepository(ctx)
	group, err := repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	member, err := repo.IsMember(ctx, groupID, callerID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, errs.ErrNotAuthorized
	}

	members, err := repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	details := &entity.GroupDetails{Group: *group, Members: members}
	for _, m := range members {
		if group.IsCreator(m.UserID) {
			details.Creator = m
			break
		}
	}
	return details, nil
}

// ListUserGroups returns the groups userID belongs to
func (s *Service) ListUserGroups(ctx context.Context, userID string) ([]entity.GroupSummary, error) {
	if userID == "" {
		return nil, errs.ErrUnauthenticated
	}
	return s.uow.GetGroupRepository(ctx).ListUserGroups(ctx, userID)
}

// UpdateGroup changes the name and/or description. Creator only.
func (s *Service) UpdateGroup(ctx context.Context, callerID, groupID string, update usecase.GroupUpdate) (*entity.Group, error) {
	if update.Name == nil && update.Description == nil {
		return nil, errs.ErrNoUpdateData
	}

	group, err := s.groupForCreator(ctx, callerID, groupID)
	if err != nil {
		return nil, err
	}
	if err := group.Apply(update.Name, update.Description, s.timeProvider); err != nil {
		return nil, err
	}
	if err := s.uow.GetGroupRepository(ctx).Update(ctx, group); err != nil {
		return nil, err
	}

	s.logger.Info("Group updated", map[string]any{
		"group_id": groupID,
	})
	return group, nil
}

// DeleteGroup removes the group's expenses with their participants, then its
// memberships, then the group itself. Creator only.
func (s *Service) DeleteGroup(ctx context.Context, callerID, groupID string) error {
	if _, err := s.groupForCreator(ctx, callerID, groupID); err != nil {
		return err
	}

	err := s.inTransaction(ctx, "delete_group", func(txCtx context.Context) error {
		if err := s.uow.GetExpenseRepository(txCtx).DeleteByGroup(txCtx, groupID); err != nil {
			return err
		}
		repo := s.uow.GetGroupRepository(txCtx)
		if err := repo.DeleteMemberships(txCtx, groupID); err != nil {
			return err
		}
		return repo.Delete(txCtx, groupID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Group deleted", map[string]any{
		"group_id":   groupID,
		"deleted_by": callerID,
	})
	return nil
}

// groupForCreator loads a group and requires callerID to be its creator
func (s *Service) groupForCreator(ctx context.Context, callerID, groupID string) (*entity.Group, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthenticated
	}
	group, err := s.uow.GetGroupRepository(ctx).GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsCreator(callerID) {
		return nil, errs.ErrNotAuthorized
	}
	return group, nil
}

// inTransaction runs fn inside a unit of work, rolling back when fn fails
func (s *Service) inTransaction(ctx context.Context, operation string, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back transaction", coreport.ErrorFields(rbErr, map[string]any{
				"operation": operation,
			}))
		}
		return err
	}
	return s.uow.Commit(txCtx)
}
