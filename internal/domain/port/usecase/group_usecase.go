package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// GroupUpdate carries optional group changes
type GroupUpdate struct {
	Name        *string
	Description *string
}

// GroupUseCase manages groups and memberships
type GroupUseCase interface {
	// CreateGroup creates a group and enrolls its creator
	CreateGroup(ctx context.Context, creatorID, name, description string) (*entity.Group, error)

	// AddMember enrolls userID. Only the creator may add members.
	AddMember(ctx context.Context, callerID, groupID, userID string) (*entity.Member, error)

	// RemoveMember removes userID. The creator may remove others and members may leave.
	RemoveMember(ctx context.Context, callerID, groupID, userID string) error

	// GetGroup returns group details to a member
	GetGroup(ctx context.Context, callerID, groupID string) (*entity.GroupDetails, error)

	ListUserGroups(ctx context.Context, userID string) ([]entity.GroupSummary, error)

	// UpdateGroup changes name and/or description. Creator only.
	UpdateGroup(ctx context.Context, callerID, groupID string, update GroupUpdate) (*entity.Group, error)

	// DeleteGroup removes the group with its memberships and expenses. Creator only.
	DeleteGroup(ctx context.Context, callerID, groupID string) error
}
