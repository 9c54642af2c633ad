package persistence

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// GroupRepository stores groups and their memberships
type GroupRepository interface {
	// GetByID retrieves a group by ID
	//
	// Possible errors:
	// - ErrGroupNotFound: If the group doesn't exist
	// - ErrDatabase: If the query fails
	GetByID(ctx context.Context, id string) (*entity.Group, error)

	Create(ctx context.Context, group *entity.Group) error

	// Update saves name, description and updated_at
	//
	// Possible errors:
	// - ErrGroupNotFound: If the group doesn't exist
	Update(ctx context.Context, group *entity.Group) error

	// Delete removes the group row only. Memberships and expenses must be removed first.
	Delete(ctx context.Context, id string) error

	// AddMember enrolls a user
	//
	// Possible errors:
	// - ErrAlreadyMember: If the membership already exists
	// - ErrDatabase: If the insert fails
	AddMember(ctx context.Context, membership entity.Membership) error

	// RemoveMember deletes one membership
	//
	// Possible errors:
	// - ErrNotFound: If the user is not a member
	RemoveMember(ctx context.Context, groupID, userID string) error

	// DeleteMemberships removes every membership of a group
	DeleteMemberships(ctx context.Context, groupID string) error

	IsMember(ctx context.Context, groupID, userID string) (bool, error)

	// ListMembers returns the members of a group ordered by join time
	ListMembers(ctx context.Context, groupID string) ([]entity.Member, error)

	// ListUserGroups returns the groups userID belongs to, ordered by name
	ListUserGroups(ctx context.Context, userID string) ([]entity.GroupSummary, error)

	// ListGroupIDsForUser returns the ids of every group userID belongs to
	ListGroupIDsForUser(ctx context.Context, userID string) ([]string, error)

	// ListMembersOfGroups returns the members of all given groups, one row per membership
	ListMembersOfGroups(ctx context.Context, groupIDs []string) ([]entity.Member, error)
}
