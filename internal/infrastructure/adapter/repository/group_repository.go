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

// GroupRepository implements GroupRepository interface using GORM
type GroupRepository struct {
	baseRepository
}

// NewGroupRepository creates a new GroupRepository instance
func NewGroupRepository(db *gorm.DB, logger coreport.Logger) *GroupRepository {
	return &GroupRepository{baseRepository: newBaseRepository(db, logger)}
}

func groupModelToEntity(m *model.Group) *entity.Group {
	return &entity.Group{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatorID:   m.CreatorID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	var groupModel model.Group
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting group", err, dbErrorMapping{
			notFound: errs.NewEntityNotFoundError("group", id),
		}, map[string]any{"group_id": id})
	}
	return groupModelToEntity(&groupModel), nil
}

// Create stores a new group
func (r *GroupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupModel := model.Group{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatorID:   group.CreatorID,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&groupModel).Error; err != nil {
		return r.handleDatabaseError("creating group", err, dbErrorMapping{
			duplicate: errs.ErrConflict,
		}, map[string]any{"group_id": group.ID})
	}
	return nil
}

// Update saves name, description and updated_at
func (r *GroupRepository) Update(ctx context.Context, group *entity.Group) error {
	result := r.db.WithContext(ctx).Model(&model.Group{}).
		Where("id = ?", group.ID).
		Updates(map[string]any{
			"name":        group.Name,
			"description": group.Description,
			"updated_at":  group.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating group", result.Error, dbErrorMapping{}, map[string]any{
			"group_id": group.ID,
		})
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("group", group.ID)
	}
	return nil
}

// Delete removes the group row
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Group{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting group", result.Error, dbErrorMapping{}, map[string]any{
			"group_id": id,
		})
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("group", id)
	}
	return nil
}

// AddMember stores a membership
func (r *GroupRepository) AddMember(ctx context.Context, membership entity.Membership) error {
	membershipModel := model.GroupMembership{
		GroupID:  membership.GroupID,
		UserID:   membership.UserID,
		JoinedAt: membership.JoinedAt,
	}
	if err := r.db.WithContext(ctx).Create(&membershipModel).Error; err != nil {
		return r.handleDatabaseError("adding group member", err, dbErrorMapping{
			duplicate: errs.ErrAlreadyMember,
			reference: errs.ErrNotFound,
		}, map[string]any{
			"group_id": membership.GroupID,
			"user_id":  membership.UserID,
		})
	}
	return nil
}

// RemoveMember deletes a membership
func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.GroupMembership{})
	if result.Error != nil {
		return r.handleDatabaseError("removing group member", result.Error, dbErrorMapping{}, map[string]any{
			"group_id": groupID,
			"user_id":  userID,
		})
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("membership", userID)
	}
	return nil
}

// DeleteMemberships removes every membership of a group
func (r *GroupRepository) DeleteMemberships(ctx context.Context, groupID string) error {
	if err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&model.GroupMembership{}).Error; err != nil {
		return r.handleDatabaseError("deleting group memberships", err, dbErrorMapping{}, map[string]any{
			"group_id": groupID,
		})
	}
	return nil
}

// IsMember reports whether userID belongs to groupID
func (r *GroupRepository) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.GroupMembership{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking group membership", err, dbErrorMapping{}, map[string]any{
			"group_id": groupID,
			"user_id":  userID,
		})
	}
	return count > 0, nil
}

type memberRow struct {
	GroupID  string
	UserID   string
	Username string
	Email    string
	JoinedAt time.Time
}

func (r *GroupRepository) membersQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("group_memberships AS m").
		Select("m.group_id, m.user_id, u.username, u.email, m.joined_at").
		Joins("JOIN users AS u ON u.id = m.user_id")
}

func membersFromRows(rows []memberRow) []entity.Member {
	members := make([]entity.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, entity.Member{
			GroupID:  row.GroupID,
			UserID:   row.UserID,
			Username: row.Username,
			Email:    row.Email,
			JoinedAt: row.JoinedAt,
		})
	}
	return members
}

// ListMembers returns the members of a group ordered by join time
func (r *GroupRepository) ListMembers(ctx context.Context, groupID string) ([]entity.Member, error) {
	var rows []memberRow
	err := r.membersQuery(ctx).
		Where("m.group_id = ?", groupID).
		Order("m.joined_at, m.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing group members", err, dbErrorMapping{}, map[string]any{
			"group_id": groupID,
		})
	}
	return membersFromRows(rows), nil
}

// ListMembersOfGroups returns the members of every group in groupIDs
func (r *GroupRepository) ListMembersOfGroups(ctx context.Context, groupIDs []string) ([]entity.Member, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}

	var rows []memberRow
	err := r.membersQuery(ctx).
		Where("m.group_id IN ?", groupIDs).
		Order("m.group_id, m.joined_at, m.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing members of groups", err, dbErrorMapping{}, map[string]any{
			"group_count": len(groupIDs),
		})
	}
	return membersFromRows(rows), nil
}

type userGroupRow struct {
	model.Group
	JoinedAt time.Time
}

// ListUserGroups returns the groups userID belongs to, ordered by name
func (r *GroupRepository) ListUserGroups(ctx context.Context, userID string) ([]entity.GroupSummary, error) {
	var rows []userGroupRow
	err := r.db.WithContext(ctx).
		Table("expense_groups AS g").
		Select("g.id, g.name, g.description, g.creator_id, g.created_at, g.updated_at, m.joined_at").
		Joins("JOIN group_memberships AS m ON m.group_id = g.id").
		Where("m.user_id = ?", userID).
		Order("g.name, g.id").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing user groups", err, dbErrorMapping{}, map[string]any{
			"user_id": userID,
		})
	}

	summaries := make([]entity.GroupSummary, 0, len(rows))
	for i := range rows {
		group := groupModelToEntity(&rows[i].Group)
		summaries = append(summaries, entity.GroupSummary{
			Group:     *group,
			IsCreator: group.IsCreator(userID),
			JoinedAt:  rows[i].JoinedAt,
		})
	}
	return summaries, nil
}

// ListGroupIDsForUser returns the ids of every group userID belongs to
func (r *GroupRepository) ListGroupIDsForUser(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.GroupMembership{}).
		Where("user_id = ?", userID).
		Order("group_id").
		Pluck("group_id", &ids).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing user group ids", err, dbErrorMapping{}, map[string]any{
			"user_id": userID,
		})
	}
	return ids, nil
}
