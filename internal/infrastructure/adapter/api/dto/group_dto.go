package dto

import (
	"time"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// CreateGroupRequest represents the API request for creating a group
type CreateGroupRequest struct {
	GroupName   string `json:"group_name" binding:"required"`
	Description string `json:"description"`
}

// UpdateGroupRequest carries optional group changes
type UpdateGroupRequest struct {
	GroupName   *string `json:"group_name"`
	Description *string `json:"description"`
}

// AddMemberRequest names the user to enroll
type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// GroupResponse is the public view of a group
type GroupResponse struct {
	GroupID     string    `json:"group_id"`
	GroupName   string    `json:"group_name"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupEnvelope wraps a group with a status message
type GroupEnvelope struct {
	Message string        `json:"message"`
	Group   GroupResponse `json:"group"`
}

// MemberResponse is one member of a group
type MemberResponse struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

// MemberEnvelope wraps a newly enrolled member
type MemberEnvelope struct {
	Message string         `json:"message"`
	GroupID string         `json:"group_id"`
	Member  MemberResponse `json:"member"`
}

// GroupDetailsResponse is a group with its creator and members
type GroupDetailsResponse struct {
	Group       GroupResponse    `json:"group"`
	Creator     MemberResponse   `json:"creator"`
	Members     []MemberResponse `json:"members"`
	MemberCount int              `json:"member_count"`
}

// UserGroupResponse is one group of the caller
type UserGroupResponse struct {
	GroupResponse
	IsCreator bool      `json:"is_creator"`
	JoinedAt  time.Time `json:"joined_at"`
}

// UserGroupsResponse lists the caller's groups
type UserGroupsResponse struct {
	Groups []UserGroupResponse `json:"groups"`
	Count  int                 `json:"count"`
}

// FromGroup converts a domain group
func FromGroup(g *entity.Group) GroupResponse {
	return GroupResponse{
		GroupID:     g.ID,
		GroupName:   g.Name,
		Description: g.Description,
		CreatedBy:   g.CreatorID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// FromMember converts a domain member
func FromMember(m entity.Member) MemberResponse {
	return MemberResponse{
		UserID:   m.UserID,
		Username: m.Username,
		Email:    m.Email,
		JoinedAt: m.JoinedAt,
	}
}

// FromGroupDetails converts group details
func FromGroupDetails(d *entity.GroupDetails) GroupDetailsResponse {
	members := make([]MemberResponse, 0, len(d.Members))
	for _, m := range d.Members {
		members = append(members, FromMember(m))
	}
	return GroupDetailsResponse{
		Group:       FromGroup(&d.Group),
		Creator:     FromMember(d.Creator),
		Members:     members,
		MemberCount: len(members),
	}
}

// FromGroupSummaries converts the caller's groups, never returning nil
func FromGroupSummaries(summaries []entity.GroupSummary) UserGroupsResponse {
	groups := make([]UserGroupResponse, 0, len(summaries))
	for i := range summaries {
		groups = append(groups, UserGroupResponse{
			GroupResponse: FromGroup(&summaries[i].Group),
			IsCreator:     summaries[i].IsCreator,
			JoinedAt:      summaries[i].JoinedAt,
		})
	}
	return UserGroupsResponse{Groups: groups, Count: len(groups)}
}
