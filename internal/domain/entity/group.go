package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
)

// MaxGroupNameLength bounds the group name
const MaxGroupNameLength = 100

// Group is a named collection of users owned by its creator
type Group struct {
	ID          string
	Name        string
	Description string
	CreatorID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Membership links a user to a group
type Membership struct {
	GroupID  string
	UserID   string
	JoinedAt time.Time
}

// Member is a user enrolled in a group
type Member struct {
	GroupID  string
	UserID   string
	Username string
	Email    string
	JoinedAt time.Time
}

// GroupDetails is a group with its creator and members ordered by join time
type GroupDetails struct {
	Group   Group
	Creator Member
	Members []Member
}

// GroupSummary is a group as seen by one of its members
type GroupSummary struct {
	Group     Group
	IsCreator bool
	JoinedAt  time.Time
}

// NewGroup creates a group owned by creatorID
func NewGroup(id, name, description, creatorID string, timeProvider coreport.TimeProvider) (*Group, error) {
	if creatorID == "" {
		return nil, errs.ErrUnauthenticated
	}
	name, err := normalizeGroupName(name)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Group{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsCreator reports whether userID owns the group
func (g *Group) IsCreator(userID string) bool {
	return g.CreatorID == userID
}

// CreatorMembership returns the membership row that enrolls the creator
func (g *Group) CreatorMembership() Membership {
	return Membership{GroupID: g.ID, UserID: g.CreatorID, JoinedAt: g.CreatedAt}
}

// Apply updates name and/or description. Nil values are left untouched.
func (g *Group) Apply(name, description *string, timeProvider coreport.TimeProvider) error {
	if name == nil && description == nil {
		return errs.ErrNoUpdateData
	}
	if name != nil {
		normalized, err := normalizeGroupName(*name)
		if err != nil {
			return err
		}
		g.Name = normalized
	}
	if description != nil {
		g.Description = strings.TrimSpace(*description)
	}
	g.UpdatedAt = timeProvider.Now()
	return nil
}

func normalizeGroupName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValidationError("group_name", "is required", nil)
	}
	if utf8.RuneCountInString(name) > MaxGroupNameLength {
		return "", errs.NewValidationError("group_name", "must be at most 100 characters", nil)
	}
	return name, nil
}
