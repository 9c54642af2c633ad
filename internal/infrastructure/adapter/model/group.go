package model

import (
	"time"
)

// Group represents the database model for expense groups
type Group struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	CreatorID   string    `gorm:"type:varchar(36);not null;index:idx_expense_groups_creator_id"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName avoids the reserved word GROUP
func (Group) TableName() string {
	return "expense_groups"
}

// GroupMembership links a user to a group
type GroupMembership struct {
	GroupID  string    `gorm:"primaryKey;type:varchar(36)"`
	UserID   string    `gorm:"primaryKey;type:varchar(36);index:idx_group_memberships_user_id"`
	JoinedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GroupMembership
func (GroupMembership) TableName() string {
	return "group_memberships"
}
