package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Username     string    `gorm:"type:varchar(50);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Friendship is one directed friendship row. Every friendship is stored in both directions.
type Friendship struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)"`
	FriendID  string    `gorm:"primaryKey;type:varchar(36);index:idx_friendships_friend_id"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Friendship
func (Friendship) TableName() string {
	return "friendships"
}
