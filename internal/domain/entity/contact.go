package entity

// Contact is a user the requesting user can split expenses with: a friend,
// a member of one of their groups, or both
type Contact struct {
	UserID       string
	Username     string
	Email        string
	IsFriend     bool
	SharedGroups int
}
