package model

// All lists every model managed by migrations, in creation order
func All() []any {
	return []any{
		&User{},
		&Friendship{},
		&Group{},
		&GroupMembership{},
		&Expense{},
		&ExpenseParticipant{},
		&MigrationVersion{},
	}
}
