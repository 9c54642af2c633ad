package core

import "time"

// TimeProvider abstracts the clock so timestamps on users, groups,
// memberships and expenses can be pinned in tests
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator produces identifiers for new users, groups and expenses
type IDGenerator interface {
	NewID() string
}
