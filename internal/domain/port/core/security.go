package core

import "time"

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}

// TokenIssuer issues and verifies caller identity tokens
type TokenIssuer interface {
	Issue(userID, email string) (token string, expiresAt time.Time, err error)
	// Verify returns the user ID carried by a valid token
	Verify(token string) (string, error)
}
