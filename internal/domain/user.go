package domain

import (
	"time"

	"github.com/google/uuid"
)

// User owns topics. Username is unique case-insensitively.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is the stored half of an API refresh token: only its SHA-256
// hash is kept. A token is single-use; rotation revokes it.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// Active reports whether the token can still be exchanged at now.
func (t *RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// Session is a browser login bound to an opaque cookie token.
type Session struct {
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Active reports whether the session still authenticates requests at now.
func (s *Session) Active(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
