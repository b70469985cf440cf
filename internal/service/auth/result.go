package auth

import (
	"time"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

// AuthResult is returned by Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresIn    int    // access token lifetime in seconds
	User         *domain.User
}

// SessionResult is returned by StartSession. Token is the raw cookie value.
type SessionResult struct {
	Token     string
	ExpiresAt time.Time
}
