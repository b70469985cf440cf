// Package auth holds the token primitives shared by the auth service and the
// HTTP middleware: signed access tokens for API clients and opaque tokens for
// refresh rotation and browser sessions.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenType = "access"
	clockSkew       = 5 * time.Second
)

// ErrTokenEmpty is returned when an empty string is presented as a token.
var ErrTokenEmpty = errors.New("token is empty")

// JWTManager signs and verifies HS256 access tokens whose subject is the user
// id. It also hands out refresh tokens, which are opaque (see NewOpaqueToken).
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	parser    *jwt.Parser
}

// NewJWTManager builds a manager. Config validation guarantees a secret of at
// least 32 characters.
func NewJWTManager(secret, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Type string `json:"typ"`
}

// GenerateAccessToken signs a token for userID that expires after the
// configured access TTL.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
		Type: accessTokenType,
	}).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature, issuer, expiry and token type and
// returns the user id. jwt sentinel errors (jwt.ErrTokenExpired and friends)
// stay reachable through errors.Is.
func (m *JWTManager) ValidateAccessToken(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, ErrTokenEmpty
	}

	var claims accessClaims
	if _, err := m.parser.ParseWithClaims(raw, &claims, m.key); err != nil {
		return uuid.Nil, fmt.Errorf("parse access token: %w", err)
	}
	if claims.Type != accessTokenType {
		return uuid.Nil, fmt.Errorf("token type %q is not an access token", claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("access token subject: %w", err)
	}
	return userID, nil
}

func (m *JWTManager) key(*jwt.Token) (any, error) { return m.secret, nil }

// GenerateRefreshToken returns a new refresh token and the hash to store.
func (m *JWTManager) GenerateRefreshToken() (raw string, hash string, err error) {
	return NewOpaqueToken()
}
