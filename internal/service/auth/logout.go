package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
	"github.com/heartmarshall/learninglog-backend/pkg/ctxutil"
)

// Logout revokes every refresh token of the calling user. Access tokens
// already handed out stay valid until they expire.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "refresh tokens revoked", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken resolves a bearer access token to its user. Every failure,
// whatever jwt reported, becomes ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "bearer token rejected", slog.String("reason", err.Error()))
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
