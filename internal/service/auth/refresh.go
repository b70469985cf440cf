package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/learninglog-backend/internal/auth"
	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

// Refresh exchanges a refresh token for a new token pair. The presented token
// is revoked in the same transaction that stores its replacement, so each
// refresh token works once. Unknown, revoked or expired tokens and tokens of
// deleted users all yield ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// The repository hides revoked tokens, so a replayed token lands here.
		s.log.WarnContext(ctx, "unknown or reused refresh token")
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if !stored.Active(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.WarnContext(ctx, "refresh token outlived its user",
			slog.String("user_id", stored.UserID.String()))
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeByID(txCtx, stored.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		issued, err := s.issueTokens(txCtx, user)
		if err != nil {
			return err
		}
		result = issued
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
