package auth

import (
	"context"
	"fmt"
	"log/slog"
)

// CleanupExpiredTokens deletes refresh tokens that are expired or revoked and
// reports how many rows went away. Run it periodically from the admin CLI.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	deleted, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	s.log.InfoContext(ctx, "refresh token cleanup finished", slog.Int("deleted", deleted))
	return deleted, nil
}
