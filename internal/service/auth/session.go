package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learninglog-backend/internal/auth"
	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

// StartSession opens a browser session for the user.
// Only the token hash is stored; the raw token goes into the cookie.
func (s *Service) StartSession(ctx context.Context, userID uuid.UUID) (*SessionResult, error) {
	raw, hash, err := auth.NewOpaqueToken()
	if err != nil {
		return nil, fmt.Errorf("auth.StartSession: %w", err)
	}

	now := time.Now().UTC()
	sess := domain.Session{
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, hash, sess); err != nil {
		return nil, fmt.Errorf("auth.StartSession: %w", err)
	}

	s.log.InfoContext(ctx, "session started", slog.String("user_id", userID.String()))

	return &SessionResult{Token: raw, ExpiresAt: sess.ExpiresAt}, nil
}

// ResolveSession maps a raw cookie token to its user.
// Returns ErrUnauthorized if the session is unknown or expired.
func (s *Service) ResolveSession(ctx context.Context, rawToken string) (uuid.UUID, error) {
	if rawToken == "" {
		return uuid.Nil, domain.ErrUnauthorized
	}

	sess, err := s.sessions.Lookup(ctx, auth.HashToken(rawToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.ErrUnauthorized
		}
		return uuid.Nil, fmt.Errorf("auth.ResolveSession: %w", err)
	}

	if !sess.Active(time.Now()) {
		return uuid.Nil, domain.ErrUnauthorized
	}

	return sess.UserID, nil
}

// EndSession deletes the session behind a raw cookie token. Unknown tokens are ignored.
func (s *Service) EndSession(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, auth.HashToken(rawToken)); err != nil {
		return fmt.Errorf("auth.EndSession: %w", err)
	}
	return nil
}
