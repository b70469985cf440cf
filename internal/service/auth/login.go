package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

// Authenticate checks a username and password.
// Returns ErrUnauthorized if the username is unknown or the password is wrong.
func (s *Service) Authenticate(ctx context.Context, input CredentialsInput) (*domain.User, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Authenticate get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.log.InfoContext(ctx, "password mismatch", slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// Login authenticates and issues an API access/refresh token pair.
func (s *Service) Login(ctx context.Context, input CredentialsInput) (*AuthResult, error) {
	user, err := s.Authenticate(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via token",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
