// Package ctxutil carries request-scoped values between middleware, handlers
// and services: the authenticated user, how they authenticated, the raw
// session token and the request id.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey       struct{}
	authSourceKey   struct{}
	sessionTokenKey struct{}
	requestIDKey    struct{}
)

// AuthSource tells how the current identity was established.
type AuthSource string

const (
	AuthSourceBearer  AuthSource = "bearer"
	AuthSourceSession AuthSource = "session"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated user. uuid.Nil counts as absent.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

// WithIdentity stores the user ID together with the mechanism that proved it.
func WithIdentity(ctx context.Context, id uuid.UUID, source AuthSource) context.Context {
	return context.WithValue(WithUserID(ctx, id), authSourceKey{}, source)
}

// AuthSourceFromCtx returns how the user authenticated, or "" for anonymous requests.
func AuthSourceFromCtx(ctx context.Context) AuthSource {
	src, _ := ctx.Value(authSourceKey{}).(AuthSource)
	return src
}

// WithSessionToken stores the raw session cookie value so logout can end it.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey{}, token)
}

func SessionTokenFromCtx(ctx context.Context) string {
	tok, _ := ctx.Value(sessionTokenKey{}).(string)
	return tok
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" outside an HTTP request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
