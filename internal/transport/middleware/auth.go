package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
	"github.com/heartmarshall/learninglog-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type sessionResolver interface {
	ResolveSession(ctx context.Context, rawToken string) (uuid.UUID, error)
}

// Auth resolves the caller identity. A bearer token wins over the session
// cookie. A rejected bearer token ends the request with 401; a rejected
// cookie leaves the request anonymous and clears the cookie.
func Auth(logger *slog.Logger, tokens tokenValidator, sessions sessionResolver, cookie SessionCookie) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractBearerToken(r); token != "" {
				userID, err := tokens.ValidateToken(r.Context(), token)
				if err != nil {
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				ctx := ctxutil.WithIdentity(r.Context(), userID, ctxutil.AuthSourceBearer)
				noteIdentity(ctx)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			raw := cookie.Read(r)
			if raw == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			userID, err := sessions.ResolveSession(r.Context(), raw)
			switch {
			case err == nil:
				ctx := ctxutil.WithIdentity(r.Context(), userID, ctxutil.AuthSourceSession)
				ctx = ctxutil.WithSessionToken(ctx, raw)
				noteIdentity(ctx)
				next.ServeHTTP(w, r.WithContext(ctx))
			case errors.Is(err, domain.ErrUnauthorized):
				cookie.Clear(w)
				next.ServeHTTP(w, r)
			default:
				logger.ErrorContext(r.Context(), "session lookup failed", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
			}
		})
	}
}

// RequireUser guards routes that need an identity. JSON clients get 401,
// browsers are redirected to loginURL with the original path in ?next=.
func RequireUser(loginURL string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			if WantsJSON(r) {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			http.Redirect(w, r, LoginRedirectURL(loginURL, r.URL.RequestURI()), http.StatusSeeOther)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
