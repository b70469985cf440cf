package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres/topic"
	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/learninglog-backend/internal/adapter/redis/session"
	"github.com/heartmarshall/learninglog-backend/internal/auth"
	"github.com/heartmarshall/learninglog-backend/internal/config"
	authsvc "github.com/heartmarshall/learninglog-backend/internal/service/auth"
	"github.com/heartmarshall/learninglog-backend/internal/service/journal"
	"github.com/heartmarshall/learninglog-backend/internal/transport/middleware"
	"github.com/heartmarshall/learninglog-backend/internal/transport/rest"
)

// Infra is the set of long-lived resources the HTTP stack is built on.
type Infra struct {
	Pool     *pgxpool.Pool
	Sessions *session.Store
	// Optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

// NewHandler wires repositories, services and handlers into the HTTP router.
func NewHandler(cfg *config.Config, logger *slog.Logger, infra Infra) http.Handler {
	txm := postgres.NewTxManager(infra.Pool)

	topics := topic.New(infra.Pool)
	entries := entry.New(infra.Pool)
	users := user.New(infra.Pool)
	tokens := token.New(infra.Pool)
	auditRepo := audit.New(infra.Pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	journalService := journal.NewService(logger, topics, entries, auditRepo, txm)
	authService := authsvc.NewService(logger, users, tokens, infra.Sessions, auditRepo, txm, jwtManager, cfg.Auth, cfg.Redis.SessionTTL)

	cookie := middleware.NewSessionCookie(cfg.Auth)

	return rest.NewRouter(rest.RouterDeps{
		Logger:   logger,
		Version:  BuildVersion(),
		LoginURL: cfg.Auth.LoginURL,
		Journal:  rest.NewJournalHandler(journalService, cfg.Auth.LoginURL, logger),
		Users:    rest.NewUsersHandler(authService, cookie, logger),
		Auth:     rest.NewAuthHandler(authService, logger),
		Health: rest.NewHealthHandler(map[string]rest.Pinger{
			"database": infra.Pool,
			"redis":    infra.Sessions,
		}, BuildVersion()),
		Identity:    middleware.Auth(logger, authService, authService, cookie),
		CORS:        middleware.CORS(cfg.CORS),
		RateLimiter: infra.RateLimiter,
		Metrics:     middleware.NewMetrics(),
	})
}
