package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/learninglog-backend/internal/transport/middleware"
)

// RouterDeps carries everything NewRouter mounts.
type RouterDeps struct {
	Logger   *slog.Logger
	Version  string
	LoginURL string

	Journal *JournalHandler
	Users   *UsersHandler
	Auth    *AuthHandler
	Health  *HealthHandler

	// Identity resolves the caller (bearer token or session cookie).
	Identity middleware.Middleware
	// Optional; nil disables the matching middleware.
	CORS        middleware.Middleware
	RateLimiter *middleware.RateLimiter
	Metrics     *middleware.Metrics
}

// NewRouter builds the chi router. Every journal route sits behind
// RequireUser; probes and metrics skip identity resolution.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(outerStack(d)...))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) { writeNotFound(w) })
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(d.Identity)
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Limit())
		}

		r.Get("/", Index(d.Version))

		r.Route("/users", func(r chi.Router) {
			r.Get("/register", d.Users.RegisterForm)
			r.Post("/register", d.Users.Register)
			r.Get("/login", d.Users.LoginForm)
			r.Post("/login", d.Users.Login)
			r.Post("/logout", d.Users.Logout)
		})

		r.Route("/api/auth", func(r chi.Router) {
			r.Post("/token", d.Auth.Token)
			r.Post("/refresh", d.Auth.Refresh)
			r.With(middleware.RequireUser(d.LoginURL)).Post("/logout", d.Auth.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser(d.LoginURL))

			r.Get("/topics", d.Journal.Topics)
			r.Get("/topics/new", d.Journal.NewTopicForm)
			r.Post("/topics/new", d.Journal.CreateTopic)
			r.Get("/topics/{topicID}", d.Journal.Topic)
			r.Get("/topics/{topicID}/entries/new", d.Journal.NewEntryForm)
			r.Post("/topics/{topicID}/entries/new", d.Journal.CreateEntry)
			r.Get("/entries/{entryID}/edit", d.Journal.EditEntryForm)
			r.Post("/entries/{entryID}/edit", d.Journal.UpdateEntry)
		})
	})

	return r
}

// outerStack lists the middleware every request passes through, outermost first.
func outerStack(d RouterDeps) []middleware.Middleware {
	stack := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
	}
	if d.Metrics != nil {
		stack = append(stack, d.Metrics.Instrument())
	}
	if d.CORS != nil {
		stack = append(stack, d.CORS)
	}
	return stack
}
