package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
	"github.com/heartmarshall/learninglog-backend/internal/service/auth"
	"github.com/heartmarshall/learninglog-backend/internal/transport/middleware"
	"github.com/heartmarshall/learninglog-backend/pkg/ctxutil"
)

const afterLoginPath = "/topics"

// accountService defines the browser account operations needed by UsersHandler.
type accountService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, input auth.CredentialsInput) (*domain.User, error)
	StartSession(ctx context.Context, userID uuid.UUID) (*auth.SessionResult, error)
	EndSession(ctx context.Context, rawToken string) error
}

// UsersHandler serves the browser register, login and logout pages.
type UsersHandler struct {
	svc    accountService
	cookie middleware.SessionCookie
	log    *slog.Logger
}

// NewUsersHandler creates a UsersHandler.
func NewUsersHandler(svc accountService, cookie middleware.SessionCookie, logger *slog.Logger) *UsersHandler {
	return &UsersHandler{svc: svc, cookie: cookie, log: logger.With("handler", "users")}
}

// RegisterForm handles GET /users/register.
func (h *UsersHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	writeForm(w, http.StatusOK, map[string]string{"username": ""}, nil)
}

// Register handles POST /users/register. On success the new user is logged in.
func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(w, r, "username", "password", "password_confirm")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Username:        form["username"],
		Password:        form["password"],
		PasswordConfirm: form["password_confirm"],
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeForm(w, http.StatusUnprocessableEntity, publicFields(form), fieldErrors(err))
			return
		}
		h.internalError(w, r, err)
		return
	}

	if !h.startSession(w, r, user.ID) {
		return
	}
	http.Redirect(w, r, afterLoginPath, http.StatusSeeOther)
}

// LoginForm handles GET /users/login.
func (h *UsersHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeForm(w, http.StatusOK, map[string]string{
		"username": "",
		"next":     middleware.SafeNext(r.URL.Query().Get("next"), afterLoginPath),
	}, nil)
}

// Login handles POST /users/login and redirects to ?next= (or the topic list).
func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(w, r, "username", "password", "next")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	next := form["next"]
	if next == "" {
		next = r.URL.Query().Get("next")
	}
	form["next"] = middleware.SafeNext(next, afterLoginPath)

	user, err := h.svc.Authenticate(r.Context(), auth.CredentialsInput{
		Username: form["username"],
		Password: form["password"],
	})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidation):
		writeForm(w, http.StatusUnprocessableEntity, publicFields(form), fieldErrors(err))
		return
	case errors.Is(err, domain.ErrUnauthorized):
		writeForm(w, http.StatusUnprocessableEntity, publicFields(form), map[string][]string{
			nonFieldErrors: {"invalid username or password"},
		})
		return
	default:
		h.internalError(w, r, err)
		return
	}

	if !h.startSession(w, r, user.ID) {
		return
	}
	http.Redirect(w, r, form["next"], http.StatusSeeOther)
}

// Logout handles POST /users/logout.
func (h *UsersHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EndSession(r.Context(), ctxutil.SessionTokenFromCtx(r.Context())); err != nil {
		h.internalError(w, r, err)
		return
	}
	h.cookie.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *UsersHandler) startSession(w http.ResponseWriter, r *http.Request, userID uuid.UUID) bool {
	sess, err := h.svc.StartSession(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, err)
		return false
	}
	h.cookie.Set(w, sess.Token, sess.ExpiresAt)
	return true
}

func (h *UsersHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
	writeInternal(w)
}

// publicFields drops password inputs before a form is echoed back.
func publicFields(form map[string]string) map[string]string {
	out := make(map[string]string, len(form))
	for k, v := range form {
		if k == "password" || k == "password_confirm" {
			continue
		}
		out[k] = v
	}
	return out
}
