package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

const (
	MaxUsernameLen    = 150
	MinPasswordLen    = 8
	MaxPasswordLen    = 72 // bcrypt ignores anything past 72 bytes
	maxRefreshToken   = 512
	usernameCharsHint = "letters, digits and @/./+/-/_ only"
)

func validUsernameChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case strings.ContainsRune("@.+-_", r):
		return true
	}
	return false
}

func validateUsername(username string) []domain.FieldError {
	var errs []domain.FieldError
	switch {
	case username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case utf8.RuneCountInString(username) > MaxUsernameLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 150 characters"})
	case strings.IndexFunc(username, func(r rune) bool { return !validUsernameChar(r) }) >= 0:
		errs = append(errs, domain.FieldError{Field: "username", Message: usernameCharsHint})
	}
	return errs
}

// RegisterInput holds the sign-up form.
type RegisterInput struct {
	Username        string
	Password        string
	PasswordConfirm string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	errs := validateUsername(i.Username)

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < MinPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	case len(i.Password) > MaxPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if i.PasswordConfirm != i.Password {
		errs = append(errs, domain.FieldError{Field: "password_confirm", Message: "passwords do not match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CredentialsInput holds the login form.
type CredentialsInput struct {
	Username string
	Password string
}

// Validate checks presence only; wrong credentials are reported as ErrUnauthorized.
func (i CredentialsInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > MaxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > maxRefreshToken {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
