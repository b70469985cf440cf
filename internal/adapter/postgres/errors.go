package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

// SQLSTATE codes the repositories translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidTextRep      = "22P02"
	codeCharNotInRepertoire = "22021"
)

// MapError turns driver errors into domain sentinels and prefixes the entity
// ("topic 6f1c...: not found"). Pass uuid.Nil when the lookup is not by id.
// Context cancellation is wrapped but never translated.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	label := entity
	if id != uuid.Nil {
		label = fmt.Sprintf("%s %s", entity, id)
	}

	if sentinel := classify(err); sentinel != nil {
		return fmt.Errorf("%s: %w", label, sentinel)
	}
	return fmt.Errorf("%s: %w", label, err)
}

func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return domain.ErrAlreadyExists
	case codeForeignKeyViolation:
		// The referenced parent (owner or topic) is gone.
		return domain.ErrNotFound
	case codeCheckViolation, codeInvalidTextRep, codeCharNotInRepertoire:
		return domain.ErrValidation
	}
	return nil
}
