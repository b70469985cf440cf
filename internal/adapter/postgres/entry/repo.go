// Package entry implements the Entry repository using PostgreSQL.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

const table = "entries"

var columns = []string{"id", "topic_id", "text", "date_added"}

const returning = "RETURNING id, topic_id, text, date_added"

type row struct {
	ID        uuid.UUID `db:"id"`
	TopicID   uuid.UUID `db:"topic_id"`
	Text      string    `db:"text"`
	DateAdded time.Time `db:"date_added"`
}

func (r row) toDomain() domain.Entry {
	return domain.Entry{
		ID:        r.ID,
		TopicID:   r.TopicID,
		Text:      r.Text,
		DateAdded: r.DateAdded,
	}
}

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if no entry has that id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	e := res.toDomain()
	return &e, nil
}

// ListByTopic returns the topic's entries, newest first.
// Returns an empty slice (not nil) when the topic has no entries.
func (r *Repo) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Entry, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"topic_id": topicID}).
		OrderBy("date_added DESC", "id DESC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	entries := make([]domain.Entry, len(rows))
	for i, rw := range rows {
		entries[i] = rw.toDomain()
	}
	return entries, nil
}

// Create inserts an entry and returns the stored row.
// A zero ID or DateAdded is filled in here.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	dateAdded := e.DateAdded
	if dateAdded.IsZero() {
		dateAdded = time.Now().UTC()
	}

	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(id, e.TopicID, e.Text, dateAdded).
		Suffix(returning)

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	created := res.toDomain()
	return &created, nil
}

// UpdateText replaces the text of an entry. Every other column is left as is.
// Returns domain.ErrNotFound if no entry has that id.
func (r *Repo) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Entry, error) {
	q := postgres.Builder().
		Update(table).
		Set("text", text).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	updated := res.toDomain()
	return &updated, nil
}
