// Package topic implements the Topic repository using PostgreSQL.
// Reads are keyed by id only; ownership is decided by the service layer.
package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

const table = "topics"

var columns = []string{"id", "owner_id", "text", "date_added"}

type row struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Text      string    `db:"text"`
	DateAdded time.Time `db:"date_added"`
}

func (r row) toDomain() domain.Topic {
	return domain.Topic{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Text:      r.Text,
		DateAdded: r.DateAdded,
	}
}

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a topic by primary key without any owner filter.
// Returns domain.ErrNotFound if no topic has that id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	t := res.toDomain()
	return &t, nil
}

// ListByOwner returns the owner's topics, oldest first.
// Returns an empty slice (not nil) when the owner has no topics.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Topic, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("date_added ASC", "id ASC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	topics := make([]domain.Topic, len(rows))
	for i, rw := range rows {
		topics[i] = rw.toDomain()
	}
	return topics, nil
}

// Create inserts a topic and returns the stored row.
// A zero ID or DateAdded is filled in here.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	dateAdded := t.DateAdded
	if dateAdded.IsZero() {
		dateAdded = time.Now().UTC()
	}

	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(id, t.OwnerID, t.Text, dateAdded).
		Suffix("RETURNING id, owner_id, text, date_added")

	var res row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	created := res.toDomain()
	return &created, nil
}
