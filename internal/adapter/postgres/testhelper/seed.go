package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username and a placeholder password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + uniqueSuffix(),
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTopic creates a topic owned by ownerID.
// dateAdded lets callers control ordering; zero means now.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, text string, dateAdded time.Time) domain.Topic {
	t.Helper()

	if dateAdded.IsZero() {
		dateAdded = time.Now()
	}
	topic := domain.Topic{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Text:      text,
		DateAdded: dateAdded.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topics (id, owner_id, text, date_added) VALUES ($1, $2, $3, $4)`,
		topic.ID, topic.OwnerID, topic.Text, topic.DateAdded,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return topic
}

// SeedEntry creates an entry under topicID.
// dateAdded lets callers control ordering; zero means now.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, topicID uuid.UUID, text string, dateAdded time.Time) domain.Entry {
	t.Helper()

	if dateAdded.IsZero() {
		dateAdded = time.Now()
	}
	entry := domain.Entry{
		ID:        uuid.New(),
		TopicID:   topicID,
		Text:      text,
		DateAdded: dateAdded.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO entries (id, topic_id, text, date_added) VALUES ($1, $2, $3, $4)`,
		entry.ID, entry.TopicID, entry.Text, entry.DateAdded,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return entry
}
