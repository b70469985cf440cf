package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a user-owned journaling subject.
type Topic struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Text      string
	DateAdded time.Time
}

// OwnedBy reports whether the topic belongs to the given user.
// Entries have no owner of their own; they inherit it through their topic.
func (t *Topic) OwnedBy(userID uuid.UUID) bool {
	return t != nil && userID != uuid.Nil && t.OwnerID == userID
}

// Entry is a dated text record that belongs to exactly one Topic.
type Entry struct {
	ID        uuid.UUID
	TopicID   uuid.UUID
	Text      string
	DateAdded time.Time
}

// TopicDetail is a topic together with its entries, newest first.
type TopicDetail struct {
	Topic   Topic
	Entries []Entry
}

// EntryWithTopic pairs an entry with the topic it was resolved through.
type EntryWithTopic struct {
	Entry Entry
	Topic Topic
}
