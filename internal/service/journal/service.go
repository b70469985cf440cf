// Package journal implements topics and entries for the authenticated user.
//
// Every operation that takes an id follows the same order: resolve the row by id,
// authorize it against the caller, then act. A row that exists but belongs to
// someone else is reported exactly like a row that does not exist.
package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
	"github.com/heartmarshall/learninglog-backend/pkg/ctxutil"
)

type topicRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Topic, error)
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
}

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Entry, error)
	Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Entry, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the journal operations.
type Service struct {
	topics  topicRepo
	entries entryRepo
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new journal service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	entries entryRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		topics:  topics,
		entries: entries,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "journal"),
	}
}

// currentUser returns the caller's id or domain.ErrUnauthorized.
func currentUser(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// authorize reports whether userID may see or change the topic.
// Entries are authorized through the topic they belong to.
func authorize(topic *domain.Topic, userID uuid.UUID) bool {
	return topic.OwnedBy(userID)
}

func notFound(entity string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
}

// resolveTopic fetches a topic by id and authorizes it for userID.
func (s *Service) resolveTopic(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	if topicID == uuid.Nil {
		return nil, notFound("topic", topicID)
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	if !authorize(topic, userID) {
		s.log.WarnContext(ctx, "topic owned by another user",
			slog.String("user_id", userID.String()),
			slog.String("topic_id", topicID.String()),
		)
		return nil, fmt.Errorf("get topic: %w", notFound("topic", topicID))
	}

	return topic, nil
}

// resolveEntry fetches an entry, then its topic, and authorizes the topic for userID.
func (s *Service) resolveEntry(ctx context.Context, userID, entryID uuid.UUID) (*domain.EntryWithTopic, error) {
	if entryID == uuid.Nil {
		return nil, notFound("entry", entryID)
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	topic, err := s.topics.GetByID(ctx, entry.TopicID)
	if err != nil {
		return nil, fmt.Errorf("get entry topic: %w", err)
	}

	if !authorize(topic, userID) {
		s.log.WarnContext(ctx, "entry owned by another user",
			slog.String("user_id", userID.String()),
			slog.String("entry_id", entryID.String()),
		)
		return nil, fmt.Errorf("get entry: %w", notFound("entry", entryID))
	}

	return &domain.EntryWithTopic{Entry: *entry, Topic: *topic}, nil
}
