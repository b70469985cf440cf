package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

// ListTopics returns the caller's topics, oldest first.
func (s *Service) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	topics, err := s.topics.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// GetTopic returns one of the caller's topics with its entries, newest first.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.TopicDetail, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	topic, err := s.resolveTopic(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByTopic(ctx, topic.ID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return &domain.TopicDetail{Topic: *topic, Entries: entries}, nil
}

// GetTopicForEntry resolves the topic a new entry would be added to.
func (s *Service) GetTopicForEntry(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveTopic(ctx, userID, topicID)
}

// CreateTopic creates a topic owned by the caller.
func (s *Service) CreateTopic(ctx context.Context, input TopicInput) (*domain.Topic, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	text := input.Normalize().Text

	var topic *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		topic, createErr = s.topics.Create(txCtx, &domain.Topic{
			OwnerID: userID,
			Text:    text,
		})
		if createErr != nil {
			return fmt.Errorf("create topic: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   &topic.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"text": map[string]any{"new": text},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topic.ID.String()),
	)

	return topic, nil
}
