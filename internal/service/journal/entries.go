package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

// CreateEntry adds an entry to one of the caller's topics.
// The topic is resolved and authorized before the input is validated.
func (s *Service) CreateEntry(ctx context.Context, topicID uuid.UUID, input EntryInput) (*domain.Entry, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	topic, err := s.resolveTopic(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	text := input.Normalize().Text

	var entry *domain.Entry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		entry, createErr = s.entries.Create(txCtx, &domain.Entry{
			TopicID: topic.ID,
			Text:    text,
		})
		if createErr != nil {
			return fmt.Errorf("create entry: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeEntry,
			EntityID:   &entry.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"topic_id": topic.ID.String(),
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

	s.log.InfoContext(ctx, "entry created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topic.ID.String()),
		slog.String("entry_id", entry.ID.String()),
	)

	return entry, nil
}

// GetEntry returns one of the caller's entries together with its topic.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.EntryWithTopic, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveEntry(ctx, userID, entryID)
}

// UpdateEntry replaces the text of one of the caller's entries.
// The entry keeps its id, topic and date added.
func (s *Service) UpdateEntry(ctx context.Context, entryID uuid.UUID, input EntryInput) (*domain.EntryWithTopic, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolveEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	text := input.Normalize().Text

	var updated *domain.Entry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.entries.UpdateText(txCtx, resolved.Entry.ID, text)
		if updateErr != nil {
			return fmt.Errorf("update entry: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeEntry,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"text": map[string]any{"old_len": len(resolved.Entry.Text), "new_len": len(text)},
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

	s.log.InfoContext(ctx, "entry updated",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", updated.ID.String()),
	)

	return &domain.EntryWithTopic{Entry: *updated, Topic: resolved.Topic}, nil
}
