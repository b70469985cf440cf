package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EntityType names the table an audit record points at.
type EntityType string

const (
	EntityTypeTopic EntityType = "TOPIC"
	EntityTypeEntry EntityType = "ENTRY"
	EntityTypeUser  EntityType = "USER"
)

var entityTypes = []EntityType{EntityTypeTopic, EntityTypeEntry, EntityTypeUser}

// ParseEntityType accepts a type name in any case ("topic", "Entry").
func ParseEntityType(s string) (EntityType, error) {
	want := EntityType(strings.ToUpper(strings.TrimSpace(s)))
	for _, et := range entityTypes {
		if et == want {
			return et, nil
		}
	}
	return "", fmt.Errorf("unknown entity type %q", s)
}

// AuditAction is the kind of mutation recorded. Topics and entries are never
// deleted, so there is no delete action.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
)

// AuditRecord is one row of the audit log, written in the same transaction
// as the change it describes.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
