package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/learninglog-backend/internal/domain"
)

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the audit log",
	}
	cmd.AddCommand(auditHistoryCmd())
	return cmd
}

func auditHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <topic|entry|user> <id>",
		Short: "Show the change history of one entity, newest first",
		Args:  cobra.ExactArgs(2),
		RunE: withEnv(func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
			entityType, entityID, err := parseEntityRef(args[0], args[1])
			if err != nil {
				return err
			}

			records, err := audit.New(e.pool).GetByEntity(ctx, entityType, entityID, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tACTION\tUSER\tCHANGES")
			for _, r := range records {
				changes, _ := json.Marshal(r.Changes)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					r.CreatedAt.Format(time.RFC3339), r.Action, r.UserID, changes)
			}
			return w.Flush()
		}),
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of records")
	return cmd
}

func parseEntityRef(kind, rawID string) (domain.EntityType, uuid.UUID, error) {
	entityType, err := domain.ParseEntityType(kind)
	if err != nil {
		return "", uuid.Nil, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid id %q: %w", rawID, err)
	}
	return entityType, id, nil
}
