package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withEnv(func(ctx context.Context, cmd *cobra.Command, e *env, _ []string) error {
				return withMigrator(e, func(m *postgres.Migrator) error {
					versions, err := m.Up(ctx)
					if err != nil {
						return err
					}
					if len(versions) == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "No pending migrations.")
						return nil
					}
					for _, v := range versions {
						fmt.Fprintf(cmd.OutOrStdout(), "Applied %d\n", v)
					}
					return nil
				})
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withEnv(func(ctx context.Context, cmd *cobra.Command, e *env, _ []string) error {
				return withMigrator(e, func(m *postgres.Migrator) error {
					v, err := m.Down(ctx)
					if err != nil {
						return err
					}
					if v == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "Nothing to roll back.")
						return nil
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d\n", v)
					return nil
				})
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: withEnv(func(ctx context.Context, cmd *cobra.Command, e *env, _ []string) error {
				return withMigrator(e, func(m *postgres.Migrator) error {
					states, err := m.Status(ctx)
					if err != nil {
						return err
					}
					for _, s := range states {
						mark := "pending"
						if s.Applied {
							mark = "applied"
						}
						fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d  %s\n", mark, s.Version, s.Path)
					}
					return nil
				})
			}),
		},
	)
	return cmd
}

func withMigrator(e *env, fn func(m *postgres.Migrator) error) error {
	m, closeDB, err := postgres.NewMigratorFromPool(e.pool)
	if err != nil {
		return err
	}
	defer func() { _ = closeDB() }()
	return fn(m)
}
