package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres/token"
	authsvc "github.com/heartmarshall/learninglog-backend/internal/service/auth"
)

func cleanupTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Delete expired and revoked refresh tokens",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(ctx context.Context, cmd *cobra.Command, e *env, _ []string) error {
			// Cleanup only touches the token repository.
			svc := authsvc.NewService(e.logger, nil, token.New(e.pool), nil, nil, nil, nil, e.cfg.Auth, e.cfg.Redis.SessionTTL)

			n, err := svc.CleanupExpiredTokens(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d expired/revoked refresh tokens.\n", n)
			return nil
		}),
	}
}
