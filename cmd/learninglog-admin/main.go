// Command learninglog-admin runs maintenance tasks against the learninglog
// database: schema migrations, refresh token cleanup, user provisioning and
// audit history lookups.
//
// It reads the same configuration as the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learninglog-backend/internal/app"
	"github.com/heartmarshall/learninglog-backend/internal/config"
)

var timeout time.Duration

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:           "learninglog-admin",
		Short:         "Maintenance commands for learninglog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall command timeout")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(cleanupTokensCmd())
	rootCmd.AddCommand(createUserCmd())
	rootCmd.AddCommand(auditCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// env is what every subcommand needs: loaded config, a logger and a pool.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func (e *env) Close() { e.pool.Close() }

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return &env{cfg: cfg, logger: logger, pool: pool}, nil
}

// withEnv wraps a subcommand body with the timeout and the shared setup.
func withEnv(run func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		return run(ctx, cmd, e, args)
	}
}
