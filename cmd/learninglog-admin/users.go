package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/learninglog-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/learninglog-backend/internal/domain"
	authsvc "github.com/heartmarshall/learninglog-backend/internal/service/auth"
)

func createUserCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "create-user <username>",
		Short: "Create a user account",
		Long: "Create a user account. The password is taken from --password " +
			"or, when the flag is omitted, from the first line of stdin.",
		Args: cobra.ExactArgs(1),
		RunE: withEnv(func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
			if password == "" {
				p, err := readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = p
			}

			// Registration only touches users, audit and the transaction manager.
			svc := authsvc.NewService(e.logger, user.New(e.pool), nil, nil,
				audit.New(e.pool), postgres.NewTxManager(e.pool), nil, e.cfg.Auth, e.cfg.Redis.SessionTTL)

			u, err := svc.Register(ctx, authsvc.RegisterInput{
				Username:        args[0],
				Password:        password,
				PasswordConfirm: password,
			})
			if err != nil {
				return describeValidation(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", u.Username, u.ID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&password, "password", "", "password for the new user")
	return cmd
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// describeValidation flattens field errors into one readable message.
func describeValidation(err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	parts := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return fmt.Errorf("invalid input: %s", strings.Join(parts, "; "))
}
