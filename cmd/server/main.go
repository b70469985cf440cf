// Command server runs the learninglog HTTP server.
//
// Configuration comes from config.yaml (or CONFIG_PATH), an optional .env
// file, and environment variables. SIGINT or SIGTERM triggers a graceful
// shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/learninglog-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
