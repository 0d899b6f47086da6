// Command server runs the word-by-word translation HTTP API.
//
// Configuration is read from CONFIG_PATH (or ./config.yaml), with
// environment variables overriding file values.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/svadhyaya/padaccheda-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
