// Command intaked serves the marketing-site intake API: contact-form and
// quote-request submissions plus the keyword-matching chatbot. All records
// live in process memory and are discarded on restart.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// a .env file in the working directory is loaded when present.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/meridianeng/intake-backend/internal/app"
)

func main() {
	// Best effort: a missing .env is fine.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
