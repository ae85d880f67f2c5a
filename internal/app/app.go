package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/meridianeng/intake-backend/internal/config"
	"github.com/meridianeng/intake-backend/internal/service/chat"
	"github.com/meridianeng/intake-backend/internal/service/contact"
	"github.com/meridianeng/intake-backend/internal/service/quote"
	"github.com/meridianeng/intake-backend/internal/sink/relay"
	"github.com/meridianeng/intake-backend/internal/store"
	"github.com/meridianeng/intake-backend/internal/transport/middleware"
	"github.com/meridianeng/intake-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the store, sinks, services, and handlers, and serves
// HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("sink_mode", cfg.Sink.Mode),
	)

	st := store.New()

	contactSvc := contact.NewService(logger, st.Contacts(), st.Contacts())
	quoteSvc := quote.NewService(logger, st.Quotes(), st.Quotes())
	if cfg.Sink.Mode == config.SinkModeRelay {
		sink := relay.New(cfg.Sink, logger)
		contactSvc = contact.NewService(logger, sink.Contacts(), st.Contacts())
		quoteSvc = quote.NewService(logger, sink.Quotes(), st.Quotes())
	}
	chatSvc := chat.NewService(logger, st.Messages())

	router := rest.NewRouter(
		rest.NewContactHandler(contactSvc, logger),
		rest.NewQuoteHandler(quoteSvc, logger),
		rest.NewChatbotHandler(chatSvc, logger),
		rest.NewHealthHandler(st, BuildVersion()),
	)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	handler := middleware.Chain(mws...)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
