package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/glosshub/glossary-backend/internal/adapter/postgres"
	"github.com/glosshub/glossary-backend/internal/adapter/postgres/audit"
	"github.com/glosshub/glossary-backend/internal/adapter/postgres/draft"
	"github.com/glosshub/glossary-backend/internal/adapter/postgres/entry"
	"github.com/glosshub/glossary-backend/internal/adapter/postgres/perspective"
	"github.com/glosshub/glossary-backend/internal/adapter/postgres/term"
	"github.com/glosshub/glossary-backend/internal/adapter/postgres/user"
	"github.com/glosshub/glossary-backend/internal/auth"
	"github.com/glosshub/glossary-backend/internal/config"
	"github.com/glosshub/glossary-backend/internal/notify"
	authsvc "github.com/glosshub/glossary-backend/internal/service/auth"
	"github.com/glosshub/glossary-backend/internal/service/glossary"
	"github.com/glosshub/glossary-backend/internal/service/review"
	"github.com/glosshub/glossary-backend/internal/transport/middleware"
	"github.com/glosshub/glossary-backend/internal/transport/rest"
)

// Run wires the application together and blocks until ctx is canceled or
// the HTTP server fails. Shutdown is graceful within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	termRepo := term.New(pool)
	perspectiveRepo := perspective.New(pool)
	entryRepo := entry.New(pool)
	draftRepo := draft.New(pool)
	userRepo := user.New(pool)
	auditRepo := audit.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)

	authService := authsvc.NewService(logger, userRepo, jwtManager, hasher)
	glossaryService := glossary.NewService(logger, termRepo, perspectiveRepo, entryRepo, draftRepo, auditRepo, txManager, glossary.Config{
		MaxContentLength: cfg.Glossary.MaxContentLength,
		MaxTermLength:    cfg.Glossary.MaxTermLength,
		DefaultPageSize:  cfg.Glossary.DefaultPageSize,
		MaxPageSize:      cfg.Glossary.MaxPageSize,
	})
	reviewService := review.NewService(logger, draftRepo, entryRepo, perspectiveRepo, userRepo, auditRepo, notify.NewLogNotifier(logger), txManager, cfg.Glossary.MinApprovals)

	router := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Glossary: rest.NewGlossaryHandler(glossaryService, cfg.Glossary.MinApprovals, logger),
		Review:   rest.NewReviewHandler(reviewService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		rateLimiter := middleware.NewRateLimiter(time.Minute)
		defer rateLimiter.Stop()
		mws = append(mws, rateLimiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(jwtManager))

	handler := middleware.Chain(mws...)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
