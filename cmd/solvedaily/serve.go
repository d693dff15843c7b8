package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/solvedaily/backend/internal/analytics"
	"github.com/solvedaily/backend/internal/attempt"
	"github.com/solvedaily/backend/internal/bootstrap"
	"github.com/solvedaily/backend/internal/database"
	"github.com/solvedaily/backend/internal/identity"
	"github.com/solvedaily/backend/internal/question"
	"github.com/solvedaily/backend/internal/rediscache"
	"github.com/solvedaily/backend/internal/server"
	"github.com/solvedaily/backend/internal/streak"
	"github.com/solvedaily/backend/internal/wrongnote"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	location, err := time.LoadLocation(cfg.Quiz.Timezone)
	if err != nil {
		return fmt.Errorf("time.LoadLocation(%s) > %w", cfg.Quiz.Timezone, err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}

	app := bootstrap.New(10 * time.Second)
	app.AddShutdownHook(func(context.Context) error { return db.Close() })

	questionRepo := question.NewDBRepository(db)
	wrongNoteService := wrongnote.NewService(wrongnote.NewDBRepository(db))
	streakService := streak.NewService(streak.NewDBRepository(db))
	attemptService := attempt.NewService(
		attempt.NewDBRepository(db),
		attempt.NewDBAnswerRepository(db),
		questionRepo,
		wrongNoteService,
		streakService,
		cfg.Quiz.DailyQuestionCount,
		cfg.Quiz.AdhocQuestionCount,
	)

	// The aggregator must bucket days in the configured quiz timezone, not
	// the server's local one, so date keys line up with daily attempts.
	analyticsOpts := []analytics.ServiceOption{
		analytics.WithClock(func() time.Time { return time.Now().In(location) }),
	}
	var apiOpts []server.APIOption
	if cfg.Redis.Addr != "" {
		client := rediscache.NewClient(cfg.Redis)
		app.AddShutdownHook(func(context.Context) error { return client.Close() })

		cache := rediscache.NewSummaryCache(client, time.Duration(cfg.Redis.SummaryTTLSeconds)*time.Second)
		analyticsOpts = append(analyticsOpts, analytics.WithCache(cache))
		apiOpts = append(apiOpts, server.WithSummaryInvalidator(cache))
	}
	analyticsService := analytics.NewService(analytics.NewDBRepository(db), cfg.Quiz.LookbackMonths, analyticsOpts...)

	api := server.NewAPI(attemptService, wrongNoteService, streakService, analyticsService, location, apiOpts...)
	verifier := identity.NewClient(cfg.Identity)
	handler := server.NewRouter(api, verifier, cfg.Server.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler,
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("Starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}
