// Daily Form API
//
// REST API for morning and evening check-ins, seven-day trends and weekly
// AI summaries.
//
//	@title			Daily Form API
//	@version		1.0
//	@description	Morning and evening check-ins, seven-day trends and weekly AI summaries.
//
//	@BasePath	/api/dailyform
//
//	@tag.name			forms
//	@tag.description	Morning and evening form submissions
//
//	@tag.name			trends
//	@tag.description	Seven-day chart data
//
//	@tag.name			summaries
//	@tag.description	Weekly AI summaries and feedback
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // TREND_TIMEZONE must resolve on images without zoneinfo

	"github.com/blaisecz/dailyform-tracker/internal/api"
	"github.com/blaisecz/dailyform-tracker/internal/api/handler"
	"github.com/blaisecz/dailyform-tracker/internal/config"
	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/internal/langfuse"
	"github.com/blaisecz/dailyform-tracker/internal/llm"
	"github.com/blaisecz/dailyform-tracker/internal/logging"
	"github.com/blaisecz/dailyform-tracker/internal/ratelimit"
	"github.com/blaisecz/dailyform-tracker/internal/repository"
	"github.com/blaisecz/dailyform-tracker/internal/seed"
	"github.com/blaisecz/dailyform-tracker/internal/service"
	"github.com/blaisecz/dailyform-tracker/internal/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:          "dailyform-api",
	Short:        "Daily form tracker API",
	RunE:         runServe,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo morning and evening forms",
	RunE:  runSeed,
}

var langfuseCheckCmd = &cobra.Command{
	Use:   "langfuse-check",
	Short: "Send a test trace and score to Langfuse",
	RunE:  runLangfuseCheck,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, langfuseCheckCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// migrate creates the three tables, including the (user_id, created_at)
// unique index the summary upsert relies on.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.MorningEntry{}, &domain.EveningEntry{}, &domain.DailySummary{})
}

func openDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := config.NewDatabase(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connected")
	return db, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := logging.New(cfg)
	defer logger.Sync()

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	if err := migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	logger.Info("database migration completed")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := logging.New(cfg)
	defer logger.Sync()

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	return seed.Run(db, cfg.Location(), logger)
}

func runLangfuseCheck(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := logging.New(cfg)
	defer logger.Sync()

	client := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      logger,
	})
	if !client.IsEnabled() {
		return errors.New("langfuse is disabled: set LANGFUSE_BASE_URL, LANGFUSE_PUBLIC_KEY and LANGFUSE_SECRET_KEY")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		UserID: "langfuse-check",
		Name:   "connection-test",
		Input:  map[string]any{"message": "connection test"},
		Output: map[string]any{"status": "ok"},
		Tags:   []string{"test"},
	})
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	if err := client.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    "connection_test",
		Value:   1,
		Comment: "Automated connectivity check",
	}); err != nil {
		return fmt.Errorf("create score: %w", err)
	}
	if err := client.Close(ctx); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "trace sent: %s/trace/%s\n", cfg.LangfuseBaseURL, traceID)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := logging.New(cfg)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	if telemetry.Enabled(cfg) {
		logger.Info("OpenTelemetry tracing enabled", zap.String("endpoint", cfg.LangfuseBaseURL))
	}

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	if err := migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	logger.Info("database migration completed")

	if cfg.Seed {
		logger.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(db, cfg.Location(), logger); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	// Langfuse
	lf := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      logger,
	})
	if !lf.IsEnabled() {
		logger.Info("Langfuse not configured, summary traces and feedback scores are disabled")
	}

	directive := service.DefaultSummaryDirective
	loader := langfuse.NewPromptLoader(langfuse.PromptConfig{
		BaseURL:   cfg.LangfuseBaseURL,
		PublicKey: cfg.LangfusePublicKey,
		SecretKey: cfg.LangfuseSecretKey,
		Name:      cfg.LangfuseSummaryPrompt,
		Label:     cfg.LangfusePromptLabel,
		CachePath: cfg.SummaryPromptPath,
	}, logger)
	if prompt, err := loader.Load(ctx); err == nil {
		directive = prompt
		logger.Info("summary prompt loaded", zap.String("name", cfg.LangfuseSummaryPrompt))
	} else if cfg.LangfuseSummaryPrompt != "" || cfg.SummaryPromptPath != "" {
		logger.Warn("summary prompt unavailable, using built-in directive", zap.Error(err))
	}

	generator := llm.NewFromConfig(cfg)
	if generator == nil {
		logger.Warn("text generation not configured, weekly summaries will use the local fallback",
			zap.String("provider", cfg.SummaryProvider))
	}

	// Repositories
	morningRepo := repository.NewMorningRepository(db)
	eveningRepo := repository.NewEveningRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	// Services
	location, err := cfg.ResolveLocation()
	if err != nil {
		logger.Warn("unknown trend timezone, day boundaries use the fallback zone",
			zap.String("configured", cfg.TrendTimezone),
			zap.String("fallback", location.String()),
			zap.Error(err))
	}
	calendar := service.NewCalendar(location, cfg.TrendLocale)
	formService := service.NewFormService(morningRepo, eveningRepo, calendar)
	trendService := service.NewTrendService(morningRepo, eveningRepo, calendar)
	summaryGenerator := service.NewSummaryGenerator(generator, lf, logger, service.SummaryGeneratorConfig{
		Directive: directive,
		Timeout:   cfg.SummaryTimeout(),
	})
	summaryService := service.NewSummaryService(summaryGenerator, summaryRepo, trendService, lf, calendar, logger)

	// Handlers
	errs := handler.NewErrorWriter(logger, !cfg.IsProduction())
	formHandler := handler.NewFormHandler(formService, errs)
	trendHandler := handler.NewTrendHandler(trendService, errs)
	summaryHandler := handler.NewSummaryHandler(summaryService, errs)

	opts := api.Options{
		Logger:            logger,
		AllowOrigins:      cfg.CORSAllowOrigins,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	}
	if cfg.RedisURL != "" {
		redisClient, err := ratelimit.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		opts.Limiter = ratelimit.NewRedisLimiter(
			redisClient,
			cfg.RateLimitRequests,
			time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
		)
		logger.Info("rate limiting enabled",
			zap.Int("requests", cfg.RateLimitRequests),
			zap.Int("window_seconds", cfg.RateLimitWindowSeconds))
	}

	router := api.NewRouter(formHandler, trendHandler, summaryHandler, opts)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := lf.Close(shutdownCtx); err != nil {
		logger.Warn("langfuse flush incomplete", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Warn("tracer shutdown", zap.Error(err))
	}
	return nil
}
