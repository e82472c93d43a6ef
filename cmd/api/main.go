package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receipt-certifier/config"
	"receipt-certifier/internal/adapter/analysis"
	httpHandler "receipt-certifier/internal/adapter/http/handler"
	pgStorage "receipt-certifier/internal/adapter/storage/postgres"
	redisStorage "receipt-certifier/internal/adapter/storage/redis"
	"receipt-certifier/internal/adapter/storage/static"
	"receipt-certifier/internal/core/ports"
	"receipt-certifier/internal/service"
	"receipt-certifier/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("RCPT_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Receipt Certifier")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required (RCPT_JWT_SECRET)")
	}

	ctx := context.Background()
	var healthCheckers []ports.HealthChecker

	// Certified reference receipts: PostgreSQL when enabled, embedded set otherwise
	var certifiedSource ports.CertifiedReceiptSource = static.NewSource()
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply schema")
		}
		certifiedSource = pgStorage.NewCertifiedRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}

	registry, err := service.LoadCertifiedRegistry(ctx, certifiedSource)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load certified receipts")
	}
	log.Info().Int("count", registry.Len()).Msg("Certified receipts loaded")

	// Rate limiting needs Redis; without it the limiter is off
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, rateLimitStore)
	}

	// Initialize core services
	canon := service.NewReceiptCanonicalizer()
	hasher := service.NewSHA256HashEngine()
	ledger := service.NewLedgerService(canon, hasher, cfg.Ledger.MemoPrefix, logger.Component(log, "ledger"))
	scorer := service.NewRuleBasedScorer(cfg.Scoring.Clamp)

	// Analyses from the external model arrive with the request
	analyzer := analysis.NewSuppliedAnalyzer(logger.Component(log, "analyzer"))
	assessor := service.NewAssessmentService(analyzer, scorer, cfg.Scoring.AnalyzerFallback, logger.Component(log, "assessment"))
	comparator := service.NewCertifiedComparatorService(registry, logger.Component(log, "comparator"))
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledger,
		Assessor:       assessor,
		Comparator:     comparator,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	auditSvc.Wait()

	log.Info().Msg("Server exited")
}
