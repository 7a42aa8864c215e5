package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/config"
	"github.com/xavierca1/postcard-ads/internal/entity"
	"github.com/xavierca1/postcard-ads/internal/infra/cache"
	"github.com/xavierca1/postcard-ads/internal/infra/database"
	"github.com/xavierca1/postcard-ads/internal/infra/http/handlers"
	"github.com/xavierca1/postcard-ads/internal/infra/http/router"
	"github.com/xavierca1/postcard-ads/internal/infra/mail"
	"github.com/xavierca1/postcard-ads/internal/infra/qrcode"
	"github.com/xavierca1/postcard-ads/internal/logger"
	"github.com/xavierca1/postcard-ads/internal/usecase"
)

const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Must(cfg.LogLevel, !cfg.IsProduction())
	defer log.Sync()

	cfg.Validate(log)
	if err := cfg.RequireDatabase(); err != nil {
		log.Fatal("cannot start api", zap.Error(err))
	}

	db, err := database.NewDBConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	// 1. Repositories
	spotRepo := database.NewAdSpotRepository(db)
	analyticsRepo := database.NewAnalyticsRepository(db)
	var pageRepo entity.LandingPageRepository = database.NewLandingPageRepository(db)

	var cachePinger handlers.CachePinger
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Warn("redis unavailable, landing page cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			pageCache := cache.NewLandingPageCache(pageRepo, client, cache.DefaultTTL, log)
			pageRepo = pageCache
			cachePinger = pageCache
		}
	}

	// 2. Adapters
	mailSender := mail.NewEmailSender(
		cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password,
		cfg.Mail.From, cfg.ContactToEmail,
	)
	renderer := qrcode.NewRenderer()

	// 3. Use cases
	recordConversionUC := usecase.NewRecordConversionUseCase(analyticsRepo, log)
	recordScanUC := usecase.NewRecordScanUseCase(pageRepo, spotRepo, analyticsRepo, log)
	sendContactUC := usecase.NewSendContactUseCase(mailSender, log)

	// 4. Handlers
	pages := handlers.NewPagesHandler(cfg.PublicBaseURL)
	h := router.Handlers{
		ClaimOffer: handlers.NewClaimOfferHandler(recordConversionUC, log),
		Contact:    handlers.NewContactHandler(sendContactUC, log),
		QR:         handlers.NewQRHandler(renderer, log),
		Offer:      handlers.NewOfferHandler(pageRepo, log),
		Scan:       handlers.NewScanHandler(recordScanUC, cfg.PublicBaseURL, pages, log),
		Pages:      pages,
		Health:     handlers.NewHealthHandler(db, cachePinger, version),
	}

	// 5. Server
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(h, cfg.CORSAllowedOrigins, log),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("🔥 postcard ads api listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
