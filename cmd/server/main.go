package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"backoffice/docs"
	"backoffice/internal/auth"
	"backoffice/internal/cache"
	"backoffice/internal/config"
	"backoffice/internal/db"
	"backoffice/internal/handler"
	"backoffice/internal/logger"
	"backoffice/internal/metrics"
	"backoffice/internal/repository"
	"backoffice/internal/router"
	"backoffice/internal/service"
)

// @title Back-office API
// @version 1.0
// @description Admin back-office for products, users, testimonials and the newsletter. Protected routes require the auth-token session cookie set by /auth/login.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth-token
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logg := logger.New(cfg.LogLevel)

	gormDB, err := db.NewMySQL(cfg.Database.MySQLDSN)
	if err != nil {
		logg.Error("database init", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.ResetDB {
		logg.Warn("RESET_DB=true detected, dropping all tables")
		db.Reset(gormDB, logg)
	}
	if err := db.Migrate(gormDB); err != nil {
		logg.Error("auto-migrate", slog.Any("error", err))
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "backoffice:")
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		logg.Warn("redis unreachable, serving without cache", slog.Any("error", err))
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	subscriberRepo := repository.NewSubscriberRepository(gormDB)

	// Initialize auth components
	m := metrics.New()
	hasher := auth.NewPasswordHasher(cfg.Database.BcryptCost)
	codec, err := auth.NewTokenCodec(cfg.Auth.Secret,
		auth.WithTTL(cfg.Auth.TokenTTL),
		auth.WithClockSkew(cfg.Auth.ClockSkew),
	)
	if err != nil {
		logg.Error("token codec", slog.Any("error", err))
		os.Exit(1)
	}
	sessions := auth.NewSessionManager(accountRepo, hasher, codec,
		auth.WithSecureCookies(cfg.IsProduction()),
		auth.WithLogger(logg),
		auth.WithObserver(m),
	)

	// Initialize services
	accountService := service.NewAccountService(accountRepo, hasher, cacheClient)
	productService := service.NewProductService(productRepo, cacheClient, cfg.Cache.ProductTTL)
	testimonialService := service.NewTestimonialService(testimonialRepo, cacheClient)
	newsletterService := service.NewNewsletterService(subscriberRepo, cacheClient)
	statsService := service.NewStatsService(productRepo, accountRepo, subscriberRepo, testimonialRepo, cacheClient, cfg.Cache.StatsTTL)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	router.Register(e, logg, sessions, m, router.Handlers{
		Auth:         handler.NewAuthHandler(sessions, cfg.AppURL),
		Users:        handler.NewUserHandler(accountService),
		Products:     handler.NewProductHandler(productService),
		Testimonials: handler.NewTestimonialHandler(testimonialService),
		Newsletter:   handler.NewNewsletterHandler(newsletterService),
		Stats:        handler.NewStatsHandler(statsService),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.ServerPort
	go func() {
		logg.Info("server listening", slog.String("addr", addr), slog.String("env", cfg.Environment))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error("server start", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error("server shutdown", slog.Any("error", err))
	}
	logg.Info("server stopped")
}
