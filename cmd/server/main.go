package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"leagueportal/docs" // swagger docs
	"leagueportal/internal/auth"
	"leagueportal/internal/cache"
	"leagueportal/internal/config"
	"leagueportal/internal/db"
	"leagueportal/internal/events"
	"leagueportal/internal/gateway"
	"leagueportal/internal/handler"
	"leagueportal/internal/logger"
	"leagueportal/internal/repository"
	"leagueportal/internal/router"
	"leagueportal/internal/service"
	"leagueportal/internal/storage"
)

// @title Laharighat Premier League API
// @version 1.0
// @description Player registration portal with UPI registration fee payments and an admin dashboard.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Browsers use the auth-token cookie instead.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", logger.Err(err))
		os.Exit(1)
	}

	log, err := logger.New("leagueportal", cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		slog.Error("init logger", logger.Err(err))
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", logger.Err(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.NewMySQL(cfg.MySQL.DSN, db.Options{
		MaxOpenConns:    cfg.MySQL.MaxOpenConns,
		MaxIdleConns:    cfg.MySQL.MaxIdleConns,
		ConnMaxLifetime: cfg.MySQL.ConnMaxLife,
	})
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	// Registered before the audit log so pending events flush first.
	defer sqlDB.Close()

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		if cfg.IsProduction() {
			log.Warn("RESET_DB ignored in production")
		} else {
			log.Warn("RESET_DB=true detected, dropping all tables")
			if err := db.Reset(gormDB); err != nil {
				return err
			}
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warn("redis unreachable, continuing without cache", logger.Err(err))
	}

	publisher := newPublisher(cfg.AMQP, log)
	defer publisher.Close()

	objectStore := newObjectStore(ctx, cfg.Storage, log)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	playerRepo := repository.NewPlayerRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)
	eventRepo := repository.NewPaymentEventRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	audit := service.NewAuditLog(eventRepo, log)
	defer audit.Close()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, log)
	playerService := service.NewPlayerService(playerRepo, log)
	paymentService := service.NewPaymentService(service.PaymentDeps{
		Users:      userRepo,
		Players:    playerRepo,
		Payments:   paymentRepo,
		Transactor: repository.NewTransactor(gormDB),
		Gateway:    gateway.NewClient(cfg.Gateway, log),
		Publisher:  publisher,
		Cache:      cacheClient,
		Audit:      audit,
	}, service.PaymentSettings{
		Fee:         cfg.Gateway.Fee(),
		ProductInfo: cfg.Gateway.ProductInfo,
		EmailDomain: cfg.Gateway.EmailDomain,
	}, log)
	adminService := service.NewAdminService(userRepo, playerRepo, paymentRepo, cacheClient, log)

	uploadSettings := service.UploadSettings{
		Folder:     cfg.Storage.Folder,
		PresignTTL: cfg.Storage.PresignTTL,
	}
	var store service.ObjectStore
	if objectStore != nil {
		store = objectStore
		uploadSettings.PublicURL = objectStore.PublicURL()
	}
	uploadService := service.NewUploadService(store, uploadSettings, log)

	if cfg.HTTP.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.HTTP.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.HTTP.ReadTimeout
	e.Server.WriteTimeout = cfg.HTTP.WriteTimeout

	router.Register(e, cfg, log, auth.Middleware(jwtService, tokenStore), healthCheck(gormDB), router.Handlers{
		Auth: handler.NewAuthHandler(authService, handler.CookieOptions{
			Secure: cfg.IsProduction(),
			MaxAge: cfg.Auth.TokenTTL,
		}),
		Player:  handler.NewPlayerHandler(playerService),
		Payment: handler.NewPaymentHandler(paymentService, cfg.HTTP.PublicBaseURL, cfg.Gateway.WebhookSecret),
		Admin:   handler.NewAdminHandler(adminService),
		Upload:  handler.NewUploadHandler(uploadService),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("port", cfg.HTTP.Port), slog.String("env", cfg.Env))
		if err := e.Start(":" + cfg.HTTP.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func healthCheck(gormDB *gorm.DB) router.HealthCheck {
	return func(ctx context.Context) error {
		return db.Ping(ctx, gormDB)
	}
}

func newPublisher(cfg config.AMQP, log *slog.Logger) events.Publisher {
	if cfg.URL == "" {
		log.Info("settlement events disabled")
		return events.NewNopPublisher()
	}
	p, err := events.NewAMQPPublisher(cfg.URL, cfg.Exchange, log)
	if err != nil {
		log.Warn("amqp unavailable, settlement events disabled", logger.Err(err))
		return events.NewNopPublisher()
	}
	return p
}

func newObjectStore(ctx context.Context, cfg config.Storage, log *slog.Logger) *storage.MinioStore {
	if !cfg.Enabled() {
		log.Info("image storage disabled")
		return nil
	}
	s, err := storage.NewMinioStore(ctx, cfg, log)
	if err != nil {
		log.Warn("image storage unavailable", logger.Err(err))
		return nil
	}
	return s
}
