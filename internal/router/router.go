package router

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"leagueportal/internal/auth"
	"leagueportal/internal/config"
	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/handler"
	"leagueportal/internal/logger"
	"leagueportal/internal/metrics"
	"leagueportal/internal/model"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth    *handler.AuthHandler
	Player  *handler.PlayerHandler
	Payment *handler.PaymentHandler
	Admin   *handler.AdminHandler
	Upload  *handler.UploadHandler
}

// HealthCheck reports whether backing stores are reachable.
type HealthCheck func(ctx context.Context) error

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *slog.Logger,
	authMW echo.MiddlewareFunc,
	health HealthCheck,
	h Handlers,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(cors(cfg.HTTP.PublicBaseURL))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		if health != nil {
			if err := health(c.Request().Context()); err != nil {
				log.Warn("health check failed", logger.Err(err))
				return c.String(http.StatusServiceUnavailable, "unavailable")
			}
		}
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	limited := rateLimiter(cfg.HTTP.AuthRateLimit, cfg.HTTP.AuthRateBurst)

	// Public routes
	api.POST("/auth/signup", h.Auth.Signup, limited)
	api.POST("/auth/login", h.Auth.Login, limited)
	// Gateway callbacks arrive from a few shared egress IPs, so they are
	// size-capped instead of rate limited.
	api.POST("/payments/webhook", h.Payment.Webhook, middleware.BodyLimit("64K"))
	api.GET("/payments/redirect", h.Payment.Redirect)

	// Secured routes (session cookie or bearer token)
	secured := api.Group("", authMW)
	secured.POST("/auth/logout", h.Auth.Logout)
	secured.GET("/auth/me", h.Auth.Me)

	secured.POST("/players/register", h.Player.Register)
	secured.GET("/players/me", h.Player.Me)

	secured.POST("/payments/create-order", h.Payment.CreateOrder)
	secured.GET("/payments/me", h.Payment.MyPayments)

	secured.POST("/uploads/image", h.Upload.UploadImage)
	secured.GET("/uploads/auth", h.Upload.UploadAuth)

	// Admin routes
	admin := secured.Group("/admin", auth.RequireRole(model.RoleAdmin))
	admin.GET("/players", h.Admin.ListPlayers)
	admin.GET("/payments", h.Admin.ListPayments)
	admin.GET("/stats", h.Admin.Stats)
	admin.GET("/users", h.Admin.ListUsers)
	admin.DELETE("/users/:id", h.Admin.DeleteUser)
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("request_id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, logger.Err(v.Error))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			log.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

func cors(publicBaseURL string) echo.MiddlewareFunc {
	if publicBaseURL == "" {
		return middleware.CORS()
	}
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{strings.TrimRight(publicBaseURL, "/")},
		AllowCredentials: true,
	})
}

func rateLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "unable to identify client",
				Code:  "FORBIDDEN",
			})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, apperrors.ErrorResponse{
				Error: "Too many requests",
				Code:  "RATE_LIMITED",
			})
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
