package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/model"
)

const (
	// CookieName carries the session token for browser clients.
	CookieName = "auth-token"

	claimsContextKey = "claims"
)

var errTokenRevoked = errors.New("token revoked")

// Middleware authenticates requests from the Authorization bearer header or
// the auth cookie and stores *Claims in the echo context.
func Middleware(jwtService *JWTService, store TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + CookieName,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			revoked, err := store.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
			if err != nil {
				return nil, err
			}
			if revoked {
				return nil, errTokenRevoked
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "Unauthorized",
				Code:  "UNAUTHENTICATED",
			})
		},
	})
}

// ClaimsFrom returns the claims stored by Middleware.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

// RequireRole rejects authenticated callers lacking role with 403.
func RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "Unauthorized",
					Code:  "UNAUTHENTICATED",
				})
			}
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "Forbidden - Admin access required",
					Code:  "UNAUTHORIZED",
				})
			}
			return next(c)
		}
	}
}
