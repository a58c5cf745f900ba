package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leagueportal/internal/model"
)

type mockTokenStore struct {
	mock.Mock
}

func (m *mockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *mockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func newProtectedServer(svc *JWTService, store TokenStoreInterface, extra ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	mws := append([]echo.MiddlewareFunc{Middleware(svc, store)}, extra...)
	e.GET("/protected", func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return c.NoContent(http.StatusTeapot)
		}
		return c.String(http.StatusOK, claims.Phone)
	}, mws...)
	return e
}

func TestMiddleware(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	user := testUser()
	token, claims, err := svc.GenerateToken(user)
	require.NoError(t, err)

	tests := []struct {
		name       string
		setup      func(*http.Request)
		revoked    bool
		wantStatus int
	}{
		{
			name:       "bearer header",
			setup:      func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+token) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "cookie",
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: CookieName, Value: token}) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			setup:      func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: CookieName, Value: "junk"}) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "revoked token",
			setup:      func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+token) },
			revoked:    true,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockTokenStore)
			store.On("IsAccessTokenBlacklisted", mock.Anything, claims.ID).Return(tt.revoked, nil).Maybe()

			e := newProtectedServer(svc, store)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, user.Phone, rec.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	store := new(mockTokenStore)
	store.On("IsAccessTokenBlacklisted", mock.Anything, mock.Anything).Return(false, nil)
	e := newProtectedServer(svc, store, RequireRole(model.RoleAdmin))

	userToken, _, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	admin := testUser()
	admin.Role = model.RoleAdmin
	adminToken, _, err := svc.GenerateToken(admin)
	require.NoError(t, err)

	for token, want := range map[string]int{userToken: http.StatusForbidden, adminToken: http.StatusOK} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code)
	}
}
