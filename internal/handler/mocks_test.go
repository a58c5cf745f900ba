package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leagueportal/internal/auth"
	"leagueportal/internal/model"
	"leagueportal/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, in service.SignupInput) (*model.User, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, phone, password string) (*model.User, string, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) CreateAdmin(ctx context.Context, in service.SignupInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Promote(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) Register(ctx context.Context, userID uuid.UUID, in service.RegisterPlayerInput) (*model.Player, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Player), args.Error(1)
}

func (m *MockPlayerService) GetForUser(ctx context.Context, userID uuid.UUID) (*model.Player, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Player), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateOrder(ctx context.Context, userID uuid.UUID, baseURL string) (*service.CreatedOrder, error) {
	args := m.Called(ctx, userID, baseURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CreatedOrder), args.Error(1)
}

func (m *MockPaymentService) HandleWebhook(ctx context.Context, n service.WebhookNotification) (*service.WebhookResult, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WebhookResult), args.Error(1)
}

func (m *MockPaymentService) ResolveRedirect(ctx context.Context, clientTxnID string) service.RedirectOutcome {
	args := m.Called(ctx, clientTxnID)
	return args.Get(0).(service.RedirectOutcome)
}

func (m *MockPaymentService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListPlayers(ctx context.Context, q service.PlayerQuery) ([]model.Player, service.Pagination, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, service.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]model.Player), args.Get(1).(service.Pagination), args.Error(2)
}

func (m *MockAdminService) ListPayments(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockAdminService) Stats(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Stats), args.Error(1)
}

func (m *MockAdminService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	args := m.Called(ctx, actorID, userID)
	return args.Error(0)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, img *service.ImageUpload) (string, error) {
	args := m.Called(ctx, img)
	return args.String(0), args.Error(1)
}

func (m *MockUploadService) PresignImage(ctx context.Context, filename string) (*service.UploadTicket, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadTicket), args.Error(1)
}

// allowAllTokens never reports a token as revoked.
type allowAllTokens struct{}

func (allowAllTokens) BlacklistAccessToken(context.Context, string, time.Duration) error { return nil }

func (allowAllTokens) IsAccessTokenBlacklisted(context.Context, string) (bool, error) {
	return false, nil
}

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error { return tv.v.Struct(i) }

type testEnv struct {
	e          *echo.Echo
	jwtService *auth.JWTService
	authMW     echo.MiddlewareFunc
}

func newTestEnv() *testEnv {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	svc := auth.NewJWTService("handler-test-secret", time.Hour)
	return &testEnv{e: e, jwtService: svc, authMW: auth.Middleware(svc, allowAllTokens{})}
}

func (env *testEnv) token(t *testing.T, user *model.User) string {
	t.Helper()
	token, _, err := env.jwtService.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func (env *testEnv) do(method, target, body, contentType, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func testUser(role model.Role) *model.User {
	return &model.User{ID: uuid.New(), Name: "Ravi", Phone: "9000000001", Role: role}
}
