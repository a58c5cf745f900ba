package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"leagueportal/internal/auth"
	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/logger"
	"leagueportal/internal/model"
	"leagueportal/internal/repository"
)

const bcryptCost = 10

// SignupInput carries a new account's credentials.
type SignupInput struct {
	Name     string
	Phone    string
	Password string
}

// AuthService handles account and session operations.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*model.User, string, error)
	Login(ctx context.Context, phone, password string) (*model.User, string, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	CreateAdmin(ctx context.Context, in SignupInput) (*model.User, error)
	Promote(ctx context.Context, phone string) (*model.User, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	log        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, log *slog.Logger) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
		log:        log,
	}
}

// Signup creates a user with role user and issues a session token.
func (s *authService) Signup(ctx context.Context, in SignupInput) (*model.User, string, error) {
	const op = "service.authService.Signup"
	log := s.log.With(slog.String("op", op))

	user, err := s.createUser(ctx, in, model.RoleUser)
	if err != nil {
		return nil, "", err
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("%s: generate token: %w", op, err)
	}

	log.Info("user signed up", slog.String("user_id", user.ID.String()))
	return user, token, nil
}

// Login verifies phone and password and issues a session token.
func (s *authService) Login(ctx context.Context, phone, password string) (*model.User, string, error) {
	const op = "service.authService.Login"

	user, err := s.users.FindByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%s: find user: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("%s: generate token: %w", op, err)
	}
	return user, token, nil
}

// Logout revokes the token described by claims until it would have expired.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	const op = "service.authService.Logout"

	if claims == nil || claims.ID == "" {
		return nil
	}
	if err := s.tokenStore.BlacklistAccessToken(ctx, claims.ID, s.jwtService.Remaining(claims)); err != nil {
		s.log.Error("failed to revoke token", slog.String("op", op), logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// CreateAdmin creates a user with role admin. It is only reachable from the
// operator CLI.
func (s *authService) CreateAdmin(ctx context.Context, in SignupInput) (*model.User, error) {
	user, err := s.createUser(ctx, in, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	s.log.Info("admin created", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Promote grants role admin to the user with the given phone.
func (s *authService) Promote(ctx context.Context, phone string) (*model.User, error) {
	const op = "service.authService.Promote"

	user, err := s.users.FindByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: find user: %w", op, err)
	}
	if user.IsAdmin() {
		return user, nil
	}
	if err := s.users.UpdateRole(ctx, user.ID, model.RoleAdmin); err != nil {
		return nil, fmt.Errorf("%s: update role: %w", op, err)
	}
	user.Role = model.RoleAdmin
	return user, nil
}

func (s *authService) createUser(ctx context.Context, in SignupInput, role model.Role) (*model.User, error) {
	phone := strings.TrimSpace(in.Phone)
	name := strings.TrimSpace(in.Name)
	if name == "" || phone == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, phone and password are required", apperrors.ErrValidation)
	}

	_, err := s.users.FindByPhone(ctx, phone)
	if err == nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
