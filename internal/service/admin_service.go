package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"leagueportal/internal/cache"
	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/logger"
	"leagueportal/internal/model"
	"leagueportal/internal/repository"
)

const (
	adminStatsCacheKey = "admin:stats"
	adminStatsTTL      = 30 * time.Second
	defaultPageLimit   = 10
)

// Stats summarizes the league for the admin dashboard.
type Stats struct {
	TotalPlayers int64           `json:"totalPlayers"`
	TotalUsers   int64           `json:"totalUsers"`
	TotalMoney   decimal.Decimal `json:"totalMoney"`
}

// PlayerQuery selects a page of players. Limit 0 returns every player.
type PlayerQuery struct {
	Page          int
	Limit         int
	PaymentStatus model.PaymentStatus
}

// Pagination describes a page of a listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// AdminService serves the admin dashboard.
type AdminService interface {
	ListPlayers(ctx context.Context, q PlayerQuery) ([]model.Player, Pagination, error)
	ListPayments(ctx context.Context) ([]model.Payment, error)
	Stats(ctx context.Context) (*Stats, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error
}

type adminService struct {
	users    repository.UserRepository
	players  repository.PlayerRepository
	payments repository.PaymentRepository
	cache    *cache.Client
	log      *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(users repository.UserRepository, players repository.PlayerRepository, payments repository.PaymentRepository, cache *cache.Client, log *slog.Logger) AdminService {
	return &adminService{
		users:    users,
		players:  players,
		payments: payments,
		cache:    cache,
		log:      log,
	}
}

func (s *adminService) ListPlayers(ctx context.Context, q PlayerQuery) ([]model.Player, Pagination, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 0 {
		q.Limit = defaultPageLimit
	}
	switch q.PaymentStatus {
	case "", model.PaymentStatusPending, model.PaymentStatusCompleted:
	default:
		// Player records only move between pending and completed.
		return nil, Pagination{}, fmt.Errorf("%w: unknown paymentStatus %q", apperrors.ErrValidation, q.PaymentStatus)
	}

	filter := repository.PlayerFilter{Status: q.PaymentStatus, Limit: q.Limit}
	if q.Limit > 0 {
		filter.Offset = (q.Page - 1) * q.Limit
	}

	players, total, err := s.players.List(ctx, filter)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list players: %w", err)
	}

	page := Pagination{Total: total, Page: q.Page, Limit: q.Limit, TotalPages: 1}
	if q.Limit > 0 {
		page.TotalPages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}
	return players, page, nil
}

func (s *adminService) ListPayments(ctx context.Context) ([]model.Payment, error) {
	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// Stats returns cached totals when available, otherwise computes them
// concurrently and caches the result.
func (s *adminService) Stats(ctx context.Context) (*Stats, error) {
	const op = "service.adminService.Stats"

	var cached Stats
	if s.cache.GetJSON(ctx, adminStatsCacheKey, &cached) {
		return &cached, nil
	}

	var stats Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.players.CountByStatus(gctx, model.PaymentStatusCompleted)
		stats.TotalPlayers = n
		return err
	})
	g.Go(func() error {
		n, err := s.users.Count(gctx)
		stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		sum, err := s.payments.SumCompleted(gctx)
		stats.TotalMoney = sum
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.SetJSON(ctx, adminStatsCacheKey, stats, adminStatsTTL); err != nil {
		s.log.Warn("failed to cache admin stats", slog.String("op", op), logger.Err(err))
	}
	return &stats, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user account. Admins cannot delete themselves.
func (s *adminService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	const op = "service.adminService.DeleteUser"

	if actorID == userID {
		return apperrors.ErrCannotDeleteSelf
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Delete(ctx, adminStatsCacheKey); err != nil {
		s.log.Warn("failed to invalidate admin stats", slog.String("op", op), logger.Err(err))
	}
	s.log.Info("user deleted",
		slog.String("op", op),
		slog.String("actor_id", actorID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}
