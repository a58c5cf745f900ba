package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"leagueportal/internal/model"
)

// PlayerFilter narrows admin player listings. Limit 0 disables pagination.
type PlayerFilter struct {
	Status model.PaymentStatus
	Offset int
	Limit  int
}

// PlayerRepository defines player record store operations.
type PlayerRepository interface {
	// Create returns gorm.ErrDuplicatedKey when the user already owns a player.
	Create(ctx context.Context, player *model.Player) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Player, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Player, error)
	List(ctx context.Context, filter PlayerFilter) ([]model.Player, int64, error)
	CountByStatus(ctx context.Context, status model.PaymentStatus) (int64, error)
	// MarkPaid records the settled fee on the player.
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time, transactionID string) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *model.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *playerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Player, error) {
	var player model.Player
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Player, error) {
	var player model.Player
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// List returns players newest registration first along with the unpaginated total.
func (r *playerRepository) List(ctx context.Context, filter PlayerFilter) ([]model.Player, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Player{})
	if filter.Status != "" {
		query = query.Where("payment_status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("registration_date DESC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	var players []model.Player
	if err := query.Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *playerRepository) CountByStatus(ctx context.Context, status model.PaymentStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Player{}).
		Where("payment_status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *playerRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time, transactionID string) error {
	return r.db.WithContext(ctx).Model(&model.Player{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": model.PaymentStatusCompleted,
			"payment_date":   paidAt,
			"transaction_id": transactionID,
		}).Error
}
