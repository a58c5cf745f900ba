package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/model"
)

// Settlement describes a compare-and-swap status change on a payment.
type Settlement struct {
	PaymentID     uuid.UUID
	From          model.PaymentStatus
	To            model.PaymentStatus
	UPITxnID      string
	TransactionID string
}

// PaymentRepository defines payment ledger operations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindByClientTxnID(ctx context.Context, clientTxnID string) (*model.Payment, error)
	// FindByClientTxnIDForUpdate locks the row until the surrounding transaction ends.
	FindByClientTxnIDForUpdate(ctx context.Context, clientTxnID string) (*model.Payment, error)
	ListAll(ctx context.Context) ([]model.Payment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error)
	SumCompleted(ctx context.Context) (decimal.Decimal, error)
	// Settle applies s only if the payment is still in s.From; otherwise it
	// returns errors.ErrStaleStatus.
	Settle(ctx context.Context, s Settlement) error
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new payment record.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByClientTxnID(ctx context.Context, clientTxnID string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.WithContext(ctx).Where("client_txn_id = ?", clientTxnID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByClientTxnIDForUpdate(ctx context.Context, clientTxnID string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("client_txn_id = ?", clientTxnID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListAll returns every payment, newest first.
func (r *paymentRepository) ListAll(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// SumCompleted totals the amount of completed payments; zero when there are none.
func (r *paymentRepository) SumCompleted(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select("SUM(amount)").
		Where("payment_status = ?", model.PaymentStatusCompleted).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *paymentRepository) Settle(ctx context.Context, s Settlement) error {
	updates := map[string]interface{}{
		"payment_status": s.To,
		"transaction_id": s.TransactionID,
	}
	if s.UPITxnID != "" {
		updates["upi_txn_id"] = s.UPITxnID
	}

	res := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ? AND payment_status = ?", s.PaymentID, s.From).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrStaleStatus
	}
	return nil
}

// PaymentEventRepository persists the gateway status audit trail.
type PaymentEventRepository interface {
	Create(ctx context.Context, event *model.PaymentEvent) error
	CreateBatch(ctx context.Context, events []model.PaymentEvent) error
	ListByClientTxnID(ctx context.Context, clientTxnID string) ([]model.PaymentEvent, error)
}

type paymentEventRepository struct {
	db *gorm.DB
}

// NewPaymentEventRepository creates a new payment event repository.
func NewPaymentEventRepository(db *gorm.DB) PaymentEventRepository {
	return &paymentEventRepository{db: db}
}

func (r *paymentEventRepository) Create(ctx context.Context, event *model.PaymentEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// CreateBatch inserts events in batches of 100.
func (r *paymentEventRepository) CreateBatch(ctx context.Context, events []model.PaymentEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(events, 100).Error
}

func (r *paymentEventRepository) ListByClientTxnID(ctx context.Context, clientTxnID string) ([]model.PaymentEvent, error) {
	var events []model.PaymentEvent
	err := r.db.WithContext(ctx).Where("client_txn_id = ?", clientTxnID).Order("created_at ASC").Find(&events).Error
	return events, err
}
