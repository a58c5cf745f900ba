package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the stores bound to one transaction.
type Repositories struct {
	Users    UserRepository
	Players  PlayerRepository
	Payments PaymentRepository
}

// Transactor runs work against repositories sharing a database transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

type transactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor over db.
func NewTransactor(db *gorm.DB) Transactor {
	return &transactor{db: db}
}

// WithTransaction commits when fn returns nil and rolls back otherwise.
func (t *transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, Repositories{
			Users:    &userRepository{db: tx},
			Players:  &playerRepository{db: tx},
			Payments: &paymentRepository{db: tx},
		})
	})
}
