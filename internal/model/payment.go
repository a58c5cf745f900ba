package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus represents the status of a payment attempt or a player's fee.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Valid reports whether s is a known status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// CanTransition reports whether settlement may move a payment from s to next.
//
//	pending   -> completed | failed
//	failed    -> completed
//	completed -> (terminal)
//
// Re-applying the current terminal status is allowed so duplicate
// deliveries stay harmless.
func (s PaymentStatus) CanTransition(next PaymentStatus) bool {
	if next == PaymentStatusPending {
		return false
	}
	switch s {
	case PaymentStatusPending:
		return true
	case PaymentStatusFailed:
		return true
	case PaymentStatusCompleted:
		return next == PaymentStatusCompleted
	}
	return false
}

// Payment represents one attempt to pay the registration fee through the UPI gateway.
type Payment struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	PlayerID       uuid.UUID       `json:"playerId" gorm:"type:char(36);not null;index"`
	UserID         uuid.UUID       `json:"userId" gorm:"type:char(36);not null;index"`
	PlayerName     string          `json:"playerName" gorm:"size:255;not null"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date           time.Time       `json:"date" gorm:"not null;index"`
	Status         PaymentStatus   `json:"paymentStatus" gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index"`
	TransactionID  string          `json:"transactionId" gorm:"size:128"`
	OrderID        string          `json:"orderId" gorm:"size:64"`
	ClientTxnID    string          `json:"clientTxnId" gorm:"size:64;not null;uniqueIndex"`
	PaymentURL     string          `json:"paymentUrl" gorm:"size:1024"`
	UPITxnID       string          `json:"upiTxnId,omitempty" gorm:"column:upi_txn_id;size:128"`
	CustomerEmail  string          `json:"customerEmail" gorm:"size:255"`
	CustomerMobile string          `json:"customerMobile" gorm:"size:20"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// BeforeCreate sets UUID and attempt time before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	if p.Status == "" {
		p.Status = PaymentStatusPending
	}
	return nil
}

// ResolveTransactionID picks the canonical transaction id after a settlement:
// the gateway UPI id when supplied, else the existing one, else the client txn id.
func (p *Payment) ResolveTransactionID(upiTxnID string) string {
	if upiTxnID != "" {
		return upiTxnID
	}
	if p.TransactionID != "" {
		return p.TransactionID
	}
	return p.ClientTxnID
}
