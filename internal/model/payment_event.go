package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentEventSource identifies which entry point observed a gateway status.
type PaymentEventSource string

const (
	PaymentEventWebhook  PaymentEventSource = "webhook"
	PaymentEventRedirect PaymentEventSource = "redirect"
)

// PaymentEvent is an audit entry for every gateway status observed,
// whether or not it changed the payment.
type PaymentEvent struct {
	ID            uuid.UUID          `json:"id" gorm:"type:char(36);primaryKey"`
	ClientTxnID   string             `json:"clientTxnId" gorm:"size:64;not null;index"`
	Source        PaymentEventSource `json:"source" gorm:"type:varchar(20);not null"`
	GatewayStatus string             `json:"gatewayStatus" gorm:"size:50"`
	Outcome       string             `json:"outcome" gorm:"size:50;not null"`
	UPITxnID      string             `json:"upiTxnId,omitempty" gorm:"column:upi_txn_id;size:128"`
	Remark        string             `json:"remark,omitempty" gorm:"type:text"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (e *PaymentEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
