package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Primary playing roles offered on the registration form.
const (
	RoleBatsman      = "Batsman"
	RoleBowler       = "Bowler"
	RoleAllRounder   = "All Rounder"
	RoleWicketKeeper = "Wicket Keeper"
)

// Player is the registration profile of a user. A user owns at most one.
type Player struct {
	ID                   uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	UserID               uuid.UUID     `json:"userId" gorm:"type:char(36);not null;uniqueIndex"`
	PlayerPhoto          string        `json:"playerPhoto" gorm:"size:1024;not null"`
	PlayerName           string        `json:"playerName" gorm:"size:255;not null"`
	ContactNumber        string        `json:"contactNumber" gorm:"size:20;not null"`
	DateOfBirth          time.Time     `json:"dateOfBirth" gorm:"type:date;not null"`
	AadharNumber         string        `json:"aadharNumber" gorm:"size:20;not null"`
	Village              string        `json:"village" gorm:"size:255;not null"`
	PostOffice           string        `json:"postOffice" gorm:"size:255;not null"`
	PoliceStation        string        `json:"policeStation" gorm:"size:255;not null"`
	City                 string        `json:"city" gorm:"size:255;not null"`
	GPSelection          string        `json:"gpSelection" gorm:"column:gp_selection;size:255;not null"`
	ParentName           string        `json:"parentName" gorm:"size:255;not null"`
	ParentContact        string        `json:"parentContact" gorm:"size:20;not null"`
	EmergencyContactName string        `json:"emergencyContactName" gorm:"size:255;not null"`
	EmergencyPhone       string        `json:"emergencyPhone" gorm:"size:20;not null"`
	BowlingStyle         []string      `json:"bowlingStyle" gorm:"type:json;serializer:json"`
	BattingStyle         []string      `json:"battingStyle" gorm:"type:json;serializer:json"`
	PrimaryRole          string        `json:"primaryRole" gorm:"size:50;not null"`
	RegistrationDate     time.Time     `json:"registrationDate" gorm:"not null;index"`
	PaymentStatus        PaymentStatus `json:"paymentStatus" gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentDate          *time.Time    `json:"paymentDate,omitempty"`
	TransactionID        *string       `json:"transactionId,omitempty" gorm:"size:128"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// BeforeCreate sets UUID, registration date and the initial payment status.
func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.RegistrationDate.IsZero() {
		p.RegistrationDate = time.Now()
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = PaymentStatusPending
	}
	return nil
}

// IsPaid reports whether the registration fee has been settled.
func (p *Player) IsPaid() bool {
	return p.PaymentStatus == PaymentStatusCompleted
}
