package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvitationStatusSent      = "SENT"
	InvitationStatusCancelled = "CANCELLED"
)

type Invitation struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ContractID     uuid.UUID `json:"contract_id" gorm:"type:uuid;not null;index"`
	PartyID        uuid.UUID `json:"party_id" gorm:"type:uuid;not null"`
	RecipientEmail string    `json:"recipient_email" gorm:"type:varchar(255);not null"`
	RecipientName  string    `json:"recipient_name" gorm:"type:varchar(255)"`
	Message        string    `json:"message,omitempty" gorm:"type:text"`
	Status         string    `json:"status" gorm:"type:varchar(20);not null;default:'SENT'"`
	SentCount      int       `json:"sent_count" gorm:"not null;default:1"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Reminder struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ContractID uuid.UUID  `json:"contract_id" gorm:"type:uuid;not null;index"`
	RemindAt   time.Time  `json:"remind_at" gorm:"not null;index"`
	Message    string     `json:"message,omitempty" gorm:"type:text"`
	CreatedBy  string     `json:"created_by" gorm:"type:varchar(100);not null"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at" gorm:"not null;autoCreateTime"`
}
