package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Activity actions recorded in the contract history.
const (
	ActivityCreated   = "CREATED"
	ActivityUpdated   = "UPDATED"
	ActivityGenerated = "GENERATED"
	ActivitySigned    = "SIGNED"
	ActivitySent      = "SENT"
	ActivityCancelled = "CANCELLED"
)

// ActivityLog is the append-only contract history. Every accepted status
// transition writes exactly one entry with the from/to pair in Details.
type ActivityLog struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ContractID uuid.UUID      `json:"contract_id" gorm:"type:uuid;not null;index"`
	Action     string         `json:"action" gorm:"type:varchar(20);not null"`
	UserID     string         `json:"user_id" gorm:"type:varchar(100);not null"`
	UserName   string         `json:"user_name" gorm:"type:varchar(255);not null"`
	Details    datatypes.JSON `json:"details,omitempty" gorm:"type:jsonb"`
	Timestamp  time.Time      `json:"timestamp" gorm:"not null;autoCreateTime"`
}
