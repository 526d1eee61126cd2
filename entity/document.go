package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is the metadata for a rendered contract PDF. Bytes live in MinIO
// under ObjectKey.
type Document struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ContractID uuid.UUID `json:"contract_id" gorm:"type:uuid;not null;index"`
	ObjectKey  string    `json:"object_key" gorm:"type:varchar(512);not null"`
	Hash       string    `json:"hash" gorm:"type:varchar(64);not null"`
	SizeBytes  int64     `json:"size_bytes" gorm:"not null"`
	CreatedBy  string    `json:"created_by" gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}
