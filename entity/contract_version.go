package entity

import (
	"time"

	"github.com/google/uuid"
)

// VersionSource distinguishes AI-generated content from user edits.
const (
	VersionSourceAI   = "AI"
	VersionSourceUser = "USER"
)

type ContractVersion struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ContractID uuid.UUID `json:"contract_id" gorm:"type:uuid;not null;uniqueIndex:idx_contract_version"`
	Version    int       `json:"version" gorm:"not null;uniqueIndex:idx_contract_version"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Source     string    `json:"source" gorm:"type:varchar(10);not null"`
	CreatedBy  string    `json:"created_by" gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}
