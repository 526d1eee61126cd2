package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Signature struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ContractID   uuid.UUID      `json:"contract_id" gorm:"type:uuid;not null;index"`
	PartyID      uuid.UUID      `json:"party_id" gorm:"type:uuid;not null"`
	SignerName   string         `json:"signer_name" gorm:"type:varchar(255);not null"`
	SignerEmail  string         `json:"signer_email" gorm:"type:varchar(255);not null"`
	DocumentHash string         `json:"document_hash" gorm:"type:varchar(64);not null"`
	Evidence     datatypes.JSON `json:"evidence,omitempty" gorm:"type:jsonb"`
	SignedAt     time.Time      `json:"signed_at" gorm:"not null;autoCreateTime"`
}

// SignatureToken is a single-use guest signing token. Only the SHA-256 hash
// of the token is stored; the raw value is returned once at creation.
type SignatureToken struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ContractID uuid.UUID  `json:"contract_id" gorm:"type:uuid;not null;index"`
	PartyID    uuid.UUID  `json:"party_id" gorm:"type:uuid;not null"`
	TokenHash  string     `json:"-" gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt  time.Time  `json:"expires_at" gorm:"not null;index"`
	UsedAt     *time.Time `json:"used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at" gorm:"not null;autoCreateTime"`
}
