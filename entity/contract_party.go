package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	PartyRoleHost    = "HOST"
	PartyRoleGuest   = "GUEST"
	PartyRoleWitness = "WITNESS"
)

const (
	PartySignaturePending = "PENDING"
	PartySignatureInvited = "INVITED"
	PartySignatureSigned  = "SIGNED"
)

type ContractParty struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ContractID      uuid.UUID  `json:"contract_id" gorm:"type:uuid;not null;uniqueIndex:idx_party_email"`
	Role            string     `json:"role" gorm:"type:varchar(10);not null"`
	Name            string     `json:"name" gorm:"type:varchar(255);not null"`
	Email           string     `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:idx_party_email"`
	SignatureStatus string     `json:"signature_status" gorm:"type:varchar(10);not null;default:'PENDING'"`
	SignedAt        *time.Time `json:"signed_at,omitempty"`
	SigningOrder    int        `json:"order" gorm:"not null;default:1"`
	CreatedAt       time.Time  `json:"created_at" gorm:"not null;autoCreateTime"`
}

// IsValidPartyRole reports whether role is one of the accepted party roles.
func IsValidPartyRole(role string) bool {
	return role == PartyRoleHost || role == PartyRoleGuest || role == PartyRoleWitness
}
