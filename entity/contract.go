package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContractStatus is the lifecycle state of a contract.
type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "DRAFT"
	ContractStatusGenerated ContractStatus = "GENERATED"
	ContractStatusSigning   ContractStatus = "SIGNING"
	ContractStatusSigned    ContractStatus = "SIGNED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

// contractTransitions is the full transition table. Any pair not listed is
// illegal. GENERATED -> GENERATED covers re-generation; SIGNED and CANCELLED
// are terminal.
var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractStatusDraft:     {ContractStatusGenerated, ContractStatusCancelled},
	ContractStatusGenerated: {ContractStatusSigning, ContractStatusGenerated, ContractStatusCancelled},
	ContractStatusSigning:   {ContractStatusSigned, ContractStatusCancelled},
	ContractStatusSigned:    {},
	ContractStatusCancelled: {},
}

// ValidTransitions returns the legal target states from the given status.
// The returned slice is a copy; callers may mutate it.
func ValidTransitions(from ContractStatus) []ContractStatus {
	targets := contractTransitions[from]
	out := make([]ContractStatus, len(targets))
	copy(out, targets)
	return out
}

// CanTransition reports whether from -> to is a legal lifecycle edge.
func CanTransition(from, to ContractStatus) bool {
	for _, target := range contractTransitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status accepts no further transitions.
func IsTerminal(status ContractStatus) bool {
	return len(contractTransitions[status]) == 0
}

// IsValidContractStatus reports whether s names a known lifecycle state.
func IsValidContractStatus(s string) bool {
	_, ok := contractTransitions[ContractStatus(s)]
	return ok
}

type Contract struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string         `json:"title" gorm:"type:varchar(500);not null"`
	ContractType string         `json:"contract_type" gorm:"type:varchar(100);not null"`
	TemplateID   string         `json:"template_id" gorm:"type:varchar(100);not null"`
	OwnerUserID  string         `json:"owner_user_id" gorm:"type:varchar(100);not null;index"`
	Status       ContractStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	// LockVersion backs optimistic concurrency on status transitions.
	LockVersion int            `json:"-" gorm:"not null;default:0"`
	Metadata    datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt   time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	SignedAt    *time.Time     `json:"signed_at,omitempty"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	Versions []ContractVersion `json:"versions,omitempty" gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
	Parties  []ContractParty   `json:"parties,omitempty" gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
}
