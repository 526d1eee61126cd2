package dto

type CreateTokenRequestDTO struct {
	ContractID       string `json:"contractId" binding:"required,uuid"`
	PartyID          string `json:"partyId" binding:"required,uuid"`
	ExpiresInMinutes int    `json:"expiresInMinutes,omitempty" binding:"omitempty,min=5,max=20160"`
}

type SignRequestDTO struct {
	ContractID string         `json:"contractId" binding:"required,uuid"`
	PartyID    string         `json:"partyId" binding:"required,uuid"`
	Evidence   map[string]any `json:"evidence,omitempty"`
}

type SignGuestRequestDTO struct {
	Token      string         `json:"token" binding:"required"`
	SignerName string         `json:"signerName,omitempty"`
	Evidence   map[string]any `json:"evidence,omitempty"`
}

type EvidenceRequestDTO struct {
	Evidence map[string]any `json:"evidence" binding:"required"`
}

type VerifyCertificateRequestDTO struct {
	Certificate map[string]any `json:"certificate" binding:"required"`
}
