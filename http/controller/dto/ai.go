package dto

type ValidateInputRequestDTO struct {
	ContractType string         `json:"contractType" binding:"required"`
	Inputs       map[string]any `json:"inputs"`
}

type AIGenerateRequestDTO struct {
	ContractID   string         `json:"contractId,omitempty"`
	TemplateID   string         `json:"templateId,omitempty"`
	ContractType string         `json:"contractType" binding:"required"`
	Jurisdiction string         `json:"jurisdiction,omitempty"`
	Inputs       map[string]any `json:"inputs" binding:"required"`
}

type AIRegenerateRequestDTO struct {
	ContractID string `json:"contractId,omitempty"`
	Feedback   string `json:"feedback" binding:"required"`
}
