package dto

type CreateContractRequestDTO struct {
	Title        string         `json:"title" binding:"required,min=3,max=500"`
	ContractType string         `json:"contractType" binding:"required"`
	TemplateID   string         `json:"templateId" binding:"required"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

type UpdateContractRequestDTO struct {
	Title *string `json:"title,omitempty" binding:"omitempty,min=3,max=500"`
}

type UpdateContentRequestDTO struct {
	Content string `json:"content" binding:"required"`
	Source  string `json:"source,omitempty" binding:"omitempty,oneof=AI USER"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason,omitempty"`
}

type AddPartyRequestDTO struct {
	Role         string `json:"role" binding:"required,oneof=HOST GUEST WITNESS"`
	Name         string `json:"name" binding:"required,max=255"`
	Email        string `json:"email" binding:"required,email"`
	SigningOrder int    `json:"order,omitempty" binding:"omitempty,min=1"`
}
