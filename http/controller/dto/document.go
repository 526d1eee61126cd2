package dto

type GeneratePDFRequestDTO struct {
	ContractID       string `json:"contractId" binding:"required,uuid"`
	IncludeAuditPage bool   `json:"includeAuditPage,omitempty"`
}

type VerifyDocumentRequestDTO struct {
	Hash string `json:"hash" binding:"required,len=64"`
}
