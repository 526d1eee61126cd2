package dto

type SendInvitationRequestDTO struct {
	ContractID string `json:"contractId" binding:"required,uuid"`
	PartyID    string `json:"partyId" binding:"required,uuid"`
	Message    string `json:"message,omitempty" binding:"omitempty,max=2000"`
}

type ScheduleReminderRequestDTO struct {
	ContractID string `json:"contractId" binding:"required,uuid"`
	RemindAt   string `json:"remindAt" binding:"required"`
	Message    string `json:"message,omitempty" binding:"omitempty,max=2000"`
}
