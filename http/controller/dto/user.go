package dto

type UpdateProfileRequestDTO struct {
	FirstName *string `json:"firstName,omitempty" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName,omitempty" binding:"omitempty,max=100"`
}

type UpdatePreferencesRequestDTO struct {
	Preferences map[string]any `json:"preferences" binding:"required"`
}
