package dto

type AuthRequestDTO struct {
	Password string `json:"password" validate:"required"`
}

type AuthResponseDTO struct {
	Success bool `json:"success"`
}
