package dto

import "internhub_backend/internal/models"

// --- Auth Requests ---

type RegisterRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"required,is-user-role"`

	// Только для работодателей
	CompanyName string `json:"company_name" validate:"omitempty,max=200"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Auth Responses ---

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
