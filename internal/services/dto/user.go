package dto

import (
	"encoding/json"

	"internhub_backend/internal/models"
)

type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`

	// Поля работодателя
	CompanyWebsite     *string `json:"company_website,omitempty" validate:"omitempty,max=300"`
	CompanyDescription *string `json:"company_description,omitempty" validate:"omitempty,max=5000"`

	// Поля студента
	Skills     []string `json:"skills,omitempty"`
	Education  *string  `json:"education,omitempty" validate:"omitempty,max=500"`
	ResumeLink *string  `json:"resume_link,omitempty" validate:"omitempty,url"`
}

type UserResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`

	CompanyName        string `json:"company_name,omitempty"`
	CompanyWebsite     string `json:"company_website,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`

	Skills     []string `json:"skills,omitempty"`
	Education  string   `json:"education,omitempty"`
	ResumeLink string   `json:"resume_link,omitempty"`
}

// NewUserResponse собирает публичное представление пользователя (без хеша пароля)
func NewUserResponse(user *models.User) UserResponse {
	var skills []string
	if len(user.Skills) > 0 {
		// Поле хранится как jsonb, битое содержимое просто не показываем
		_ = json.Unmarshal(user.Skills, &skills)
	}

	return UserResponse{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		CompanyName:        user.CompanyName,
		CompanyWebsite:     user.CompanyWebsite,
		CompanyDescription: user.CompanyDescription,
		Skills:             skills,
		Education:          user.Education,
		ResumeLink:         user.ResumeLink,
	}
}
