package dto

import (
	"encoding/json"
	"time"

	"internhub_backend/internal/models"
)

// --- Internship Requests ---

type CreateInternshipRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	CompanyName string   `json:"company_name" validate:"omitempty,max=200"` // По умолчанию берется из профиля работодателя
	Category    string   `json:"category" validate:"required,max=100"`
	Location    string   `json:"location" validate:"required,max=200"`
	Stipend     string   `json:"stipend" validate:"required,max=100"`
	Duration    string   `json:"duration" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=10000"`
	Skills      []string `json:"skills" validate:"required,min=1"`

	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
}

type UpdateInternshipRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	CompanyName *string  `json:"company_name,omitempty" validate:"omitempty,max=200"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Stipend     *string  `json:"stipend,omitempty" validate:"omitempty,max=100"`
	Duration    *string  `json:"duration,omitempty" validate:"omitempty,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=10000"`
	Skills      []string `json:"skills,omitempty"`

	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
}

type SearchInternshipsRequest struct {
	Category   string `form:"category"`
	Location   string `form:"location"`
	Keyword    string `form:"keyword"`
	EmployerID string `form:"employerId"`
}

// --- Internship Responses ---

// EmployerSummary - публичные данные работодателя, встраиваемые в стажировку
type EmployerSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name,omitempty"`
}

type InternshipResponse struct {
	ID          string   `json:"id"`
	EmployerID  string   `json:"employer_id"`
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Stipend     string   `json:"stipend"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`

	PostedDate          time.Time        `json:"posted_date"`
	ApplicationDeadline *time.Time       `json:"application_deadline,omitempty"`
	Employer            *EmployerSummary `json:"employer,omitempty"`
}

// NewInternshipResponse собирает представление стажировки; employer опционален
func NewInternshipResponse(internship *models.Internship, employer *models.User) InternshipResponse {
	var skills []string
	if len(internship.Skills) > 0 {
		_ = json.Unmarshal(internship.Skills, &skills)
	}

	resp := InternshipResponse{
		ID:                  internship.ID,
		EmployerID:          internship.EmployerID,
		Title:               internship.Title,
		CompanyName:         internship.CompanyName,
		Category:            internship.Category,
		Location:            internship.Location,
		Stipend:             internship.Stipend,
		Duration:            internship.Duration,
		Description:         internship.Description,
		Skills:              skills,
		PostedDate:          internship.PostedDate,
		ApplicationDeadline: internship.ApplicationDeadline,
	}

	if employer != nil {
		resp.Employer = &EmployerSummary{
			ID:          employer.ID,
			Name:        employer.Name,
			Email:       employer.Email,
			CompanyName: employer.CompanyName,
		}
	}

	return resp
}
