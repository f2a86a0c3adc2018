package dto

import (
	"time"

	"internhub_backend/internal/models"
)

// --- Application Requests ---

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

// --- Application Responses ---

// InternshipSummary - данные стажировки, встраиваемые в отклик студента
type InternshipSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
}

type ApplicationResponse struct {
	ID           string `json:"id"`
	InternshipID string `json:"internship_id"`
	StudentID    string `json:"student_id"`

	// Снапшот на момент отклика, профиль студента его не обновляет
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`

	Status      models.ApplicationStatus `json:"status"`
	AppliedDate time.Time                `json:"applied_date"`

	Internship *InternshipSummary `json:"internship,omitempty"`
}

// NewApplicationResponse собирает представление отклика; internship опционален
func NewApplicationResponse(application *models.Application, internship *models.Internship) ApplicationResponse {
	resp := ApplicationResponse{
		ID:           application.ID,
		InternshipID: application.InternshipID,
		StudentID:    application.StudentID,
		StudentName:  application.StudentName,
		StudentEmail: application.StudentEmail,
		Status:       application.Status,
		AppliedDate:  application.AppliedDate,
	}

	if internship != nil {
		resp.Internship = &InternshipSummary{
			ID:          internship.ID,
			Title:       internship.Title,
			CompanyName: internship.CompanyName,
			Location:    internship.Location,
		}
	}

	return resp
}
