package models

import (
	"time"

	"gorm.io/datatypes"
)

type Internship struct {
	BaseModel
	// EmployerID выставляется один раз при создании и является
	// якорем для всех проверок владения.
	EmployerID          string         `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title               string         `gorm:"not null" json:"title"`
	CompanyName         string         `gorm:"not null" json:"company_name"`
	Category            string         `gorm:"not null" json:"category"`
	Location            string         `gorm:"not null" json:"location"`
	Stipend             string         `gorm:"not null" json:"stipend"`
	Duration            string         `gorm:"not null" json:"duration"`
	Description         string         `gorm:"not null" json:"description"`
	Skills              datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	PostedDate          time.Time      `gorm:"default:now()" json:"posted_date"`
	ApplicationDeadline *time.Time     `json:"application_deadline,omitempty"`
}
