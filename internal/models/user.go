package models

import "gorm.io/datatypes"

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Поля работодателя
	CompanyName        string `json:"company_name,omitempty"`
	CompanyWebsite     string `json:"company_website,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`

	// Поля студента
	Skills     datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	Education  string         `json:"education,omitempty"`
	ResumeLink string         `json:"resume_link,omitempty"`
}
