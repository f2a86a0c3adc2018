package models

import "time"

type Application struct {
	BaseModel
	// Составной уникальный индекс закрывает гонку "проверили-создали"
	// на уровне хранилища: два одновременных отклика на одну стажировку
	// дадут ровно одну запись.
	InternshipID string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_internship_student" json:"internship_id"`
	StudentID    string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_internship_student" json:"student_id"`

	// Снапшот имени и email студента на момент отклика.
	// Последующие изменения профиля эти поля не трогают - так задумано.
	StudentName  string `gorm:"not null" json:"student_name"`
	StudentEmail string `gorm:"not null" json:"student_email"`

	Status      ApplicationStatus `gorm:"type:varchar(30);default:'Applied'" json:"status"`
	AppliedDate time.Time         `gorm:"default:now();index" json:"applied_date"`
}
