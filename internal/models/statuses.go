package models

type UserRole string
type ApplicationStatus string

const (
	UserRoleStudent  UserRole = "student"
	UserRoleEmployer UserRole = "employer"

	// Статус "Applied" выставляется только при создании отклика,
	// работодатель не может вернуть отклик в это состояние.
	ApplicationStatusApplied     ApplicationStatus = "Applied"
	ApplicationStatusViewed      ApplicationStatus = "Viewed by Employer"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
	ApplicationStatusHired       ApplicationStatus = "Hired"
)

// EmployerSettableStatuses - статусы, которые работодатель может выставить отклику.
var EmployerSettableStatuses = []ApplicationStatus{
	ApplicationStatusViewed,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
	ApplicationStatusHired,
}

// IsEmployerSettable проверяет, что статус входит в список допустимых для обновления.
func (s ApplicationStatus) IsEmployerSettable() bool {
	for _, allowed := range EmployerSettableStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}
