package services

import (
	"context"

	"internhub_backend/internal/appErrors"
	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
)

type ApplicationService interface {
	Apply(ctx context.Context, internshipID, studentID string) (*dto.ApplicationResponse, error)
	GetStudentApplications(ctx context.Context, studentID string) ([]dto.ApplicationResponse, error)
	GetInternshipApplications(ctx context.Context, internshipID, requesterID string) ([]dto.ApplicationResponse, error)
	UpdateStatus(ctx context.Context, applicationID, requesterID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error)
	DeleteAllForInternship(ctx context.Context, internshipID string) (int64, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	internshipRepo  repositories.InternshipRepository
	userRepo        repositories.UserRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	internshipRepo repositories.InternshipRepository,
	userRepo repositories.UserRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		userRepo:        userRepo,
	}
}

// Apply - отклик студента на стажировку.
// Имя и email студента снимаются с его аккаунта в момент вызова и больше
// не синхронизируются с профилем.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, internshipID, studentID string) (*dto.ApplicationResponse, error) {
	internship, err := s.internshipRepo.FindByID(ctx, internshipID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, appErrors.ErrInternshipNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	student, err := s.userRepo.FindByID(ctx, studentID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	// Предварительная проверка дубля дает понятную ошибку, но саму гонку
	// закрывает уникальный индекс в хранилище (см. обработку Create ниже).
	if _, err := s.applicationRepo.FindByInternshipAndStudent(ctx, internshipID, studentID); err == nil {
		return nil, appErrors.ErrAlreadyApplied
	} else if !appErrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, appErrors.InternalError(err)
	}

	application := &models.Application{
		InternshipID: internshipID,
		StudentID:    studentID,
		StudentName:  student.Name,
		StudentEmail: student.Email,
		Status:       models.ApplicationStatusApplied,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if appErrors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, appErrors.ErrAlreadyApplied
		}
		return nil, appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Application created",
		"application_id", application.ID,
		"internship_id", internshipID,
	)

	resp := dto.NewApplicationResponse(application, internship)
	return &resp, nil
}

// GetStudentApplications - отклики студента, свежие сверху.
// studentID всегда берется из токена, а не из запроса.
func (s *ApplicationServiceImpl) GetStudentApplications(ctx context.Context, studentID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	internshipIDs := make([]string, 0, len(applications))
	for _, application := range applications {
		internshipIDs = append(internshipIDs, application.InternshipID)
	}

	internships, err := s.internshipRepo.FindByIDs(ctx, internshipIDs)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	result := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		var internship *models.Internship
		if found, ok := internships[applications[i].InternshipID]; ok {
			internship = &found
		}
		result = append(result, dto.NewApplicationResponse(&applications[i], internship))
	}

	return result, nil
}

// GetInternshipApplications - отклики на стажировку для ее владельца.
// Отсутствующая стажировка дает 404 раньше, чем проверяется владение.
func (s *ApplicationServiceImpl) GetInternshipApplications(ctx context.Context, internshipID, requesterID string) ([]dto.ApplicationResponse, error) {
	internship, err := s.internshipRepo.FindByID(ctx, internshipID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, appErrors.ErrInternshipNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if internship.EmployerID != requesterID {
		return nil, appErrors.ErrNotApplicationListAllowed
	}

	applications, err := s.applicationRepo.ListByInternship(ctx, internshipID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	result := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		// Имя и email соискателя уже лежат в снапшоте на самом отклике
		result = append(result, dto.NewApplicationResponse(&applications[i], nil))
	}

	return result, nil
}

// UpdateStatus - смена статуса отклика владельцем стажировки.
// Допустим любой из четырех "рабочих" статусов, в любом порядке;
// вернуть отклик в "Applied" нельзя.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, applicationID, requesterID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	if !status.IsEmployerSettable() {
		return nil, appErrors.ErrInvalidApplicationStatus
	}

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	internship, err := s.internshipRepo.FindByID(ctx, application.InternshipID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, appErrors.ErrInternshipNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if internship.EmployerID != requesterID {
		return nil, appErrors.ErrNotApplicationOwner
	}

	updated, err := s.applicationRepo.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Application status updated",
		"application_id", applicationID,
		"status", string(status),
	)

	resp := dto.NewApplicationResponse(updated, internship)
	return &resp, nil
}

// DeleteAllForInternship - каскадное удаление откликов при удалении стажировки.
// Единственный путь, которым отклик исчезает.
func (s *ApplicationServiceImpl) DeleteAllForInternship(ctx context.Context, internshipID string) (int64, error) {
	count, err := s.applicationRepo.DeleteByInternship(ctx, internshipID)
	if err != nil {
		return 0, appErrors.InternalError(err)
	}
	return count, nil
}
