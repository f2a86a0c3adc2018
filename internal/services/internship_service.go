package services

import (
	"context"
	"encoding/json"

	"internhub_backend/internal/appErrors"
	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"

	"gorm.io/datatypes"
)

type InternshipService interface {
	CreateInternship(ctx context.Context, employerID string, req *dto.CreateInternshipRequest) (*dto.InternshipResponse, error)
	GetInternship(ctx context.Context, internshipID string) (*dto.InternshipResponse, error)
	SearchInternships(ctx context.Context, req *dto.SearchInternshipsRequest) ([]dto.InternshipResponse, error)
	UpdateInternship(ctx context.Context, internshipID, requesterID string, req *dto.UpdateInternshipRequest) (*dto.InternshipResponse, error)
	DeleteInternship(ctx context.Context, internshipID, requesterID string) error
}

type InternshipServiceImpl struct {
	internshipRepo     repositories.InternshipRepository
	userRepo           repositories.UserRepository
	applicationService ApplicationService
}

func NewInternshipService(
	internshipRepo repositories.InternshipRepository,
	userRepo repositories.UserRepository,
	applicationService ApplicationService,
) InternshipService {
	return &InternshipServiceImpl{
		internshipRepo:     internshipRepo,
		userRepo:           userRepo,
		applicationService: applicationService,
	}
}

// CreateInternship - публикация стажировки работодателем
func (s *InternshipServiceImpl) CreateInternship(ctx context.Context, employerID string, req *dto.CreateInternshipRequest) (*dto.InternshipResponse, error) {
	employer, err := s.userRepo.FindByID(ctx, employerID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	// Название компании можно не передавать - возьмем из профиля
	companyName := req.CompanyName
	if companyName == "" {
		companyName = employer.CompanyName
	}
	if companyName == "" {
		return nil, appErrors.NewBadRequestError("Company name is required")
	}

	skills, err := json.Marshal(req.Skills)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	internship := &models.Internship{
		EmployerID:          employerID,
		Title:               req.Title,
		CompanyName:         companyName,
		Category:            req.Category,
		Location:            req.Location,
		Stipend:             req.Stipend,
		Duration:            req.Duration,
		Description:         req.Description,
		Skills:              datatypes.JSON(skills),
		ApplicationDeadline: req.ApplicationDeadline,
	}

	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Internship created", "internship_id", internship.ID)

	resp := dto.NewInternshipResponse(internship, employer)
	return &resp, nil
}

// GetInternship - публичная карточка стажировки
func (s *InternshipServiceImpl) GetInternship(ctx context.Context, internshipID string) (*dto.InternshipResponse, error) {
	internship, err := s.internshipRepo.FindByID(ctx, internshipID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, appErrors.ErrInternshipNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	// Работодателя подтягиваем для карточки; если аккаунт исчез, отдаем без него
	employer, err := s.userRepo.FindByID(ctx, internship.EmployerID)
	if err != nil && !appErrors.Is(err, repositories.ErrUserNotFound) {
		return nil, appErrors.InternalError(err)
	}

	resp := dto.NewInternshipResponse(internship, employer)
	return &resp, nil
}

// SearchInternships - публичный список с фильтрами, свежие сверху
func (s *InternshipServiceImpl) SearchInternships(ctx context.Context, req *dto.SearchInternshipsRequest) ([]dto.InternshipResponse, error) {
	internships, err := s.internshipRepo.Search(ctx, repositories.InternshipFilter{
		Category:   req.Category,
		Location:   req.Location,
		Keyword:    req.Keyword,
		EmployerID: req.EmployerID,
	})
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	result := make([]dto.InternshipResponse, 0, len(internships))
	for i := range internships {
		employer, err := s.userRepo.FindByID(ctx, internships[i].EmployerID)
		if err != nil && !appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.InternalError(err)
		}
		result = append(result, dto.NewInternshipResponse(&internships[i], employer))
	}

	return result, nil
}

// UpdateInternship - частичное обновление, только владельцем
func (s *InternshipServiceImpl) UpdateInternship(ctx context.Context, internshipID, requesterID string, req *dto.UpdateInternshipRequest) (*dto.InternshipResponse, error) {
	internship, err := s.internshipRepo.FindByID(ctx, internshipID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, appErrors.ErrInternshipNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if internship.EmployerID != requesterID {
		return nil, appErrors.ErrNotInternshipOwner
	}

	if req.Title != nil {
		internship.Title = *req.Title
	}
	if req.CompanyName != nil {
		internship.CompanyName = *req.CompanyName
	}
	if req.Category != nil {
		internship.Category = *req.Category
	}
	if req.Location != nil {
		internship.Location = *req.Location
	}
	if req.Stipend != nil {
		internship.Stipend = *req.Stipend
	}
	if req.Duration != nil {
		internship.Duration = *req.Duration
	}
	if req.Description != nil {
		internship.Description = *req.Description
	}
	if req.Skills != nil {
		skills, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		internship.Skills = skills
	}
	if req.ApplicationDeadline != nil {
		internship.ApplicationDeadline = req.ApplicationDeadline
	}

	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		// Стажировку могли удалить между чтением и записью
		if appErrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, appErrors.ErrInternshipNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	employer, err := s.userRepo.FindByID(ctx, internship.EmployerID)
	if err != nil && !appErrors.Is(err, repositories.ErrUserNotFound) {
		return nil, appErrors.InternalError(err)
	}

	resp := dto.NewInternshipResponse(internship, employer)
	return &resp, nil
}

// DeleteInternship - удаление стажировки владельцем.
// Вместе со стажировкой удаляются все отклики на нее, сирот не остается.
func (s *InternshipServiceImpl) DeleteInternship(ctx context.Context, internshipID, requesterID string) error {
	internship, err := s.internshipRepo.FindByID(ctx, internshipID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrInternshipNotFound) {
			return appErrors.ErrInternshipNotFound
		}
		return appErrors.InternalError(err)
	}

	if internship.EmployerID != requesterID {
		return appErrors.ErrNotInternshipOwner
	}

	deleted, err := s.applicationService.DeleteAllForInternship(ctx, internshipID)
	if err != nil {
		return err
	}

	if err := s.internshipRepo.Delete(ctx, internshipID); err != nil {
		if appErrors.Is(err, repositories.ErrInternshipNotFound) {
			return appErrors.ErrInternshipNotFound
		}
		return appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Internship deleted",
		"internship_id", internshipID,
		"cascaded_applications", deleted,
	)

	return nil
}
