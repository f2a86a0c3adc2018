package services

import (
	"context"
	"encoding/json"

	"internhub_backend/internal/appErrors"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetProfile - профиль текущего пользователя
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// UpdateProfile - частичное обновление собственного профиля.
// Email и роль не редактируются; ранее созданные отклики хранят
// снапшот имени и не затрагиваются.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.CompanyWebsite != nil {
		user.CompanyWebsite = *req.CompanyWebsite
	}
	if req.CompanyDescription != nil {
		user.CompanyDescription = *req.CompanyDescription
	}
	if req.Skills != nil {
		skills, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		user.Skills = skills
	}
	if req.Education != nil {
		user.Education = *req.Education
	}
	if req.ResumeLink != nil {
		user.ResumeLink = *req.ResumeLink
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}
