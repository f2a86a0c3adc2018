package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub_backend/internal/appErrors"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
)

func TestUserService_GetProfile_NotFound(t *testing.T) {
	service := NewUserService(newFakeUserRepo())

	_, err := service.GetProfile(context.Background(), "missing-id")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile_Partial(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := NewUserService(userRepo)
	ctx := context.Background()

	student := userRepo.put(&models.User{
		Name:      "Aliya",
		Email:     "aliya@students.test",
		Role:      models.UserRoleStudent,
		Education: "KBTU",
	})

	newName := "Aliya K."
	resp, err := service.UpdateProfile(ctx, student.ID, &dto.UpdateProfileRequest{
		Name:   &newName,
		Skills: []string{"Go", "SQL"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Aliya K.", resp.Name)
	assert.Equal(t, []string{"Go", "SQL"}, resp.Skills)
	// Не переданные поля остались прежними
	assert.Equal(t, "KBTU", resp.Education)
	// Email и роль не редактируются через профиль
	assert.Equal(t, "aliya@students.test", resp.Email)
	assert.Equal(t, models.UserRoleStudent, resp.Role)
}

type vanishingUserRepo struct {
	*fakeUserRepo
}

func (r *vanishingUserRepo) Update(context.Context, *models.User) error {
	return repositories.ErrUserNotFound
}

func TestUserService_UpdateProfile_DeletedConcurrently(t *testing.T) {
	userRepo := newFakeUserRepo()
	student := userRepo.put(&models.User{
		Name:  "Aliya",
		Email: "aliya@students.test",
		Role:  models.UserRoleStudent,
	})

	service := NewUserService(&vanishingUserRepo{fakeUserRepo: userRepo})

	newName := "Aliya K."
	_, err := service.UpdateProfile(context.Background(), student.ID, &dto.UpdateProfileRequest{Name: &newName})
	// Аккаунт исчез между чтением и записью - отдаем 404, а не 500
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile_EmployerFields(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := NewUserService(userRepo)

	employer := userRepo.put(&models.User{
		Name:        "Acme HR",
		Email:       "hr@acme.test",
		Role:        models.UserRoleEmployer,
		CompanyName: "Acme Corp",
	})

	website := "https://acme.test"
	description := "We make everything"
	resp, err := service.UpdateProfile(context.Background(), employer.ID, &dto.UpdateProfileRequest{
		CompanyWebsite:     &website,
		CompanyDescription: &description,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://acme.test", resp.CompanyWebsite)
	assert.Equal(t, "We make everything", resp.CompanyDescription)
	assert.Equal(t, "Acme Corp", resp.CompanyName)
}
