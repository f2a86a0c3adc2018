package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub_backend/internal/appErrors"
	"internhub_backend/internal/config"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services/dto"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 300
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = nil })
}

func registerRequest(role models.UserRole) *dto.RegisterRequest {
	req := &dto.RegisterRequest{
		Name:     "Aliya",
		Email:    "aliya@students.test",
		Password: "secret123",
		Role:     role,
	}
	if role == models.UserRoleEmployer {
		req.Name = "Acme HR"
		req.Email = "hr@acme.test"
		req.CompanyName = "Acme Corp"
	}
	return req
}

func TestAuthService_Register_Student(t *testing.T) {
	setTestConfig(t)
	userRepo := newFakeUserRepo()
	service := NewAuthService(userRepo)

	resp, err := service.Register(context.Background(), registerRequest(models.UserRoleStudent))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "aliya@students.test", resp.User.Email)
	assert.Equal(t, models.UserRoleStudent, resp.User.Role)
	assert.NotNil(t, resp.User.Skills) // пустой список, а не null
	assert.Empty(t, resp.User.Skills)
}

func TestAuthService_Register_Employer(t *testing.T) {
	setTestConfig(t)
	userRepo := newFakeUserRepo()
	service := NewAuthService(userRepo)

	resp, err := service.Register(context.Background(), registerRequest(models.UserRoleEmployer))
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleEmployer, resp.User.Role)
	assert.Equal(t, "Acme Corp", resp.User.CompanyName)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	setTestConfig(t)
	userRepo := newFakeUserRepo()
	service := NewAuthService(userRepo)
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest(models.UserRoleStudent))
	require.NoError(t, err)

	_, err = service.Register(ctx, registerRequest(models.UserRoleStudent))
	assert.ErrorIs(t, err, appErrors.ErrEmailAlreadyExists)
}

func TestAuthService_Register_Invalid(t *testing.T) {
	setTestConfig(t)
	service := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	weak := registerRequest(models.UserRoleStudent)
	weak.Password = "123"
	_, err := service.Register(ctx, weak)
	assert.ErrorIs(t, err, appErrors.ErrWeakPassword)

	badRole := registerRequest(models.UserRoleStudent)
	badRole.Role = "admin"
	_, err = service.Register(ctx, badRole)
	assert.ErrorIs(t, err, appErrors.ErrInvalidUserRole)
}

func TestAuthService_Login(t *testing.T) {
	setTestConfig(t)
	userRepo := newFakeUserRepo()
	service := NewAuthService(userRepo)
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest(models.UserRoleStudent))
	require.NoError(t, err)

	resp, err := service.Login(ctx, &dto.LoginRequest{Email: "aliya@students.test", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	// Неверный пароль и неизвестный email дают одну и ту же ошибку
	_, err = service.Login(ctx, &dto.LoginRequest{Email: "aliya@students.test", Password: "wrong"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	_, err = service.Login(ctx, &dto.LoginRequest{Email: "nobody@students.test", Password: "secret123"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestAuthService_Me(t *testing.T) {
	setTestConfig(t)
	userRepo := newFakeUserRepo()
	service := NewAuthService(userRepo)
	ctx := context.Background()

	created, err := service.Register(ctx, registerRequest(models.UserRoleStudent))
	require.NoError(t, err)

	me, err := service.Me(ctx, created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, created.User.Email, me.Email)

	_, err = service.Me(ctx, "missing-id")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}
