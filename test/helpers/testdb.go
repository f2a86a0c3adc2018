package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"internhub_backend/internal/models"
)

// CreateUser создает пользователя напрямую в БД, хешируя пароль
func CreateUser(t *testing.T, db *gorm.DB, user *models.User, rawPassword string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Не удалось хешировать пароль: %v", err)
	}
	user.PasswordHash = string(hashed)

	if user.Role == models.UserRoleStudent && user.Skills == nil {
		user.Skills, _ = json.Marshal([]string{})
	}

	require.NoError(t, db.Create(user).Error, "Создание тестового пользователя не должно падать")
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:  name,
		Email: email,
		Role:  role,
	}
	if role == models.UserRoleEmployer {
		user.CompanyName = name + " Inc."
	}
	CreateUser(t, ts.DB, user, password)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginStudent создает студента с уникальным email
func CreateAndLoginStudent(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("student_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Student", email, "password123", models.UserRoleStudent)
}

// CreateAndLoginEmployer создает работодателя с уникальным email
func CreateAndLoginEmployer(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("employer_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Employer", email, "password123", models.UserRoleEmployer)
}

// CreateTestInternship создает стажировку напрямую в БД
func CreateTestInternship(t *testing.T, db *gorm.DB, employerID, title string) models.Internship {
	skills, _ := json.Marshal([]string{"Go", "SQL"})
	internship := models.Internship{
		EmployerID:  employerID,
		Title:       title,
		CompanyName: "Test Company Inc.",
		Category:    "IT",
		Location:    "Almaty",
		Stipend:     "100000 KZT",
		Duration:    "3 months",
		Description: "Test description",
		Skills:      skills,
	}
	require.NoError(t, db.Create(&internship).Error, "Не удалось создать тестовую стажировку")
	return internship
}

// CreateTestApplication создает отклик напрямую в БД
func CreateTestApplication(t *testing.T, db *gorm.DB, internshipID string, student *models.User, status models.ApplicationStatus) models.Application {
	application := models.Application{
		InternshipID: internshipID,
		StudentID:    student.ID,
		StudentName:  student.Name,
		StudentEmail: student.Email,
		Status:       status,
	}
	require.NoError(t, db.Create(&application).Error, "Не удалось создать тестовый отклик")
	return application
}
