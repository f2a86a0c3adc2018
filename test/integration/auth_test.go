package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub_backend/test/helpers"
)

// TestAuth_RegisterAndLogin - полный путь: регистрация, логин, /me
func TestAuth_RegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	registerBody := map[string]interface{}{
		"name":     "Aliya",
		"email":    "aliya@test.com",
		"password": "password123",
		"role":     "student",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, `"token"`)
	assert.Contains(t, bodyStr, `"role":"student"`)
	// Хеш пароля наружу не отдается
	assert.NotContains(t, bodyStr, "password")

	var registered struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &registered))
	require.NotEmpty(t, registered.Token)

	// Логин с теми же данными
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "aliya@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"token"`)

	// /me по токену
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/auth/me", registered.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "aliya@test.com")
}

func TestAuth_RegisterValidation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	// Слабый пароль
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Aliya",
		"email":    "aliya@test.com",
		"password": "123",
		"role":     "student",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "password")

	// Недопустимая роль
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Aliya",
		"email":    "aliya@test.com",
		"password": "password123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "role")
}

func TestAuth_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	body := map[string]interface{}{
		"name":     "Aliya",
		"email":    "aliya@test.com",
		"password": "password123",
		"role":     "student",
	}

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "EMAIL_ALREADY_EXISTS")
}

func TestAuth_InvalidCredentials(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateAndLoginStudent(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "INVALID_CREDENTIALS")
}

func TestAuth_ProtectedRoutesRequireToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/v1/auth/me", "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/v1/applications/student/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
