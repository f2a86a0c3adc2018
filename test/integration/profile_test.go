package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub_backend/test/helpers"
)

func TestProfile_StudentUpdate(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	studentToken, _ := helpers.CreateAndLoginStudent(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/users/profile", studentToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"role":"student"`)

	res, bodyStr = ts.SendRequest(t, "PUT", "/api/v1/users/profile", studentToken, map[string]interface{}{
		"skills":      []string{"Go", "SQL"},
		"education":   "KBTU",
		"resume_link": "https://example.com/resume.pdf",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"Go"`)
	assert.Contains(t, bodyStr, "KBTU")

	// Обновления видны при повторном чтении
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/users/profile", studentToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "KBTU")
}

func TestProfile_EmployerUpdate(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/users/profile", employerToken, map[string]interface{}{
		"company_website":     "https://acme.test",
		"company_description": "We make everything",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "https://acme.test")

	// Email и роль через профиль не меняются
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/users/profile", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, employer.Email)
	assert.Contains(t, bodyStr, `"role":"employer"`)
}

func TestProfile_ValidationRejectsBadResumeLink(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	studentToken, _ := helpers.CreateAndLoginStudent(t, ts)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/users/profile", studentToken, map[string]interface{}{
		"resume_link": "not-a-url",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "resume_link")
}
