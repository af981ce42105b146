// file: controllers/welfare_controller_test.go
package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ultimate-hub/models"
)

func TestWelfare_RoleGated(t *testing.T) {
	app := setupTestApp(t, "")

	assert.Equal(t, http.StatusForbidden, app.do("GET", "/api/children", nil, app.login(t, models.RoleParticipant)).Code)
	assert.Equal(t, http.StatusUnauthorized, app.do("GET", "/api/children", nil, nil).Code)

	w := app.do("GET", "/api/children", nil, app.login(t, models.RoleCoach))
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Children []models.Child `json:"children"`
	}
	decode(t, w, &resp)
	assert.Len(t, resp.Children, 7)

	for _, path := range []string{"/api/sessions", "/api/assessments", "/api/home-visits", "/api/alerts"} {
		assert.Equal(t, http.StatusOK, app.do("GET", path, nil, app.login(t, models.RoleAdmin)).Code, path)
	}
}

func TestMarkAttendance_Idempotent(t *testing.T) {
	app := setupTestApp(t, "")
	cookie := app.login(t, models.RoleCoach)

	w := app.do("POST", "/api/sessions/s3/attendance", gin.H{"childId": "c1"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sessionId":"s3","childId":"c1","changed":true}`, w.Body.String())

	w = app.do("POST", "/api/sessions/s3/attendance", gin.H{"childId": "c1"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sessionId":"s3","childId":"c1","changed":false}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, app.do("POST", "/api/sessions/s9/attendance", gin.H{"childId": "c1"}, cookie).Code)
	assert.Equal(t, http.StatusBadRequest, app.do("POST", "/api/sessions/s3/attendance", gin.H{}, cookie).Code)
}

func TestAddAssessment_Endpoint(t *testing.T) {
	app := setupTestApp(t, "")
	cookie := app.login(t, models.RoleCoach)

	body := gin.H{"childId": "c2", "date": "2025-01-15", "type": "Baseline", "teamwork": 6, "confidence": 5, "communication": 7}
	w := app.do("POST", "/api/assessments", body, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, app.store.Assessments(), 4)

	w = app.do("POST", "/api/assessments", body, cookie)
	assert.Equal(t, http.StatusConflict, w.Code)

	body["type"] = "Endline"
	body["teamwork"] = 12
	w = app.do("POST", "/api/assessments", body, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "teamwork")

	body["teamwork"] = 8
	body["childId"] = "c99"
	assert.Equal(t, http.StatusNotFound, app.do("POST", "/api/assessments", body, cookie).Code)
	assert.Len(t, app.store.Assessments(), 4)
}

func TestAddHomeVisit_Endpoint(t *testing.T) {
	app := setupTestApp(t, "")
	cookie := app.login(t, models.RoleAdmin)

	w := app.do("POST", "/api/home-visits", gin.H{"childId": "c7", "date": "2025-02-01", "notes": "  Family moved nearer the ground.  "}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	visits := app.store.HomeVisits()
	require.Len(t, visits, 3)
	assert.Equal(t, "Family moved nearer the ground.", visits[2].Notes)

	w = app.do("POST", "/api/home-visits", gin.H{"childId": "c7", "date": "2025-02-01"}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
