// controllers/auth_controller_test.go
package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ultimate-hub/models"
)

type userResponse struct {
	User struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	} `json:"user"`
}

func TestLogin_PicksFirstUserOfRole(t *testing.T) {
	app := setupTestApp(t, "")

	w := app.do("POST", "/auth/login", gin.H{"role": "Participant"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp userResponse
	decode(t, w, &resp)
	assert.Equal(t, "u3", resp.User.ID)
	assert.Equal(t, "Jane Doe", resp.User.Name)

	me := app.do("GET", "/auth/me", nil, sessionCookie(t, w))
	require.Equal(t, http.StatusOK, me.Code)
	decode(t, me, &resp)
	assert.Equal(t, "Participant", resp.User.Role)
}

func TestLogin_InvalidRole(t *testing.T) {
	app := setupTestApp(t, "")

	w := app.do("POST", "/auth/login", gin.H{"role": "Spectator"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"role"`)

	w = app.do("POST", "/auth/login", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe_WithoutSession(t *testing.T) {
	app := setupTestApp(t, "")
	w := app.do("GET", "/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"no user logged in"}`, w.Body.String())
}

func TestLogout_ClearsCurrentUser(t *testing.T) {
	app := setupTestApp(t, "")
	cookie := app.login(t, models.RoleCoach)

	w := app.do("POST", "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	me := app.do("GET", "/auth/me", nil, sessionCookie(t, w))
	assert.Equal(t, http.StatusUnauthorized, me.Code)
}

func TestRegisterCoach_LogsIn(t *testing.T) {
	app := setupTestApp(t, "")

	w := app.do("POST", "/auth/register/coach", gin.H{
		"name":        "Meera Singh",
		"email":       "meera@ultimatehub.org",
		"communities": []string{"Okhla"},
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp userResponse
	decode(t, w, &resp)
	assert.Equal(t, "Coach", resp.User.Role)

	me := app.do("GET", "/auth/me", nil, sessionCookie(t, w))
	require.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), "Meera Singh")
	assert.Len(t, app.store.Users(), 7)
}

func TestRegisterParticipant_FieldErrors(t *testing.T) {
	app := setupTestApp(t, "")

	w := app.do("POST", "/auth/register/participant", gin.H{"name": "Asha", "email": "not-an-email"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":{"email":"must be a valid email address"}}`, w.Body.String())
	assert.Len(t, app.store.Users(), 6)
}

func TestRegisterOrganizer_RequiresOrgName(t *testing.T) {
	app := setupTestApp(t, "")

	w := app.do("POST", "/auth/register/organizer", gin.H{"name": "Dev", "email": "dev@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "orgName")
}
