// Package controllers controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-ultimate-hub/forms"
	"go-ultimate-hub/logger"
	"go-ultimate-hub/middleware"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// UserLookup resolves users by id.
type UserLookup interface {
	User(id models.UserID) (models.User, error)
}

// AuthController handles role login, logout and account registration.
type AuthController struct {
	Auth  services.AuthServiceInterface
	Users UserLookup
}

// NewAuthController builds an AuthController.
func NewAuthController(auth services.AuthServiceInterface, users UserLookup) *AuthController {
	return &AuthController{Auth: auth, Users: users}
}

// Login makes the first user with the requested role current.
func (ac *AuthController) Login(c *gin.Context) {
	var form forms.LoginForm
	if !bindJSON(c, &form) {
		return
	}

	user, err := ac.Auth.Login(sessions.Default(c), models.Role(form.Role))
	if err != nil {
		respondError(c, "Login", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout clears the current user.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Auth.Logout(sessions.Default(c)); err != nil {
		respondError(c, "Logout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the current user, refreshed from the store so registration lists are current.
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, "Me", services.ErrNotLoggedIn)
		return
	}
	if fresh, err := ac.Users.User(user.ID); err == nil {
		user = fresh
	} else {
		logger.Debug.Printf("[Me] %s not in store, serving session copy", user.ID)
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ---------------- registration ----------------

// RegisterParticipant creates a participant account and logs it in.
func (ac *AuthController) RegisterParticipant(c *gin.Context) {
	var form forms.ParticipantForm
	if !bindJSON(c, &form) {
		return
	}
	user, err := ac.Auth.RegisterParticipant(sessions.Default(c), form.Input())
	ac.registered(c, "RegisterParticipant", user, err)
}

// RegisterOrganizer creates an organizer account with its organization and logs it in.
func (ac *AuthController) RegisterOrganizer(c *gin.Context) {
	var form forms.OrganizerForm
	if !bindJSON(c, &form) {
		return
	}
	user, err := ac.Auth.RegisterOrganizer(sessions.Default(c), form.Input())
	ac.registered(c, "RegisterOrganizer", user, err)
}

// RegisterCoach creates a coach account and logs it in.
func (ac *AuthController) RegisterCoach(c *gin.Context) {
	var form forms.CoachForm
	if !bindJSON(c, &form) {
		return
	}
	user, err := ac.Auth.RegisterCoach(sessions.Default(c), form.Input())
	ac.registered(c, "RegisterCoach", user, err)
}

func (ac *AuthController) registered(c *gin.Context, where string, user models.User, err error) {
	if err != nil {
		respondError(c, where, err)
		return
	}
	logger.Info.Printf("[%s] Registered %s (%s)", where, user.ID, user.Role())
	c.JSON(http.StatusCreated, gin.H{"user": user})
}
