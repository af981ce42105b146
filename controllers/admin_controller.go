// Package controllers provides HTTP handlers for admin operations.
// File: controllers/admin_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/forms"
	"go-ultimate-hub/logger"
	"go-ultimate-hub/middleware"
	"go-ultimate-hub/services"
)

// ---------------- Admin Controller ----------------

// AdminController manages organizations and lists accounts.
type AdminController struct {
	Store *services.AppStore
}

// NewAdminController initializes a new instance of AdminController
func NewAdminController(store *services.AppStore) *AdminController {
	return &AdminController{Store: store}
}

// ---------------- organizations ----------------

// Organizations lists every organization.
func (ac *AdminController) Organizations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"organizations": ac.Store.Organizations()})
}

// CreateOrganization adds an organization. The creating admin is not added as an organizer.
func (ac *AdminController) CreateOrganization(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var form forms.OrganizationForm
	if !bindJSON(c, &form) {
		return
	}

	org, err := ac.Store.AddOrganization(form.Input())
	if err != nil {
		respondError(c, "CreateOrganization", err)
		return
	}
	logger.Info.Printf("[CreateOrganization] %s created organization %s (%s)", user.ID, org.ID, org.Name)
	c.JSON(http.StatusCreated, gin.H{"organization": org})
}

// ---------------- users ----------------

// Users lists every account.
func (ac *AdminController) Users(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": ac.Store.Users()})
}
