// Package controllers file: controllers/coaching_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/forms"
	"go-ultimate-hub/logger"
	"go-ultimate-hub/middleware"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// CoachingController serves coaching centers and enrollment.
type CoachingController struct {
	Store *services.AppStore
}

// NewCoachingController builds a CoachingController.
func NewCoachingController(store *services.AppStore) *CoachingController {
	return &CoachingController{Store: store}
}

// List returns every coaching center.
func (cc *CoachingController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"coachingCenters": cc.Store.CoachingCenters()})
}

// Create adds a coaching center.
func (cc *CoachingController) Create(c *gin.Context) {
	var form forms.CoachingCenterForm
	if !bindJSON(c, &form) {
		return
	}
	center, err := cc.Store.AddCoachingCenter(form.Input())
	if err != nil {
		respondError(c, "CoachingController.Create", err)
		return
	}
	logger.Info.Printf("[CoachingController.Create] Added center %s (%s)", center.ID, center.Name)
	c.JSON(http.StatusCreated, gin.H{"coachingCenter": center})
}

// ToggleRegistration enrolls or unenrolls the current user.
func (cc *CoachingController) ToggleRegistration(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := models.CenterID(c.Param("id"))

	enrolled, err := cc.Store.ToggleCoachingCenterRegistration(id, user.ID)
	if err != nil {
		respondError(c, "CoachingController.ToggleRegistration", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"centerId": id, "registered": enrolled})
}
