// Package controllers file: controllers/welfare_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/forms"
	"go-ultimate-hub/logger"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// WelfareController serves the child-welfare program: children, sessions, attendance,
// assessments, home visits and alerts.
type WelfareController struct {
	Store *services.AppStore
}

// NewWelfareController builds a WelfareController.
func NewWelfareController(store *services.AppStore) *WelfareController {
	return &WelfareController{Store: store}
}

// Children lists program children.
func (wc *WelfareController) Children(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"children": wc.Store.Children()})
}

// Sessions lists coaching sessions.
func (wc *WelfareController) Sessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": wc.Store.Sessions()})
}

// MarkAttendance records a child as present at a session. Repeats are accepted and report
// changed=false.
func (wc *WelfareController) MarkAttendance(c *gin.Context) {
	var form forms.AttendanceForm
	if !bindJSON(c, &form) {
		return
	}
	sessionID := models.SessionID(c.Param("id"))

	changed, err := wc.Store.MarkSessionAttendance(sessionID, models.ChildID(form.ChildID))
	if err != nil {
		respondError(c, "MarkAttendance", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "childId": form.ChildID, "changed": changed})
}

// Assessments lists recorded assessments.
func (wc *WelfareController) Assessments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"assessments": wc.Store.Assessments()})
}

// AddAssessment records a life-skills assessment.
func (wc *WelfareController) AddAssessment(c *gin.Context) {
	var form forms.AssessmentForm
	if !bindJSON(c, &form) {
		return
	}
	in, err := form.Input()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": map[string]string{"date": err.Error()}})
		return
	}

	a, err := wc.Store.AddAssessment(in)
	if err != nil {
		respondError(c, "AddAssessment", err)
		return
	}
	logger.Info.Printf("[AddAssessment] %s assessment %s recorded for %s", a.Type, a.ID, a.ChildID)
	c.JSON(http.StatusCreated, gin.H{"assessment": a})
}

// HomeVisits lists recorded home visits.
func (wc *WelfareController) HomeVisits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"homeVisits": wc.Store.HomeVisits()})
}

// AddHomeVisit records a home visit.
func (wc *WelfareController) AddHomeVisit(c *gin.Context) {
	var form forms.HomeVisitForm
	if !bindJSON(c, &form) {
		return
	}
	in, err := form.Input()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": map[string]string{"date": err.Error()}})
		return
	}

	v, err := wc.Store.AddHomeVisit(in)
	if err != nil {
		respondError(c, "AddHomeVisit", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"homeVisit": v})
}

// Alerts lists welfare alerts.
func (wc *WelfareController) Alerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alerts": wc.Store.Alerts()})
}
