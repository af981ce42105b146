// Package controllers file: controllers/checkin_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/forms"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// CheckInScanner is the scanning gate the controller drives.
type CheckInScanner interface {
	Scan(stationID, payload string) (services.CheckInResult, error)
}

// CheckInLog lists recorded check-ins.
type CheckInLog interface {
	CheckIns() []models.CheckInRecord
}

// CheckInController accepts scans from check-in stations.
type CheckInController struct {
	Scanner CheckInScanner
	Log     CheckInLog
}

// NewCheckInController builds a CheckInController.
func NewCheckInController(scanner CheckInScanner, log CheckInLog) *CheckInController {
	return &CheckInController{Scanner: scanner, Log: log}
}

// Scan matches a decoded QR payload. A payload that matches no event is a normal outcome and
// answers 200 with success=false; a station still resetting answers 429.
func (cc *CheckInController) Scan(c *gin.Context) {
	var form forms.ScanForm
	if !bindJSON(c, &form) {
		return
	}

	result, err := cc.Scanner.Scan(form.Station, form.Payload)
	if err != nil && !services.IsCheckInFailure(err) {
		respondError(c, "CheckInController.Scan", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// List returns every recorded check-in.
func (cc *CheckInController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"checkIns": cc.Log.CheckIns()})
}
