// Package controllers provides the HTTP handlers of the hub's JSON API.
// File: controllers/respond.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/forms"
	"go-ultimate-hub/logger"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrVenueNotFound),
		errors.Is(err, services.ErrOrganizationNotFound),
		errors.Is(err, services.ErrCenterNotFound),
		errors.Is(err, services.ErrChildNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrImageNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrUnknownRole),
		errors.Is(err, services.ErrInvalidCode),
		errors.Is(err, services.ErrUnknownLeaderboardBy):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNotRegistered),
		errors.Is(err, services.ErrNotOrganizer):
		return http.StatusForbidden
	case errors.Is(err, services.ErrDuplicateAssessment):
		return http.StatusConflict
	case errors.Is(err, services.ErrScannerBusy):
		return http.StatusTooManyRequests
	case errors.Is(err, services.ErrMapsNotConfigured),
		errors.Is(err, services.ErrScannerClosed):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError writes {"error": msg} with the mapped status. Internal errors are logged and
// not echoed to the client.
func respondError(c *gin.Context, where string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error.Printf("[%s] %v", where, err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	logger.Debug.Printf("[%s] %d: %v", where, status, err)
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindJSON binds the request body into form, answering 400 with per-field errors on failure.
func bindJSON(c *gin.Context, form interface{}) bool {
	if err := c.ShouldBindJSON(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": forms.FieldErrors(err)})
		return false
	}
	return true
}

// eventIDParam parses a path parameter as an event id, answering 400 when malformed.
func eventIDParam(c *gin.Context, name string) (models.EventID, bool) {
	id, err := models.ParseEventID(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id " + strconv.Quote(c.Param(name))})
		return 0, false
	}
	return id, true
}
