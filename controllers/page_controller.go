// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/logger"
)

// PageController serves the health check and the client bootstrap document.
type PageController struct {
	ApplicationURL string
	WebsocketURL   string
}

// NewPageController builds a PageController.
func NewPageController(applicationURL, websocketURL string) *PageController {
	return &PageController{ApplicationURL: applicationURL, WebsocketURL: websocketURL}
}

// Health answers load balancer checks.
func (pc *PageController) Health(c *gin.Context) {
	logger.Debug.Println("[Health] Health check requested")
	c.String(http.StatusOK, "OK")
}

// Index tells a client where the app and its live feed live.
func (pc *PageController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":           "Ultimate Hub",
		"applicationUrl": pc.ApplicationURL,
		"websocketUrl":   pc.WebsocketURL,
	})
}
