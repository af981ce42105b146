// Package controllers file: controllers/event_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/forms"
	"go-ultimate-hub/logger"
	"go-ultimate-hub/middleware"
	"go-ultimate-hub/services"
)

// EventController serves the event registry, registration toggles and QR tickets.
type EventController struct {
	Store   *services.AppStore
	Encoder services.QRCodeEncoder
}

// NewEventController builds an EventController. A nil encoder renders real QR codes.
func NewEventController(store *services.AppStore, encoder services.QRCodeEncoder) *EventController {
	return &EventController{Store: store, Encoder: encoder}
}

// List returns every event.
func (ec *EventController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": ec.Store.Events()})
}

// Get returns one event.
func (ec *EventController) Get(c *gin.Context) {
	id, ok := eventIDParam(c, "id")
	if !ok {
		return
	}
	ev, err := ec.Store.Event(id)
	if err != nil {
		respondError(c, "EventController.Get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": ev})
}

// Create adds an event on behalf of the current user.
func (ec *EventController) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var form forms.EventForm
	if !bindJSON(c, &form) {
		return
	}
	in, err := form.Input(user.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": map[string]string{"date": err.Error()}})
		return
	}

	ev, err := ec.Store.AddEvent(in)
	if err != nil {
		respondError(c, "EventController.Create", err)
		return
	}
	logger.Info.Printf("[EventController.Create] %s created event %d (%s)", user.ID, ev.ID, ev.Name)
	c.JSON(http.StatusCreated, gin.H{"event": ev})
}

// ToggleRegistration registers or unregisters the current user for the event.
func (ec *EventController) ToggleRegistration(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := eventIDParam(c, "id")
	if !ok {
		return
	}

	registered, err := ec.Store.ToggleRegistration(id, user.ID)
	if err != nil {
		respondError(c, "EventController.ToggleRegistration", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"eventId": id, "registered": registered})
}

// Ticket renders the current user's QR ticket for the event as a PNG.
func (ec *EventController) Ticket(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := eventIDParam(c, "id")
	if !ok {
		return
	}

	// the session copy of the profile may predate a registration toggle
	if fresh, err := ec.Store.User(user.ID); err == nil {
		user = fresh
	}

	png, err := services.GenerateTicket(ec.Store, user, id, services.DefaultQRCodeSize, ec.Encoder)
	if err != nil {
		respondError(c, "EventController.Ticket", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
