// Package controllers file: controllers/venue_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// VenueList lists venues.
type VenueList interface {
	Venues() []models.Venue
}

// VenueController serves venues with their maps and directions.
type VenueController struct {
	Venues VenueList
	Maps   *services.MapService
}

// NewVenueController builds a VenueController.
func NewVenueController(venues VenueList, maps *services.MapService) *VenueController {
	return &VenueController{Venues: venues, Maps: maps}
}

// List returns every venue.
func (vc *VenueController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"venues": vc.Venues.Venues(), "mapsConfigured": vc.Maps.Configured()})
}

// Map returns the embed details of a venue.
func (vc *VenueController) Map(c *gin.Context) {
	m, err := vc.Maps.VenueMap(models.VenueID(c.Param("id")))
	if err != nil {
		respondError(c, "VenueController.Map", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"map": m})
}

// Directions links ?lat=&lng= (optional, both or neither) to the venue.
func (vc *VenueController) Directions(c *gin.Context) {
	origin, ok := originParam(c)
	if !ok {
		return
	}
	d, err := vc.Maps.Directions(models.VenueID(c.Param("id")), origin)
	if err != nil {
		respondError(c, "VenueController.Directions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"directions": d})
}

func originParam(c *gin.Context) (*services.LatLng, bool) {
	latRaw, lngRaw := c.Query("lat"), c.Query("lng")
	if latRaw == "" && lngRaw == "" {
		return nil, true
	}
	lat, errLat := strconv.ParseFloat(latRaw, 64)
	lng, errLng := strconv.ParseFloat(lngRaw, 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must both be decimal degrees"})
		return nil, false
	}
	return &services.LatLng{Lat: lat, Lng: lng}, true
}
