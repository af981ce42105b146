// Package controllers file: controllers/gallery_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ultimate-hub/forms"
	"go-ultimate-hub/middleware"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// GalleryController serves event photo albums.
type GalleryController struct {
	Gallery *services.GalleryService
}

// NewGalleryController builds a GalleryController.
func NewGalleryController(gallery *services.GalleryService) *GalleryController {
	return &GalleryController{Gallery: gallery}
}

// Albums lists the albums of past events.
func (gc *GalleryController) Albums(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"albums": gc.Gallery.Albums()})
}

// Album returns one event's album.
func (gc *GalleryController) Album(c *gin.Context) {
	id, ok := eventIDParam(c, "eventId")
	if !ok {
		return
	}
	album, err := gc.Gallery.Album(id)
	if err != nil {
		respondError(c, "GalleryController.Album", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"album": album})
}

// AddImage attaches a temporary image to an event's album.
func (gc *GalleryController) AddImage(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := eventIDParam(c, "eventId")
	if !ok {
		return
	}

	var form forms.ImageForm
	if !bindJSON(c, &form) {
		return
	}

	img, err := gc.Gallery.AddImageToEvent(id, services.ImageInput{
		URL:        form.URL,
		Caption:    form.Caption,
		UploadedBy: user.ID,
	})
	if err != nil {
		respondError(c, "GalleryController.AddImage", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": img})
}

// DeleteImage removes an uploaded image. Placeholder photos cannot be removed.
func (gc *GalleryController) DeleteImage(c *gin.Context) {
	id, ok := eventIDParam(c, "eventId")
	if !ok {
		return
	}
	if err := gc.Gallery.DeleteImageFromEvent(id, models.ImageID(c.Param("imageId"))); err != nil {
		respondError(c, "GalleryController.DeleteImage", err)
		return
	}
	c.Status(http.StatusNoContent)
}
