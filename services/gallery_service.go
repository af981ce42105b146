// Package services file: services/gallery_service.go
package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"go-ultimate-hub/logger"
	"go-ultimate-hub/models"
)

// GalleryStore is the part of the store albums are built from.
type GalleryStore interface {
	EventLookup
	Events() []models.Event
}

// Album is the photo collection of one event.
type Album struct {
	Event  models.Event   `json:"event"`
	Images []models.Image `json:"images"`
}

// ImageInput describes an uploaded image.
type ImageInput struct {
	URL        string
	Caption    string
	UploadedBy models.UserID
}

// GalleryService merges static placeholder photos with temporary uploads. Each upload is its
// own cache entry under "<eventId>/<imageId>", so every image expires on its own clock.
type GalleryService struct {
	mu           sync.Mutex
	seq          uint64
	store        GalleryStore
	placeholders map[models.EventID][]models.Image
	uploads      *cache.Cache
	notifier     Notifier
	Now          func() time.Time
}

// NewGalleryService builds a gallery. A ttl of 0 keeps uploads until the process exits.
func NewGalleryService(store GalleryStore, placeholders map[models.EventID][]models.Image, ttl time.Duration, notifier Notifier) *GalleryService {
	expiration, cleanup := cache.NoExpiration, time.Duration(0)
	if ttl > 0 {
		expiration, cleanup = ttl, ttl
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if placeholders == nil {
		placeholders = map[models.EventID][]models.Image{}
	}
	return &GalleryService{
		store:        store,
		placeholders: placeholders,
		uploads:      cache.New(expiration, cleanup),
		notifier:     notifier,
		Now:          time.Now,
	}
}

// Albums lists one album per past event, most recent first.
func (g *GalleryService) Albums() []Album {
	now := g.Now()
	events := g.store.Events()
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.After(events[j].Date) })

	albums := []Album{}
	for _, e := range events {
		if !e.IsPast(now) {
			continue
		}
		albums = append(albums, Album{Event: e, Images: g.images(e.ID)})
	}
	return albums
}

// Album returns the merged images of one event.
func (g *GalleryService) Album(eventID models.EventID) (Album, error) {
	ev, err := g.store.Event(eventID)
	if err != nil {
		return Album{}, err
	}
	return Album{Event: ev, Images: g.images(eventID)}, nil
}

// AddImageToEvent stores a temporary image for an existing event.
func (g *GalleryService) AddImageToEvent(eventID models.EventID, in ImageInput) (models.Image, error) {
	if _, err := g.store.Event(eventID); err != nil {
		return models.Image{}, err
	}
	if strings.TrimSpace(in.URL) == "" {
		return models.Image{}, fmt.Errorf("%w: image url is required", ErrInvalidInput)
	}

	img := models.Image{
		ID:         models.ImageID(uuid.NewString()),
		EventID:    eventID,
		URL:        in.URL,
		Caption:    in.Caption,
		UploadedBy: in.UploadedBy,
		UploadedAt: g.Now(),
		Temporary:  true,
	}

	g.mu.Lock()
	g.seq++
	g.uploads.SetDefault(uploadKey(eventID, img.ID), upload{seq: g.seq, image: img})
	g.mu.Unlock()

	logger.Info.Printf("[AddImageToEvent] Added image %s to event %d", img.ID, eventID)
	g.notifier.Notify(ActionImageAdded, map[string]interface{}{"eventId": int(eventID), "imageId": string(img.ID)})
	return img, nil
}

// DeleteImageFromEvent removes a temporary image. Placeholder photos cannot be deleted.
func (g *GalleryService) DeleteImageFromEvent(eventID models.EventID, imageID models.ImageID) error {
	if _, err := g.store.Event(eventID); err != nil {
		return err
	}

	key := uploadKey(eventID, imageID)
	g.mu.Lock()
	if _, ok := g.uploads.Get(key); !ok {
		g.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrImageNotFound, imageID)
	}
	g.uploads.Delete(key)
	g.mu.Unlock()

	logger.Info.Printf("[DeleteImageFromEvent] Removed image %s from event %d", imageID, eventID)
	g.notifier.Notify(ActionImageDeleted, map[string]interface{}{"eventId": int(eventID), "imageId": string(imageID)})
	return nil
}

func (g *GalleryService) images(eventID models.EventID) []models.Image {
	out := append([]models.Image{}, g.placeholders[eventID]...)
	g.mu.Lock()
	out = append(out, g.uploaded(eventID)...)
	g.mu.Unlock()
	return out
}

type upload struct {
	seq   uint64
	image models.Image
}

func uploadKey(eventID models.EventID, imageID models.ImageID) string {
	return eventID.String() + "/" + string(imageID)
}

// uploaded returns the unexpired uploads of one event in upload order; callers hold g.mu.
func (g *GalleryService) uploaded(eventID models.EventID) []models.Image {
	prefix := eventID.String() + "/"
	var found []upload
	for key, item := range g.uploads.Items() {
		if strings.HasPrefix(key, prefix) {
			found = append(found, item.Object.(upload))
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].seq < found[j].seq })

	out := make([]models.Image, 0, len(found))
	for _, u := range found {
		out = append(out, u.image)
	}
	return out
}
