// file: services/gallery_service_test.go
package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ultimate-hub/data"
	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

func newGallery(t *testing.T, ttl time.Duration) *services.GalleryService {
	t.Helper()
	ds := data.Seed()
	store := services.NewAppStore(ds, nil)
	g := services.NewGalleryService(store, ds.PlaceholderImages, ttl, nil)
	g.Now = func() time.Time { return dashboardNow }
	return g
}

func TestAlbums_OnlyPastEventsMostRecentFirst(t *testing.T) {
	g := newGallery(t, 0)

	albums := g.Albums()
	require.Len(t, albums, 2)
	assert.Equal(t, models.EventID(1), albums[0].Event.ID)
	assert.Equal(t, models.EventID(4), albums[1].Event.ID)
	assert.Len(t, albums[0].Images, 3)
}

func TestAddImageToEvent_MergesWithPlaceholders(t *testing.T) {
	g := newGallery(t, 0)

	img, err := g.AddImageToEvent(1, services.ImageInput{URL: "https://img.example.com/final.jpg", Caption: "Final", UploadedBy: "u2"})
	require.NoError(t, err)
	assert.True(t, img.Temporary)
	assert.Len(t, string(img.ID), 36)

	album, err := g.Album(1)
	require.NoError(t, err)
	require.Len(t, album.Images, 4)
	assert.Equal(t, img, album.Images[3])
	assert.False(t, album.Images[0].Temporary)
}

func TestAddImageToEvent_Errors(t *testing.T) {
	g := newGallery(t, 0)

	_, err := g.AddImageToEvent(999, services.ImageInput{URL: "x"})
	assert.ErrorIs(t, err, services.ErrEventNotFound)

	_, err = g.AddImageToEvent(1, services.ImageInput{URL: " "})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestDeleteImageFromEvent(t *testing.T) {
	g := newGallery(t, 0)
	a, err := g.AddImageToEvent(4, services.ImageInput{URL: "a.jpg"})
	require.NoError(t, err)
	b, err := g.AddImageToEvent(4, services.ImageInput{URL: "b.jpg"})
	require.NoError(t, err)

	require.NoError(t, g.DeleteImageFromEvent(4, a.ID))
	album, _ := g.Album(4)
	require.Len(t, album.Images, 4)
	assert.Equal(t, b.ID, album.Images[3].ID)

	assert.ErrorIs(t, g.DeleteImageFromEvent(4, a.ID), services.ErrImageNotFound)
	assert.ErrorIs(t, g.DeleteImageFromEvent(4, "ph-4-1"), services.ErrImageNotFound)
	assert.ErrorIs(t, g.DeleteImageFromEvent(999, b.ID), services.ErrEventNotFound)

	require.NoError(t, g.DeleteImageFromEvent(4, b.ID))
	album, _ = g.Album(4)
	assert.Len(t, album.Images, 3)
}

func TestUploadsExpireAfterTTL(t *testing.T) {
	g := newGallery(t, 30*time.Millisecond)
	_, err := g.AddImageToEvent(1, services.ImageInput{URL: "short-lived.jpg"})
	require.NoError(t, err)

	album, _ := g.Album(1)
	assert.Len(t, album.Images, 4)

	assert.Eventually(t, func() bool {
		album, _ := g.Album(1)
		return len(album.Images) == 3
	}, time.Second, 10*time.Millisecond)
}

func TestAddImageToEvent_UploadsExpireIndependently(t *testing.T) {
	g := newGallery(t, 200*time.Millisecond)

	first, err := g.AddImageToEvent(1, services.ImageInput{URL: "https://img.example.com/first.jpg"})
	require.NoError(t, err)
	time.Sleep(120 * time.Millisecond)
	second, err := g.AddImageToEvent(1, services.ImageInput{URL: "https://img.example.com/second.jpg"})
	require.NoError(t, err)

	// a later upload must not extend the first one's lifetime
	assert.Eventually(t, func() bool {
		album, err := g.Album(1)
		if err != nil || len(album.Images) != 4 {
			return false
		}
		return album.Images[3].ID == second.ID
	}, 150*time.Millisecond, 10*time.Millisecond)

	album, err := g.Album(1)
	require.NoError(t, err)
	for _, img := range album.Images {
		assert.NotEqual(t, first.ID, img.ID)
	}
}

func TestAddImageToEvent_KeepsUploadOrderPerEvent(t *testing.T) {
	g := newGallery(t, 0)

	a, err := g.AddImageToEvent(1, services.ImageInput{URL: "a.jpg"})
	require.NoError(t, err)
	_, err = g.AddImageToEvent(4, services.ImageInput{URL: "other.jpg"})
	require.NoError(t, err)
	b, err := g.AddImageToEvent(1, services.ImageInput{URL: "b.jpg"})
	require.NoError(t, err)

	album, err := g.Album(1)
	require.NoError(t, err)
	require.Len(t, album.Images, 5)
	assert.Equal(t, a.ID, album.Images[3].ID)
	assert.Equal(t, b.ID, album.Images[4].ID)
}
