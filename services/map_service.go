// Package services file: services/map_service.go
package services

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"go-ultimate-hub/logger"
	"go-ultimate-hub/models"
)

const (
	mapsScriptURL     = "https://maps.googleapis.com/maps/api/js"
	mapsEmbedURL      = "https://www.google.com/maps/embed/v1/place"
	mapsDirectionsURL = "https://www.google.com/maps/dir/"

	earthRadiusKm = 6371.0
)

// VenueLookup resolves venues by id.
type VenueLookup interface {
	Venue(id models.VenueID) (models.Venue, error)
}

// LatLng is a coordinate pair in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p LatLng) String() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// Valid reports whether the pair lies within the coordinate ranges.
func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// VenueMap is what a client needs to render a venue on a map.
type VenueMap struct {
	Venue     models.Venue `json:"venue"`
	Center    LatLng       `json:"center"`
	EmbedURL  string       `json:"embedUrl"`
	ScriptURL string       `json:"scriptUrl"`
}

// Directions links a starting point to a venue.
type Directions struct {
	Venue       models.Venue `json:"venue"`
	Origin      *LatLng      `json:"origin,omitempty"`
	URL         string       `json:"url"`
	DistanceKm  float64      `json:"distanceKm,omitempty"`
	HasDistance bool         `json:"hasDistance"`
}

// MapService builds maps links for venues. Without an API key every call fails with
// ErrMapsNotConfigured.
type MapService struct {
	apiKey string
	venues VenueLookup
}

// NewMapService builds a MapService.
func NewMapService(apiKey string, venues VenueLookup) *MapService {
	if apiKey == "" {
		logger.Warn.Println("[NewMapService] MAPS_API_KEY not set; map features disabled")
	}
	return &MapService{apiKey: apiKey, venues: venues}
}

// Configured reports whether an API key is present.
func (m *MapService) Configured() bool {
	return m.apiKey != ""
}

// VenueMap returns the embed and script URLs for a venue.
func (m *MapService) VenueMap(id models.VenueID) (VenueMap, error) {
	if !m.Configured() {
		return VenueMap{}, ErrMapsNotConfigured
	}
	v, err := m.venues.Venue(id)
	if err != nil {
		return VenueMap{}, err
	}

	center := LatLng{Lat: v.Lat, Lng: v.Lng}
	embed := url.Values{}
	embed.Set("key", m.apiKey)
	embed.Set("q", center.String())

	script := url.Values{}
	script.Set("key", m.apiKey)

	return VenueMap{
		Venue:     v,
		Center:    center,
		EmbedURL:  mapsEmbedURL + "?" + embed.Encode(),
		ScriptURL: mapsScriptURL + "?" + script.Encode(),
	}, nil
}

// Directions links origin to the venue. A nil origin lets the maps app use the device location.
func (m *MapService) Directions(id models.VenueID, origin *LatLng) (Directions, error) {
	if !m.Configured() {
		return Directions{}, ErrMapsNotConfigured
	}
	v, err := m.venues.Venue(id)
	if err != nil {
		return Directions{}, err
	}
	if origin != nil && !origin.Valid() {
		return Directions{}, fmt.Errorf("%w: origin %s out of range", ErrInvalidInput, origin)
	}

	dest := LatLng{Lat: v.Lat, Lng: v.Lng}
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", dest.String())
	q.Set("travelmode", "driving")

	out := Directions{Venue: v, Origin: origin}
	if origin != nil {
		q.Set("origin", origin.String())
		out.DistanceKm = math.Round(HaversineKm(*origin, dest)*100) / 100
		out.HasDistance = true
	}
	out.URL = mapsDirectionsURL + "?" + q.Encode()
	return out, nil
}

// HaversineKm is the great-circle distance between a and b.
func HaversineKm(a, b LatLng) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(b.Lat - a.Lat)
	dLng := rad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
