// Package models file: models/coaching.go
package models

// Currency is the fixed currency coaching fees are displayed in.
const Currency = "INR"

// CoachingCenter is an enrollable training program, distinct from events.
type CoachingCenter struct {
	ID           CenterID `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Location     string   `json:"location"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Participants []UserID `json:"participants"`
	Description  string   `json:"description"`
	Fee          float64  `json:"fee"`
	Schedule     string   `json:"schedule"`
}

// HasParticipant reports whether id is enrolled at the center.
func (c CoachingCenter) HasParticipant(id UserID) bool {
	for _, p := range c.Participants {
		if p == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with c.
func (c CoachingCenter) Clone() CoachingCenter {
	c.Participants = append([]UserID{}, c.Participants...)
	return c
}
