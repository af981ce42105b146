// Package models file: models/media.go
package models

import "time"

// Image is a gallery photo attached to an event.
type Image struct {
	ID         ImageID   `json:"id"`
	EventID    EventID   `json:"eventId"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption,omitempty"`
	UploadedBy UserID    `json:"uploadedBy,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
	Temporary  bool      `json:"temporary"`
}

// CheckInRecord is one successful QR check-in.
type CheckInRecord struct {
	EventID   EventID   `json:"eventId"`
	EventName string    `json:"eventName"`
	UserName  string    `json:"userName,omitempty"`
	Station   string    `json:"station"`
	At        time.Time `json:"at"`
}
