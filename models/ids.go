// Package models defines the domain entities shared across the hub.
// File: models/ids.go
package models

import "strconv"

// Typed identifiers keep joins between collections explicit.
type (
	UserID         string
	VenueID        string
	OrganizationID string
	CenterID       string
	ChildID        string
	SessionID      string
	AssessmentID   string
	HomeVisitID    string
	AlertID        string
	ImageID        string
	TeamID         string
	PlayerID       string
)

// EventID is the integer identifier of an event; new ids are max(existing)+1.
type EventID int

// String renders the id in decimal, the form used in QR payloads and URLs.
func (id EventID) String() string {
	return strconv.Itoa(int(id))
}

// ParseEventID parses a strict decimal event id.
func ParseEventID(s string) (EventID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return EventID(n), nil
}
