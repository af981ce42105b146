// Package models file: models/event.go
package models

import (
	"fmt"
	"time"
)

// EventType classifies an event.
type EventType string

const (
	EventTournament EventType = "Tournament"
	EventWorkshop   EventType = "Workshop"
	EventMeetup     EventType = "Meetup"
)

// EventTypes lists every event type in display order.
var EventTypes = []EventType{EventTournament, EventWorkshop, EventMeetup}

// ParseEventType validates an event type name.
func ParseEventType(s string) (EventType, error) {
	for _, t := range EventTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown event type %q", s)
}

// Winners records the podium of a finished tournament.
type Winners struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Third  string `json:"third"`
}

// Event is a scheduled tournament, workshop or meetup users can register for.
type Event struct {
	ID             EventID        `json:"id"`
	Name           string         `json:"name"`
	Date           time.Time      `json:"date"`
	Description    string         `json:"description"`
	VenueID        VenueID        `json:"venueId"`
	OrganizationID OrganizationID `json:"organizationId"`
	Type           EventType      `json:"type"`
	Participants   []UserID       `json:"participants"`
	Winners        *Winners       `json:"winners,omitempty"`
	Highlights     string         `json:"highlights,omitempty"`
}

// HasParticipant reports whether id is registered for the event.
func (e Event) HasParticipant(id UserID) bool {
	for _, p := range e.Participants {
		if p == id {
			return true
		}
	}
	return false
}

// IsPast reports whether the event date lies strictly before now.
func (e Event) IsPast(now time.Time) bool {
	return e.Date.Before(now)
}

// Clone returns a copy that shares no slices or pointers with e.
func (e Event) Clone() Event {
	e.Participants = append([]UserID{}, e.Participants...)
	if e.Winners != nil {
		w := *e.Winners
		e.Winners = &w
	}
	return e
}

// Venue is a place events are held at.
type Venue struct {
	ID       VenueID `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// Organization runs events; Organizers lists the users who manage it.
type Organization struct {
	ID         OrganizationID `json:"id"`
	Name       string         `json:"name"`
	Organizers []UserID       `json:"organizers"`
}

// HasOrganizer reports whether id organizes the organization.
func (o Organization) HasOrganizer(id UserID) bool {
	for _, u := range o.Organizers {
		if u == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with o.
func (o Organization) Clone() Organization {
	o.Organizers = append([]UserID{}, o.Organizers...)
	return o
}
