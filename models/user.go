// Package models file: models/user.go
package models

import (
	"encoding/json"
	"fmt"
)

// ----------------------- roles -----------------------

// Role selects which dashboard and profile shape applies to a user.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleOrganizer   Role = "Organizer"
	RoleParticipant Role = "Participant"
	RoleCoach       Role = "Coach"
)

// Roles lists every known role in display order.
var Roles = []Role{RoleAdmin, RoleOrganizer, RoleParticipant, RoleCoach}

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// ----------------------- profiles -----------------------

// Profile is the role-specific part of a user. Exactly one concrete type exists per role.
type Profile interface {
	Role() Role
	isProfile()
}

// AdminProfile carries no extra fields.
type AdminProfile struct{}

// ParticipantProfile holds the fields only participants have.
type ParticipantProfile struct {
	Phone            string    `json:"phone"`
	Location         string    `json:"location"`
	RegisteredEvents []EventID `json:"registeredEvents"`
	QRCode           string    `json:"qrCode"`
}

// OrganizerProfile holds the fields only organizers have.
type OrganizerProfile struct {
	OrgName string    `json:"orgName"`
	Events  []EventID `json:"events"`
}

// CoachProfile holds the fields only coaches have.
type CoachProfile struct {
	Communities []string    `json:"communities"`
	Sessions    []SessionID `json:"sessions"`
}

func (AdminProfile) Role() Role       { return RoleAdmin }
func (ParticipantProfile) Role() Role { return RoleParticipant }
func (OrganizerProfile) Role() Role   { return RoleOrganizer }
func (CoachProfile) Role() Role       { return RoleCoach }

func (AdminProfile) isProfile()       {}
func (ParticipantProfile) isProfile() {}
func (OrganizerProfile) isProfile()   {}
func (CoachProfile) isProfile()       {}

// ----------------------- user -----------------------

// User is a platform account. Children are not users.
type User struct {
	ID      UserID
	Name    string
	Email   string
	Profile Profile
}

// Role returns the role carried by the user's profile.
func (u User) Role() Role {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.Role()
}

// Clone returns a copy that shares no slices with u.
func (u User) Clone() User {
	switch p := u.Profile.(type) {
	case ParticipantProfile:
		p.RegisteredEvents = append([]EventID(nil), p.RegisteredEvents...)
		u.Profile = p
	case OrganizerProfile:
		p.Events = append([]EventID(nil), p.Events...)
		u.Profile = p
	case CoachProfile:
		p.Communities = append([]string(nil), p.Communities...)
		p.Sessions = append([]SessionID(nil), p.Sessions...)
		u.Profile = p
	}
	return u
}

type userJSON struct {
	ID      UserID          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Role    Role            `json:"role"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

// MarshalJSON writes the common fields flat and the role fields under "profile".
func (u User) MarshalJSON() ([]byte, error) {
	out := userJSON{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role()}
	if u.Profile != nil {
		raw, err := json.Marshal(u.Profile)
		if err != nil {
			return nil, err
		}
		out.Profile = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON picks the profile type from the "role" discriminant.
func (u *User) UnmarshalJSON(data []byte) error {
	var in userJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var profile Profile
	switch in.Role {
	case RoleAdmin:
		profile = AdminProfile{}
	case RoleParticipant:
		var p ParticipantProfile
		if err := decodeProfile(in.Profile, &p); err != nil {
			return err
		}
		profile = p
	case RoleOrganizer:
		var p OrganizerProfile
		if err := decodeProfile(in.Profile, &p); err != nil {
			return err
		}
		profile = p
	case RoleCoach:
		var p CoachProfile
		if err := decodeProfile(in.Profile, &p); err != nil {
			return err
		}
		profile = p
	default:
		return fmt.Errorf("unknown role %q", in.Role)
	}

	*u = User{ID: in.ID, Name: in.Name, Email: in.Email, Profile: profile}
	return nil
}

func decodeProfile(raw json.RawMessage, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode profile: %w", err)
	}
	return nil
}
