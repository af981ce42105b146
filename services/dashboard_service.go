// Package services file: services/dashboard_service.go
package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go-ultimate-hub/models"
)

// AdminStats are the aggregate counts on the admin dashboard.
type AdminStats struct {
	Events          int                 `json:"events"`
	UpcomingEvents  int                 `json:"upcomingEvents"`
	Users           int                 `json:"users"`
	UsersByRole     map[models.Role]int `json:"usersByRole"`
	Registrations   int                 `json:"registrations"`
	CoachingCenters int                 `json:"coachingCenters"`
	Enrollments     int                 `json:"enrollments"`
	Children        int                 `json:"children"`
	CheckIns        int                 `json:"checkIns"`
}

// AdminDashboard shows everything.
type AdminDashboard struct {
	Events []models.Event `json:"events"`
	Users  []models.User  `json:"users"`
	Stats  AdminStats     `json:"stats"`
}

// OrganizerDashboard shows the events of the organizations the user organizes.
type OrganizerDashboard struct {
	Organizations        []models.Organization  `json:"organizations"`
	Events               []models.Event         `json:"events"`
	RegistrationsByEvent map[models.EventID]int `json:"registrationsByEvent"`
	TotalRegistrations   int                    `json:"totalRegistrations"`
}

// ParticipantDashboard splits the user's registrations around now.
type ParticipantDashboard struct {
	Upcoming        []models.Event          `json:"upcoming"`
	Past            []models.Event          `json:"past"`
	CoachingCenters []models.CoachingCenter `json:"coachingCenters"`
	QRCode          string                  `json:"qrCode"`
}

// CoachDashboard shows the user's sessions and attendance.
type CoachDashboard struct {
	Communities       []string         `json:"communities"`
	Sessions          []models.Session `json:"sessions"`
	UpcomingSessions  []models.Session `json:"upcomingSessions"`
	CompletedSessions int              `json:"completedSessions"`
	AttendancePercent float64          `json:"attendancePercent"`
}

// Dashboard is the role-scoped view for one user. Exactly one field is set.
type Dashboard struct {
	Role        models.Role           `json:"role"`
	Admin       *AdminDashboard       `json:"admin,omitempty"`
	Organizer   *OrganizerDashboard   `json:"organizer,omitempty"`
	Participant *ParticipantDashboard `json:"participant,omitempty"`
	Coach       *CoachDashboard       `json:"coach,omitempty"`
}

// DashboardService composes read-only views over the store.
type DashboardService struct {
	store *AppStore
	Now   func() time.Time
}

// NewDashboardService builds a DashboardService using the wall clock.
func NewDashboardService(store *AppStore) *DashboardService {
	return &DashboardService{store: store, Now: time.Now}
}

// For dispatches on the user's profile variant.
func (d *DashboardService) For(user models.User) (Dashboard, error) {
	snap := d.store.Snapshot()
	now := d.Now()

	switch p := user.Profile.(type) {
	case models.AdminProfile:
		v := adminView(snap, now)
		return Dashboard{Role: models.RoleAdmin, Admin: &v}, nil
	case models.OrganizerProfile:
		v := organizerView(snap, user.ID)
		return Dashboard{Role: models.RoleOrganizer, Organizer: &v}, nil
	case models.ParticipantProfile:
		v := participantView(snap, user.ID, now)
		v.QRCode = p.QRCode
		return Dashboard{Role: models.RoleParticipant, Participant: &v}, nil
	case models.CoachProfile:
		v := coachView(snap, user, p)
		return Dashboard{Role: models.RoleCoach, Coach: &v}, nil
	default:
		return Dashboard{}, fmt.Errorf("%w: %T", ErrUnknownRole, user.Profile)
	}
}

func adminView(snap Snapshot, now time.Time) AdminDashboard {
	stats := AdminStats{
		Events:          len(snap.Events),
		Users:           len(snap.Users),
		UsersByRole:     make(map[models.Role]int, len(models.Roles)),
		CoachingCenters: len(snap.CoachingCenters),
		Children:        len(snap.Children),
		CheckIns:        len(snap.CheckIns),
	}
	for _, r := range models.Roles {
		stats.UsersByRole[r] = 0
	}
	for _, u := range snap.Users {
		stats.UsersByRole[u.Role()]++
	}
	for _, e := range snap.Events {
		stats.Registrations += len(e.Participants)
		if !e.IsPast(now) {
			stats.UpcomingEvents++
		}
	}
	for _, c := range snap.CoachingCenters {
		stats.Enrollments += len(c.Participants)
	}
	return AdminDashboard{Events: snap.Events, Users: snap.Users, Stats: stats}
}

func organizerView(snap Snapshot, userID models.UserID) OrganizerDashboard {
	view := OrganizerDashboard{
		Organizations:        []models.Organization{},
		Events:               []models.Event{},
		RegistrationsByEvent: map[models.EventID]int{},
	}

	owned := map[models.OrganizationID]bool{}
	for _, o := range snap.Organizations {
		if o.HasOrganizer(userID) {
			owned[o.ID] = true
			view.Organizations = append(view.Organizations, o)
		}
	}
	for _, e := range snap.Events {
		if !owned[e.OrganizationID] {
			continue
		}
		view.Events = append(view.Events, e)
		view.RegistrationsByEvent[e.ID] = len(e.Participants)
		view.TotalRegistrations += len(e.Participants)
	}
	return view
}

// participantView partitions the user's events: upcoming when date >= now (soonest first),
// past otherwise (most recent first).
func participantView(snap Snapshot, userID models.UserID, now time.Time) ParticipantDashboard {
	view := ParticipantDashboard{
		Upcoming:        []models.Event{},
		Past:            []models.Event{},
		CoachingCenters: []models.CoachingCenter{},
	}
	for _, e := range snap.Events {
		if !e.HasParticipant(userID) {
			continue
		}
		if e.IsPast(now) {
			view.Past = append(view.Past, e)
		} else {
			view.Upcoming = append(view.Upcoming, e)
		}
	}
	sort.SliceStable(view.Upcoming, func(i, j int) bool { return view.Upcoming[i].Date.Before(view.Upcoming[j].Date) })
	sort.SliceStable(view.Past, func(i, j int) bool { return view.Past[i].Date.After(view.Past[j].Date) })

	for _, c := range snap.CoachingCenters {
		if c.HasParticipant(userID) {
			view.CoachingCenters = append(view.CoachingCenters, c)
		}
	}
	return view
}

// coachView matches sessions by coach id, falling back to the free-text coach name for
// sessions without one.
func coachView(snap Snapshot, user models.User, p models.CoachProfile) CoachDashboard {
	view := CoachDashboard{
		Communities:      append([]string{}, p.Communities...),
		Sessions:         []models.Session{},
		UpcomingSessions: []models.Session{},
	}

	childrenPerCommunity := map[string]int{}
	for _, c := range snap.Children {
		childrenPerCommunity[c.Community]++
	}

	var attended, expected int
	for _, s := range snap.Sessions {
		mine := s.CoachID == user.ID || (s.CoachID == "" && s.Coach == user.Name)
		if !mine {
			continue
		}
		view.Sessions = append(view.Sessions, s)
		switch s.Status {
		case models.SessionCompleted:
			view.CompletedSessions++
			attended += len(s.Participants)
			expected += childrenPerCommunity[s.Community]
		case models.SessionUpcoming:
			view.UpcomingSessions = append(view.UpcomingSessions, s)
		}
	}
	view.AttendancePercent = attendancePercent(attended, expected)
	return view
}

// attendancePercent is rounded to two decimals; an empty denominator yields 0.
func attendancePercent(attended, expected int) float64 {
	if expected == 0 {
		return 0
	}
	return math.Round(10000*float64(attended)/float64(expected)) / 100
}
