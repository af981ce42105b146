// file: services/dashboard_service_test.go
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

var dashboardNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newDashboard(t *testing.T) (*services.DashboardService, *services.AppStore) {
	t.Helper()
	store := services.NewAppStore(data.Seed(), nil)
	d := services.NewDashboardService(store)
	d.Now = func() time.Time { return dashboardNow }
	return d, store
}

func userByID(t *testing.T, store *services.AppStore, id models.UserID) models.User {
	t.Helper()
	u, err := store.User(id)
	require.NoError(t, err)
	return u
}

func TestDashboard_Admin(t *testing.T) {
	d, store := newDashboard(t)

	view, err := d.For(userByID(t, store, "u1"))
	require.NoError(t, err)
	require.NotNil(t, view.Admin)
	assert.Nil(t, view.Participant)
	assert.Equal(t, models.RoleAdmin, view.Role)

	stats := view.Admin.Stats
	assert.Equal(t, len(store.Events()), stats.Events)
	assert.Equal(t, len(store.Users()), stats.Users)
	assert.Equal(t, 2, stats.UsersByRole[models.RoleParticipant])
	assert.Equal(t, 2, stats.UsersByRole[models.RoleOrganizer])
	assert.Equal(t, 1, stats.UsersByRole[models.RoleCoach])
	assert.Equal(t, 2, stats.UpcomingEvents)
	assert.Equal(t, 4, stats.Registrations)
	assert.Equal(t, 1, stats.Enrollments)
	assert.Equal(t, 7, stats.Children)
}

func TestDashboard_OrganizerSeesOwnOrganizations(t *testing.T) {
	d, store := newDashboard(t)

	view, err := d.For(userByID(t, store, "u2"))
	require.NoError(t, err)
	require.NotNil(t, view.Organizer)

	var ids []models.EventID
	for _, e := range view.Organizer.Events {
		assert.Equal(t, models.OrganizationID("o1"), e.OrganizationID)
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []models.EventID{1, 2}, ids)
	assert.Equal(t, 2, view.Organizer.RegistrationsByEvent[1])
	assert.Equal(t, 3, view.Organizer.TotalRegistrations)
}

func TestDashboard_OrganizerWithoutOrganization(t *testing.T) {
	d, store := newDashboard(t)
	u, err := store.AddOrganizer(services.OrganizerInput{Name: "New", Email: "n@example.com", OrgName: "Solo"})
	require.NoError(t, err)

	view, err := d.For(u)
	require.NoError(t, err)
	assert.Empty(t, view.Organizer.Events)
	assert.Empty(t, view.Organizer.Organizations)
}

func TestDashboard_ParticipantPartition(t *testing.T) {
	d, store := newDashboard(t)

	for _, id := range []models.UserID{"u3", "u5"} {
		view, err := d.For(userByID(t, store, id))
		require.NoError(t, err)
		p := view.Participant
		require.NotNil(t, p)

		registered := 0
		for _, e := range store.Events() {
			if e.HasParticipant(id) {
				registered++
			}
		}
		// every registered event lands in exactly one list
		assert.Equal(t, registered, len(p.Upcoming)+len(p.Past))
		seen := map[models.EventID]int{}
		for _, e := range p.Upcoming {
			assert.False(t, e.Date.Before(dashboardNow))
			seen[e.ID]++
		}
		for _, e := range p.Past {
			assert.True(t, e.Date.Before(dashboardNow))
			seen[e.ID]++
		}
		for eid, n := range seen {
			assert.Equal(t, 1, n, "event %d", eid)
		}
	}
}

func TestDashboard_ParticipantOrdering(t *testing.T) {
	d, store := newDashboard(t)
	for _, id := range []models.EventID{2, 4} {
		_, err := store.ToggleRegistration(id, "u3")
		require.NoError(t, err)
	}

	view, err := d.For(userByID(t, store, "u3"))
	require.NoError(t, err)
	p := view.Participant

	require.Len(t, p.Upcoming, 2)
	assert.Equal(t, models.EventID(2), p.Upcoming[0].ID)
	assert.Equal(t, models.EventID(3), p.Upcoming[1].ID)

	require.Len(t, p.Past, 2)
	assert.Equal(t, models.EventID(1), p.Past[0].ID)
	assert.Equal(t, models.EventID(4), p.Past[1].ID)

	require.Len(t, p.CoachingCenters, 1)
	assert.Equal(t, models.CenterID("cc1"), p.CoachingCenters[0].ID)
	assert.Equal(t, "u3", p.QRCode)
}

func TestDashboard_EventAtNowIsUpcoming(t *testing.T) {
	d, store := newDashboard(t)
	ev, err := store.AddEvent(services.EventInput{Name: "Now", Date: dashboardNow, VenueID: "v1", OrganizationID: "o1", Type: models.EventMeetup})
	require.NoError(t, err)
	_, err = store.ToggleRegistration(ev.ID, "u5")
	require.NoError(t, err)

	view, err := d.For(userByID(t, store, "u5"))
	require.NoError(t, err)
	var found bool
	for _, e := range view.Participant.Upcoming {
		found = found || e.ID == ev.ID
	}
	assert.True(t, found)
}

func TestDashboard_CoachAttendance(t *testing.T) {
	d, store := newDashboard(t)

	view, err := d.For(userByID(t, store, "u4"))
	require.NoError(t, err)
	c := view.Coach
	require.NotNil(t, c)

	assert.Len(t, c.Sessions, 3)
	assert.Equal(t, 2, c.CompletedSessions)
	require.Len(t, c.UpcomingSessions, 1)
	assert.Equal(t, models.SessionID("s3"), c.UpcomingSessions[0].ID)
	// (2 + 3) attended of (3 + 3) children
	assert.InDelta(t, 83.33, c.AttendancePercent, 0.001)
}

func TestDashboard_CoachMatchedByName(t *testing.T) {
	d, store := newDashboard(t)
	coach, err := store.AddCoach(services.CoachInput{Name: "Meera Singh", Email: "meera@example.com"})
	require.NoError(t, err)

	view, err := d.For(coach)
	require.NoError(t, err)
	require.Len(t, view.Coach.Sessions, 1)
	assert.Equal(t, models.SessionID("s4"), view.Coach.Sessions[0].ID)
	assert.InDelta(t, 100.0, view.Coach.AttendancePercent, 0.001)
}

func TestDashboard_CoachWithoutSessions(t *testing.T) {
	d, store := newDashboard(t)
	coach, err := store.AddCoach(services.CoachInput{Name: "Nobody", Email: "x@example.com"})
	require.NoError(t, err)

	view, err := d.For(coach)
	require.NoError(t, err)
	assert.Empty(t, view.Coach.Sessions)
	assert.Zero(t, view.Coach.AttendancePercent)
}

func TestDashboard_UnknownProfile(t *testing.T) {
	d, _ := newDashboard(t)
	_, err := d.For(models.User{ID: "x"})
	assert.ErrorIs(t, err, services.ErrUnknownRole)
}
